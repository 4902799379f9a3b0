package iotago_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/iota.go/v4/tpkg"
)

// deSerializeTest round-trips source through binary encoding into a fresh target and asserts the two match,
// exercising the serix-driven (de)serialization every object in this package relies on.
type deSerializeTest struct {
	name   string
	source any
	target any
}

func (test *deSerializeTest) deSerialize(t *testing.T) {
	serialized, err := tpkg.TestAPI.Encode(test.source)
	require.NoError(t, err)

	_, err = tpkg.TestAPI.Decode(serialized, test.target)
	require.NoError(t, err)

	require.EqualValues(t, test.source, test.target)
}
