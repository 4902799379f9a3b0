// Package hexutil provides hex encoding/decoding helpers used throughout the
// identifier and primitive types, mirroring the 0x-prefixed convention used
// by the wire JSON encoding.
package hexutil

import (
	"encoding/hex"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrEmptyString gets returned for empty hex strings.
var ErrEmptyString = ierrors.New("empty hex string")

// ErrMissingPrefix gets returned when a hex string is missing the "0x" prefix.
var ErrMissingPrefix = ierrors.New("hex string missing 0x prefix")

// ErrOddLength gets returned when a hex string has an odd number of nibbles.
var ErrOddLength = ierrors.New("hex string has odd length")

// EncodeHex encodes b as a "0x" prefixed hex string.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeHex decodes a "0x" prefixed hex string into bytes. The prefix is optional.
func DecodeHex(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyString
	}

	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")

	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}

	return hex.DecodeString(s)
}
