package iotago

import (
	"context"

	"golang.org/x/crypto/blake2b"
)

// mustSerixEncode encodes obj with the common serix API, panicking on error. Used for deterministic identifier
// derivation where encoding failure would indicate a programmer error, not a runtime condition.
func mustSerixEncode(obj any) []byte {
	b, err := commonSerixAPI().Encode(context.Background(), obj)
	if err != nil {
		panic(err)
	}

	return b
}

// blake2bSum256 is a small convenience wrapper kept local to this package so address/identifier constructors don't
// need to import golang.org/x/crypto/blake2b directly at every call site.
func blake2bSum256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}
