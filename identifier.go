package iotago

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/iota.go/v4/hexutil"
)

// IdentifierLength defines the length of an Identifier.
const IdentifierLength = blake2b.Size256

// Identifier is a 32 byte hash value, used as the generic content-addressed identifier of protocol parameters and
// other non-chain objects.
type Identifier [IdentifierLength]byte

// EmptyIdentifier is an Identifier with all zero bytes.
var EmptyIdentifier = Identifier{}

// IdentifierFromData returns a new Identifier for the given data by hashing it with blake2b.
func IdentifierFromData(data []byte) Identifier {
	return blake2b.Sum256(data)
}

// IdentifierFromHexString converts a hex string into an Identifier.
func IdentifierFromHexString(hexStr string) (Identifier, error) {
	b, err := hexutil.DecodeHex(hexStr)
	if err != nil {
		return EmptyIdentifier, err
	}

	var id Identifier
	if len(b) != IdentifierLength {
		return EmptyIdentifier, ErrInvalidIdentifierLength
	}
	copy(id[:], b)

	return id, nil
}

func (id Identifier) Bytes() ([]byte, error) {
	return id[:], nil
}

func (id Identifier) ToHex() string {
	return hexutil.EncodeHex(id[:])
}

func (id Identifier) String() string {
	return id.ToHex()
}

func (id Identifier) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(id)))
	hex.Encode(dst, id[:])

	return dst, nil
}

func (id *Identifier) UnmarshalText(text []byte) error {
	_, err := hex.Decode(id[:], text)

	return err
}

// Empty tells whether the Identifier is the zero value.
func (id Identifier) Empty() bool {
	return id == EmptyIdentifier
}
