package iotago

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

const (
	// AnchorIDLength defines the length of an AnchorID.
	AnchorIDLength = blake2b.Size256
)

var (
	EmptyAnchorID = AnchorID{}

	ErrInvalidAnchorIDLength = ierrors.New("invalid AnchorID length")
)

// AnchorID is a 32 byte hash value that, together with the output type, represents a unique anchor.
type AnchorID [AnchorIDLength]byte

type AnchorIDs []AnchorID

func AnchorIDFromOutputID(outputID OutputID) AnchorID {
	return blake2b.Sum256(outputID[:])
}

func AnchorIDFromHexString(hexStr string) (AnchorID, error) {
	b, err := hexutil.DecodeHex(hexStr)
	if err != nil {
		return EmptyAnchorID, err
	}

	var a AnchorID
	if len(b) < AnchorIDLength {
		return EmptyAnchorID, ErrInvalidAnchorIDLength
	}
	copy(a[:], b)

	return a, nil
}

func (a AnchorID) Bytes() ([]byte, error) {
	return a[:], nil
}

func (a AnchorID) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(EmptyAnchorID)))
	hex.Encode(dst, a[:])

	return dst, nil
}

func (a *AnchorID) UnmarshalText(text []byte) error {
	_, err := hex.Decode(a[:], text)

	return err
}

func (a AnchorID) Empty() bool {
	return a == EmptyAnchorID
}

func (a AnchorID) ToHex() string {
	return hexutil.EncodeHex(a[:])
}

func (a AnchorID) String() string {
	return a.Alias()
}

var (
	anchorIDAliases      = make(map[AnchorID]string)
	anchorIDAliasesMutex = sync.RWMutex{}
)

func (a AnchorID) RegisterAlias(alias string) {
	anchorIDAliasesMutex.Lock()
	defer anchorIDAliasesMutex.Unlock()

	anchorIDAliases[a] = alias
}

func (a AnchorID) Alias() (alias string) {
	anchorIDAliasesMutex.RLock()
	defer anchorIDAliasesMutex.RUnlock()

	if existingAlias, exists := anchorIDAliases[a]; exists {
		return existingAlias
	}

	return a.ToHex()
}

func (a AnchorID) Matches(other ChainID) bool {
	otherAnchorID, isAnchorID := other.(AnchorID)
	if !isAnchorID {
		return false
	}

	return a == otherAnchorID
}

func (a AnchorID) Addressable() bool {
	return true
}

func (a AnchorID) ToAddress() ChainAddress {
	var addr AnchorAddress
	copy(addr[:], a[:])

	return &addr
}

func (a AnchorID) Key() interface{} {
	return a.String()
}

func (a AnchorID) FromOutputID(in OutputID) ChainID {
	return AnchorIDFromOutputID(in)
}
