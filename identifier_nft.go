package iotago

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

const (
	// NFTIDLength defines the length of an NFTID.
	NFTIDLength = blake2b.Size256
)

var (
	EmptyNFTID = NFTID{}

	ErrInvalidNFTIDLength = ierrors.New("invalid NFTID length")
)

// NFTID is a 32 byte hash value that, together with the output type, represents a unique NFT.
type NFTID [NFTIDLength]byte

type NFTIDs []NFTID

// NFTIDFromOutputID returns the NFTID computed from a given OutputID.
func NFTIDFromOutputID(outputID OutputID) NFTID {
	return blake2b.Sum256(outputID[:])
}

func NFTIDFromHexString(hexStr string) (NFTID, error) {
	b, err := hexutil.DecodeHex(hexStr)
	if err != nil {
		return EmptyNFTID, err
	}

	var n NFTID
	if len(b) < NFTIDLength {
		return EmptyNFTID, ErrInvalidNFTIDLength
	}
	copy(n[:], b)

	return n, nil
}

func MustNFTIDFromHexString(hexStr string) NFTID {
	n, err := NFTIDFromHexString(hexStr)
	if err != nil {
		panic(err)
	}

	return n
}

func (n NFTID) Bytes() ([]byte, error) {
	return n[:], nil
}

func (n NFTID) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(EmptyNFTID)))
	hex.Encode(dst, n[:])

	return dst, nil
}

func (n *NFTID) UnmarshalText(text []byte) error {
	_, err := hex.Decode(n[:], text)

	return err
}

func (n NFTID) Empty() bool {
	return n == EmptyNFTID
}

func (n NFTID) ToHex() string {
	return hexutil.EncodeHex(n[:])
}

func (n NFTID) String() string {
	return n.Alias()
}

var (
	nftIDAliases      = make(map[NFTID]string)
	nftIDAliasesMutex = sync.RWMutex{}
)

func (n NFTID) RegisterAlias(alias string) {
	nftIDAliasesMutex.Lock()
	defer nftIDAliasesMutex.Unlock()

	nftIDAliases[n] = alias
}

func (n NFTID) Alias() (alias string) {
	nftIDAliasesMutex.RLock()
	defer nftIDAliasesMutex.RUnlock()

	if existingAlias, exists := nftIDAliases[n]; exists {
		return existingAlias
	}

	return n.ToHex()
}

func (n NFTID) UnregisterAlias() {
	nftIDAliasesMutex.Lock()
	defer nftIDAliasesMutex.Unlock()

	delete(nftIDAliases, n)
}

func UnregisterNFTIDAliases() {
	nftIDAliasesMutex.Lock()
	defer nftIDAliasesMutex.Unlock()

	nftIDAliases = make(map[NFTID]string)
}

func (n NFTID) Matches(other ChainID) bool {
	otherNFTID, isNFTID := other.(NFTID)
	if !isNFTID {
		return false
	}

	return n == otherNFTID
}

func (n NFTID) Addressable() bool {
	return true
}

func (n NFTID) ToAddress() ChainAddress {
	var addr NFTAddress
	copy(addr[:], n[:])

	return &addr
}

func (n NFTID) Key() interface{} {
	return n.String()
}

func (n NFTID) FromOutputID(in OutputID) ChainID {
	return NFTIDFromOutputID(in)
}
