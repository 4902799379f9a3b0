package iotago

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// AnchorAddress is the address of an anchor, derived from its AnchorID.
//
// This package implements no anchor output type: the address exists so that it can be encoded, decoded and
// unlocked by an AnchorUnlock, and the semantic validator's chain-transition dispatch has no anchor case.
type AnchorAddress [AnchorIDLength]byte

func (addr *AnchorAddress) Clone() Address {
	cpy := &AnchorAddress{}
	copy(cpy[:], addr[:])

	return cpy
}

func (addr *AnchorAddress) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *AnchorAddress) Key() string {
	return hexutil.EncodeHex([]byte{byte(addr.Type())}) + hexutil.EncodeHex(addr[:])
}

func (addr *AnchorAddress) Unlock(msg []byte, sig Unlock) error {
	switch u := sig.(type) {
	case *AnchorUnlock:
		return nil
	default:
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock AnchorAddress with unlock of type %T", u)
	}
}

func (addr *AnchorAddress) Equal(other Address) bool {
	otherAddr, is := other.(*AnchorAddress)
	if !is {
		return false
	}

	return *addr == *otherAddr
}

func (addr *AnchorAddress) Type() AddressType {
	return AddressAnchor
}

func (addr *AnchorAddress) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *AnchorAddress) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *AnchorAddress) Size() int {
	return 1 + AnchorIDLength
}

func (addr *AnchorAddress) ChainID() ChainID {
	return AnchorID(*addr)
}

func (addr *AnchorAddress) AnchorID() AnchorID {
	return AnchorID(*addr)
}

var _ ChainAddress = &AnchorAddress{}
