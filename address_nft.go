package iotago

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// NFTAddress is the address of an NFT, derived from its NFTID.
type NFTAddress [NFTIDLength]byte

func (addr *NFTAddress) Clone() Address {
	cpy := &NFTAddress{}
	copy(cpy[:], addr[:])

	return cpy
}

func (addr *NFTAddress) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *NFTAddress) Key() string {
	return hexutil.EncodeHex([]byte{byte(addr.Type())}) + hexutil.EncodeHex(addr[:])
}

func (addr *NFTAddress) Unlock(msg []byte, sig Unlock) error {
	switch u := sig.(type) {
	case *NFTUnlock:
		return nil
	default:
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock NFTAddress with unlock of type %T", u)
	}
}

func (addr *NFTAddress) Equal(other Address) bool {
	otherAddr, is := other.(*NFTAddress)
	if !is {
		return false
	}

	return *addr == *otherAddr
}

func (addr *NFTAddress) Type() AddressType {
	return AddressNFT
}

func (addr *NFTAddress) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *NFTAddress) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *NFTAddress) Size() int {
	return 1 + NFTIDLength
}

func (addr *NFTAddress) ChainID() ChainID {
	return NFTID(*addr)
}

func (addr *NFTAddress) NFTID() NFTID {
	return NFTID(*addr)
}

var _ ChainAddress = &NFTAddress{}
