package iotago

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// AccountAddressSerializedBytesLength is the serialized size of an AccountAddress: type byte + AccountID.
const AccountAddressSerializedBytesLength = 1 + AccountIDLength

// AccountAddress is the address of an account, derived from its AccountID.
type AccountAddress [AccountIDLength]byte

func (addr *AccountAddress) Clone() Address {
	cpy := &AccountAddress{}
	copy(cpy[:], addr[:])

	return cpy
}

func (addr *AccountAddress) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *AccountAddress) Key() string {
	return hexutil.EncodeHex([]byte{byte(addr.Type())}) + hexutil.EncodeHex(addr[:])
}

func (addr *AccountAddress) Unlock(msg []byte, sig Unlock) error {
	switch u := sig.(type) {
	case *AccountUnlock:
		return nil
	default:
		return ierrors.Wrapf(ErrInvalidInputUnlock, "can not unlock AccountAddress with unlock of type %T", u)
	}
}

func (addr *AccountAddress) Equal(other Address) bool {
	otherAddr, is := other.(*AccountAddress)
	if !is {
		return false
	}

	return *addr == *otherAddr
}

func (addr *AccountAddress) Type() AddressType {
	return AddressAccount
}

func (addr *AccountAddress) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *AccountAddress) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *AccountAddress) Size() int {
	return 1 + AccountIDLength
}

// ChainID returns the AccountID this address derives from.
func (addr *AccountAddress) ChainID() ChainID {
	return AccountID(*addr)
}

// AccountID returns the AccountID this address derives from.
func (addr *AccountAddress) AccountID() AccountID {
	return AccountID(*addr)
}

var _ ChainAddress = &AccountAddress{}
