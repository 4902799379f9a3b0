package iotago

import (
	"bytes"

	"github.com/iotaledger/hive.go/ierrors"
)

// RestrictedAddress wraps an underlying address with a set of capability restrictions, limiting what kinds of
// outputs and features may reference it. This generalizes the teacher's per-address-type restricted address
// pair (RestrictedEd25519Address, RestrictedAccountAddress) into a single wrapper applicable to any Address.
type RestrictedAddress struct {
	Address      Address                    `serix:"0,mapKey=address"`
	Capabilities AddressCapabilitiesBitMask `serix:"1,mapKey=capabilities,lengthPrefixType=uint8,maxLen=1"`
}

// RestrictedAddressWithCapabilities wraps addr with the capabilities produced by applying every given option.
func RestrictedAddressWithCapabilities(addr Address, opts ...AddressCapabilitiesOption) *RestrictedAddress {
	return &RestrictedAddress{
		Address:      addr,
		Capabilities: AddressCapabilitiesBitMaskFromOptions(opts...),
	}
}

func (addr *RestrictedAddress) Clone() Address {
	cpy := &RestrictedAddress{
		Address:      addr.Address.Clone(),
		Capabilities: append(AddressCapabilitiesBitMask{}, addr.Capabilities...),
	}

	return cpy
}

func (addr *RestrictedAddress) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	return storageScoreParams.FactorData.Multiply(StorageScore(addr.Size()))
}

func (addr *RestrictedAddress) Key() string {
	return addr.Address.Key() + string(addr.Capabilities)
}

func (addr *RestrictedAddress) Unlock(msg []byte, sig Unlock) error {
	return addr.Address.Unlock(msg, sig)
}

func (addr *RestrictedAddress) VerifySignature(msg []byte, sig Signature) error {
	direct, ok := addr.Address.(DirectUnlockableAddress)
	if !ok {
		return ierrors.Wrapf(ErrInvalidInputUnlock, "underlying address of type %T is not directly unlockable", addr.Address)
	}

	return direct.VerifySignature(msg, sig)
}

func (addr *RestrictedAddress) Equal(other Address) bool {
	otherAddr, is := other.(*RestrictedAddress)
	if !is {
		return false
	}

	return addr.Address.Equal(otherAddr.Address) && bytes.Equal(addr.Capabilities, otherAddr.Capabilities)
}

func (addr *RestrictedAddress) Type() AddressType {
	return AddressRestricted
}

func (addr *RestrictedAddress) Bech32(hrp NetworkPrefix) string {
	return bech32String(hrp, addr)
}

func (addr *RestrictedAddress) String() string {
	return addr.Bech32(PrefixTestnet)
}

func (addr *RestrictedAddress) Size() int {
	return 1 + addr.Address.Size() + addr.Capabilities.Size()
}

func (addr *RestrictedAddress) CanReceiveNativeTokens() bool {
	return addr.Capabilities.CanReceiveNativeTokens()
}

func (addr *RestrictedAddress) CanReceiveMana() bool {
	return addr.Capabilities.CanReceiveMana()
}

func (addr *RestrictedAddress) CanReceiveOutputsWithTimelockUnlockCondition() bool {
	return addr.Capabilities.CanReceiveOutputsWithTimelockUnlockCondition()
}

func (addr *RestrictedAddress) CanReceiveOutputsWithExpirationUnlockCondition() bool {
	return addr.Capabilities.CanReceiveOutputsWithExpirationUnlockCondition()
}

func (addr *RestrictedAddress) CanReceiveOutputsWithStorageDepositReturnUnlockCondition() bool {
	return addr.Capabilities.CanReceiveOutputsWithStorageDepositReturnUnlockCondition()
}

func (addr *RestrictedAddress) CanReceiveAccountOutputs() bool {
	return addr.Capabilities.CanReceiveAccountOutputs()
}

func (addr *RestrictedAddress) CanReceiveNFTOutputs() bool {
	return addr.Capabilities.CanReceiveNFTOutputs()
}

func (addr *RestrictedAddress) CanReceiveDelegationOutputs() bool {
	return addr.Capabilities.CanReceiveDelegationOutputs()
}
