package iotago

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// AddressType defines the type of addresses.
type AddressType byte

const (
	AddressEd25519 AddressType = iota
	AddressAccount
	AddressNFT
	AddressAnchor
	AddressImplicitAccountCreation
	AddressRestricted
)

func (addrType AddressType) String() string {
	if int(addrType) >= len(addressNames) {
		return "unknown address type"
	}

	return addressNames[addrType]
}

var addressNames = [AddressRestricted + 1]string{
	"Ed25519Address",
	"AccountAddress",
	"NFTAddress",
	"AnchorAddress",
	"ImplicitAccountCreationAddress",
	"RestrictedAddress",
}

// Address describes a general address.
type Address interface {
	Sizer
	NonEphemeralObject
	constraints.Cloneable[Address]
	constraints.Equalable[Address]
	constraints.Comparable[Address]

	// Type returns the type of the address.
	Type() AddressType

	// Bech32 encodes the address as a bech32 string.
	Bech32(hrp NetworkPrefix) string

	// Key returns a string which can be used to index the address in a map.
	Key() string

	// Unlock checks that the given Unlock unlocks this Address for msg.
	Unlock(msg []byte, sig Unlock) error
}

// DirectUnlockableAddress is a type of Address which can be directly unlocked with a cryptographic signature.
type DirectUnlockableAddress interface {
	Address

	// VerifySignature checks whether the given signature verifies the given message.
	VerifySignature(msg []byte, sig Signature) error
}

// ChainAddress is a type of Address representing ownership of an output by a chain-constrained output (account,
// NFT, anchor).
type ChainAddress interface {
	Address

	// ChainID returns the ChainID this ChainAddress derives from.
	ChainID() ChainID
}

// AddressCapabilitiesBitMask is a bitmask to de/serialize capability flags of a RestrictedAddress.
type AddressCapabilitiesBitMask []byte

const (
	canReceiveNativeTokensBitIndex = iota
	canReceiveManaBitIndex
	canReceiveOutputsWithTimelockUnlockConditionBitIndex
	canReceiveOutputsWithExpirationUnlockConditionBitIndex
	canReceiveOutputsWithStorageDepositReturnUnlockConditionBitIndex
	canReceiveAccountOutputsBitIndex
	canReceiveNFTOutputsBitIndex
	canReceiveDelegationOutputsBitIndex
)

func registerAddresses(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Address)(nil),
		(*Ed25519Address)(nil),
		(*AccountAddress)(nil),
		(*NFTAddress)(nil),
		(*AnchorAddress)(nil),
		(*ImplicitAccountCreationAddress)(nil),
		(*RestrictedAddress)(nil),
	)
}
