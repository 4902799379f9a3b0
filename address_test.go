//nolint:scopelint
package iotago_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	iotago "github.com/iotaledger/iota.go/v4"
	"github.com/iotaledger/iota.go/v4/tpkg"
)

func TestAddressDeSerialize(t *testing.T) {
	tests := []deSerializeTest{
		{
			name:   "ok - Ed25519Address",
			source: tpkg.RandEd25519Address(),
			target: &iotago.Ed25519Address{},
		},
		{
			name:   "ok - RestrictedAddress wrapping Ed25519Address, with capabilities",
			source: tpkg.RandRestrictedEd25519Address(iotago.AddressCapabilitiesBitMask{0xff}),
			target: &iotago.RestrictedAddress{Address: &iotago.Ed25519Address{}},
		},
		{
			name:   "ok - AccountAddress",
			source: tpkg.RandAccountAddress(),
			target: &iotago.AccountAddress{},
		},
		{
			name:   "ok - NFTAddress",
			source: tpkg.RandNFTAddress(),
			target: &iotago.NFTAddress{},
		},
		{
			name:   "ok - ImplicitAccountCreationAddress",
			source: tpkg.RandImplicitAccountCreationAddress(),
			target: &iotago.ImplicitAccountCreationAddress{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.deSerialize)
	}
}

var bech32Tests = []struct {
	name    string
	network iotago.NetworkPrefix
	addr    iotago.Address
}{
	{"Ed25519 mainnet", iotago.PrefixMainnet, tpkg.RandEd25519Address()},
	{"Ed25519 shimmer", iotago.PrefixShimmer, tpkg.RandEd25519Address()},
	{"Ed25519 testnet", iotago.PrefixTestnet, tpkg.RandEd25519Address()},
	{"AccountAddress mainnet", iotago.PrefixMainnet, tpkg.RandAccountAddress()},
	{"NFTAddress mainnet", iotago.PrefixMainnet, tpkg.RandNFTAddress()},
}

// TestBech32RoundTrip checks that parsing an address' own Bech32 encoding recovers the same network prefix and
// address.
func TestBech32RoundTrip(t *testing.T) {
	for _, tt := range bech32Tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.addr.Bech32(tt.network)

			network, addr, err := iotago.ParseBech32(encoded)
			assert.NoError(t, err)
			assert.Equal(t, tt.network, network)
			assert.Equal(t, tt.addr, addr)
		})
	}
}

func TestRestrictedAddressCapabilities(t *testing.T) {
	underlying := tpkg.RandEd25519Address()

	tests := []struct {
		name string
		opts []iotago.AddressCapabilitiesOption
		want func(*iotago.RestrictedAddress) bool
	}{
		{"native tokens", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveNativeTokens(true)}, (*iotago.RestrictedAddress).CanReceiveNativeTokens},
		{"mana", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveMana(true)}, (*iotago.RestrictedAddress).CanReceiveMana},
		{"timelock", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveOutputsWithTimelockUnlockCondition(true)}, (*iotago.RestrictedAddress).CanReceiveOutputsWithTimelockUnlockCondition},
		{"expiration", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveOutputsWithExpirationUnlockCondition(true)}, (*iotago.RestrictedAddress).CanReceiveOutputsWithExpirationUnlockCondition},
		{"storage deposit return", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveOutputsWithStorageDepositReturnUnlockCondition(true)}, (*iotago.RestrictedAddress).CanReceiveOutputsWithStorageDepositReturnUnlockCondition},
		{"account outputs", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveAccountOutputs(true)}, (*iotago.RestrictedAddress).CanReceiveAccountOutputs},
		{"nft outputs", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveNFTOutputs(true)}, (*iotago.RestrictedAddress).CanReceiveNFTOutputs},
		{"delegation outputs", []iotago.AddressCapabilitiesOption{iotago.WithAddressCanReceiveDelegationOutputs(true)}, (*iotago.RestrictedAddress).CanReceiveDelegationOutputs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := iotago.RestrictedAddressWithCapabilities(underlying, tt.opts...)
			assert.True(t, tt.want(addr))

			b, err := tpkg.TestAPI.Encode(addr)
			assert.NoError(t, err)
			assert.Equal(t, addr.Size(), len(b))
		})
	}

	t.Run("no capabilities yields an empty bitmask", func(t *testing.T) {
		addr := iotago.RestrictedAddressWithCapabilities(underlying)
		assert.Equal(t, iotago.AddressCapabilitiesBitMask(nil), addr.Capabilities)
	})
}
