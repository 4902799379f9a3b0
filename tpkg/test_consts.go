package tpkg

import iotago "github.com/iotaledger/iota.go/v4"

// TestTokenSupply is a test token supply constant.
// Do not use this constant outside of unit tests, instead, query it via a node.
const TestTokenSupply = 2_779_530_283_277_761

// TestProtocolVersion is a dummy protocol version.
// Do not use this constant outside of unit tests, instead, query it via a node.
const TestProtocolVersion = 3

// TestProtoParams is an instance of iotago.ProtocolParameters for testing purposes. It carries a zero storage
// cost so that tests can construct outputs without needing to reason about minimum deposit amounts, unless a
// test is specifically exercising storage score behavior.
// Only use this var in testing. Do not modify or use outside unit tests.
var TestProtoParams = iotago.NewV3ProtocolParameters(
	iotago.WithNetworkOptions("testnet", iotago.PrefixTestnet),
	iotago.WithSupplyOptions(TestTokenSupply, 0, 0),
	iotago.WithWorkScoreOptions(1, 100, 500, 40, 20, 100, 100, 20, 20, 50, 9, 2),
	iotago.WithTimeProviderOptions(0, 10, 13),
	iotago.WithManaOptions(
		1,
		27,
		[]uint32{
			10_000_000, 9_000_000, 8_100_000, 7_290_000, 6_561_000, 5_904_900,
		},
		32,
		1_000_000,
		20,
	),
	iotago.WithLivenessOptions(10, 3, 4),
	iotago.WithStakingOptions(10),
	iotago.WithVersionSignalingOptions(7, 5, 7),
)

// TestAPI is an iotago.API instance built from TestProtoParams, used throughout tests to encode/decode fixtures.
// Only use this var in testing. Do not modify or use outside unit tests.
var TestAPI = iotago.V3API(TestProtoParams)

// TestNetworkID is a test network ID.
var TestNetworkID = TestProtoParams.NetworkID()
