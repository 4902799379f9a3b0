package iotago

// Version denotes the version of the protocol a set of ProtocolParameters is valid for.
type Version byte

// NetworkPrefix denotes the Bech32 human-readable part used to encode addresses for a given network.
type NetworkPrefix string

const (
	// PrefixMainnet is the network prefix for the IOTA main network.
	PrefixMainnet NetworkPrefix = "iota"
	// PrefixShimmer is the network prefix for the Shimmer network.
	PrefixShimmer NetworkPrefix = "smr"
	// PrefixTestnet is the network prefix for test networks.
	PrefixTestnet NetworkPrefix = "rms"
)

const (
	apiV3Version Version = 3
)

// SlotIndexLength is the byte length of a SlotIndex as embedded in a TransactionID.
const SlotIndexLength = 4

// BaseTokenSize is the serialized byte size of a BaseToken amount.
const BaseTokenSize = 8

// ManaSize is the serialized byte size of a Mana value.
const ManaSize = 8

// Limits shared across builder, semantic validator and work-score estimation.
const (
	// MaxInputsCount is the maximum amount of inputs a transaction can have.
	MaxInputsCount = 128
	// MinInputsCount is the minimum amount of inputs a transaction must have.
	MinInputsCount = 1
	// MaxOutputsCount is the maximum amount of outputs a transaction can have.
	MaxOutputsCount = 128
	// MinOutputsCount is the minimum amount of outputs a transaction must have.
	MinOutputsCount = 1
	// MaxContextInputsCount is the maximum amount of context inputs a transaction can have.
	MaxContextInputsCount = 128
	// MaxAllotmentCount is the maximum amount of mana allotments a transaction can have.
	MaxAllotmentCount = 128
	// MaxNativeTokenCountPerOutput is the maximum amount of different native tokens a single output can carry.
	MaxNativeTokenCountPerOutput = 1
	// MaxNativeTokensCount is the maximum amount of distinct native token IDs that may appear across a
	// transaction's consumed and created outputs combined.
	MaxNativeTokensCount = 64
	// MaxOutputIndex is the highest permitted index component of an OutputID.
	MaxOutputIndex = 127
	// MaxBlockSize is the maximum size of a block in bytes, used for work-score upper bound estimation.
	MaxBlockSize = 32768
)
