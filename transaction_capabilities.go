package iotago

const (
	canBurnNativeTokensBitIndex = iota
	canBurnManaBitIndex
	canDestroyAccountOutputsBitIndex
	canDestroyFoundryOutputsBitIndex
	canDestroyNFTOutputsBitIndex
)

// TransactionCapabilitiesBitMask is a bitmask of capabilities a transaction explicitly grants itself, each
// permitting an otherwise-forbidden effect (burning funds, destroying a chain output) to pass semantic validation.
type TransactionCapabilitiesBitMask []byte

// TransactionCapabilitiesOptions configures a new TransactionCapabilitiesBitMask.
type TransactionCapabilitiesOptions struct {
	canBurnNativeTokens      bool
	canBurnMana              bool
	canDestroyAccountOutputs bool
	canDestroyFoundryOutputs bool
	canDestroyNFTOutputs     bool
}

// TransactionCapabilitiesOption configures a TransactionCapabilitiesOptions.
type TransactionCapabilitiesOption func(*TransactionCapabilitiesOptions)

// WithTransactionCanBurnNativeTokens sets whether the transaction may reduce the total native token supply.
func WithTransactionCanBurnNativeTokens(can bool) TransactionCapabilitiesOption {
	return func(o *TransactionCapabilitiesOptions) {
		o.canBurnNativeTokens = can
	}
}

// WithTransactionCanBurnMana sets whether the transaction may burn mana (spend more mana than it allots/outputs).
func WithTransactionCanBurnMana(can bool) TransactionCapabilitiesOption {
	return func(o *TransactionCapabilitiesOptions) {
		o.canBurnMana = can
	}
}

// WithTransactionCanDestroyAccountOutputs sets whether the transaction may destroy account outputs.
func WithTransactionCanDestroyAccountOutputs(can bool) TransactionCapabilitiesOption {
	return func(o *TransactionCapabilitiesOptions) {
		o.canDestroyAccountOutputs = can
	}
}

// WithTransactionCanDestroyFoundryOutputs sets whether the transaction may destroy foundry outputs.
func WithTransactionCanDestroyFoundryOutputs(can bool) TransactionCapabilitiesOption {
	return func(o *TransactionCapabilitiesOptions) {
		o.canDestroyFoundryOutputs = can
	}
}

// WithTransactionCanDestroyNFTOutputs sets whether the transaction may destroy NFT outputs.
func WithTransactionCanDestroyNFTOutputs(can bool) TransactionCapabilitiesOption {
	return func(o *TransactionCapabilitiesOptions) {
		o.canDestroyNFTOutputs = can
	}
}

// TransactionCapabilitiesBitMaskWithCapabilities creates a TransactionCapabilitiesBitMask with the given options set.
func TransactionCapabilitiesBitMaskWithCapabilities(opts ...TransactionCapabilitiesOption) TransactionCapabilitiesBitMask {
	options := &TransactionCapabilitiesOptions{}
	for _, opt := range opts {
		opt(options)
	}

	bm := TransactionCapabilitiesBitMask(make([]byte, 1))
	bm.setBit(canBurnNativeTokensBitIndex, options.canBurnNativeTokens)
	bm.setBit(canBurnManaBitIndex, options.canBurnMana)
	bm.setBit(canDestroyAccountOutputsBitIndex, options.canDestroyAccountOutputs)
	bm.setBit(canDestroyFoundryOutputsBitIndex, options.canDestroyFoundryOutputs)
	bm.setBit(canDestroyNFTOutputsBitIndex, options.canDestroyNFTOutputs)

	return bm
}

func (bm TransactionCapabilitiesBitMask) setBit(index int, value bool) {
	byteIndex := index / 8
	bitIndex := index % 8
	if !value {
		return
	}
	bm[byteIndex] |= 1 << bitIndex
}

func (bm TransactionCapabilitiesBitMask) hasBit(index int) bool {
	byteIndex := index / 8
	if byteIndex >= len(bm) {
		return false
	}
	bitIndex := index % 8

	return bm[byteIndex]&(1<<bitIndex) != 0
}

// CanBurnNativeTokens tells whether the native token burning capability is enabled.
func (bm TransactionCapabilitiesBitMask) CanBurnNativeTokens() bool {
	return bm.hasBit(canBurnNativeTokensBitIndex)
}

// CanBurnMana tells whether the mana burning capability is enabled.
func (bm TransactionCapabilitiesBitMask) CanBurnMana() bool {
	return bm.hasBit(canBurnManaBitIndex)
}

// CanDestroyAccountOutputs tells whether the account output destruction capability is enabled.
func (bm TransactionCapabilitiesBitMask) CanDestroyAccountOutputs() bool {
	return bm.hasBit(canDestroyAccountOutputsBitIndex)
}

// CanDestroyFoundryOutputs tells whether the foundry output destruction capability is enabled.
func (bm TransactionCapabilitiesBitMask) CanDestroyFoundryOutputs() bool {
	return bm.hasBit(canDestroyFoundryOutputsBitIndex)
}

// CanDestroyNFTOutputs tells whether the NFT output destruction capability is enabled.
func (bm TransactionCapabilitiesBitMask) CanDestroyNFTOutputs() bool {
	return bm.hasBit(canDestroyNFTOutputsBitIndex)
}
