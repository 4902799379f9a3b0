package iotago

// setBit returns a copy of the bitmask with the given bit index set, growing the underlying byte slice if needed.
func (bm AddressCapabilitiesBitMask) setBit(bitIndex int) AddressCapabilitiesBitMask {
	byteIndex := bitIndex / 8
	for len(bm) <= byteIndex {
		bm = append(bm, 0)
	}
	bm[byteIndex] |= 1 << uint(bitIndex%8)

	return bm
}

func (bm AddressCapabilitiesBitMask) hasBit(bitIndex int) bool {
	byteIndex := bitIndex / 8
	if byteIndex >= len(bm) {
		return false
	}

	return bm[byteIndex]&(1<<uint(bitIndex%8)) != 0
}

// Size returns the serialized size of the capabilities bitmask, including its length prefix byte.
func (bm AddressCapabilitiesBitMask) Size() int {
	return 1 + len(bm)
}

func (bm AddressCapabilitiesBitMask) CanReceiveNativeTokens() bool {
	return bm.hasBit(canReceiveNativeTokensBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveMana() bool {
	return bm.hasBit(canReceiveManaBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveOutputsWithTimelockUnlockCondition() bool {
	return bm.hasBit(canReceiveOutputsWithTimelockUnlockConditionBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveOutputsWithExpirationUnlockCondition() bool {
	return bm.hasBit(canReceiveOutputsWithExpirationUnlockConditionBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveOutputsWithStorageDepositReturnUnlockCondition() bool {
	return bm.hasBit(canReceiveOutputsWithStorageDepositReturnUnlockConditionBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveAccountOutputs() bool {
	return bm.hasBit(canReceiveAccountOutputsBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveNFTOutputs() bool {
	return bm.hasBit(canReceiveNFTOutputsBitIndex)
}

func (bm AddressCapabilitiesBitMask) CanReceiveDelegationOutputs() bool {
	return bm.hasBit(canReceiveDelegationOutputsBitIndex)
}

// AddressCapabilitiesOptions configures the capability bits of a RestrictedAddress being constructed.
type AddressCapabilitiesOptions struct {
	canReceiveNativeTokens                                   bool
	canReceiveMana                                            bool
	canReceiveOutputsWithTimelockUnlockCondition              bool
	canReceiveOutputsWithExpirationUnlockCondition             bool
	canReceiveOutputsWithStorageDepositReturnUnlockCondition   bool
	canReceiveAccountOutputs                                  bool
	canReceiveNFTOutputs                                      bool
	canReceiveDelegationOutputs                               bool
}

// AddressCapabilitiesOption applies one capability to an AddressCapabilitiesOptions instance.
type AddressCapabilitiesOption func(*AddressCapabilitiesOptions)

func WithAddressCanReceiveNativeTokens(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveNativeTokens = can }
}

func WithAddressCanReceiveMana(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveMana = can }
}

func WithAddressCanReceiveOutputsWithTimelockUnlockCondition(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveOutputsWithTimelockUnlockCondition = can }
}

func WithAddressCanReceiveOutputsWithExpirationUnlockCondition(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveOutputsWithExpirationUnlockCondition = can }
}

func WithAddressCanReceiveOutputsWithStorageDepositReturnUnlockCondition(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) {
		o.canReceiveOutputsWithStorageDepositReturnUnlockCondition = can
	}
}

func WithAddressCanReceiveAccountOutputs(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveAccountOutputs = can }
}

func WithAddressCanReceiveNFTOutputs(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveNFTOutputs = can }
}

func WithAddressCanReceiveDelegationOutputs(can bool) AddressCapabilitiesOption {
	return func(o *AddressCapabilitiesOptions) { o.canReceiveDelegationOutputs = can }
}

// AddressCapabilitiesBitMaskFromOptions builds a bitmask by applying every given option.
func AddressCapabilitiesBitMaskFromOptions(opts ...AddressCapabilitiesOption) AddressCapabilitiesBitMask {
	options := &AddressCapabilitiesOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var bm AddressCapabilitiesBitMask
	if options.canReceiveNativeTokens {
		bm = bm.setBit(canReceiveNativeTokensBitIndex)
	}
	if options.canReceiveMana {
		bm = bm.setBit(canReceiveManaBitIndex)
	}
	if options.canReceiveOutputsWithTimelockUnlockCondition {
		bm = bm.setBit(canReceiveOutputsWithTimelockUnlockConditionBitIndex)
	}
	if options.canReceiveOutputsWithExpirationUnlockCondition {
		bm = bm.setBit(canReceiveOutputsWithExpirationUnlockConditionBitIndex)
	}
	if options.canReceiveOutputsWithStorageDepositReturnUnlockCondition {
		bm = bm.setBit(canReceiveOutputsWithStorageDepositReturnUnlockConditionBitIndex)
	}
	if options.canReceiveAccountOutputs {
		bm = bm.setBit(canReceiveAccountOutputsBitIndex)
	}
	if options.canReceiveNFTOutputs {
		bm = bm.setBit(canReceiveNFTOutputsBitIndex)
	}
	if options.canReceiveDelegationOutputs {
		bm = bm.setBit(canReceiveDelegationOutputsBitIndex)
	}

	return bm
}
