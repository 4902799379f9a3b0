package builder

import (
	iotago "github.com/iotaledger/iota.go/v4"
)

// NewBasicOutputBuilder creates a new BasicOutputBuilder with the given address and an exact base token amount.
func NewBasicOutputBuilder(targetAddr iotago.Address, amount iotago.BaseToken) *BasicOutputBuilder {
	return &BasicOutputBuilder{output: &iotago.BasicOutput{
		Amount: amount,
		Mana:   0,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: targetAddr},
		},
		Features: iotago.BasicOutputFeatures{},
	}}
}

// NewBasicOutputBuilderWithMinimumAmount creates a new BasicOutputBuilder with the given address, deferring the
// amount to the minimum storage deposit computed from storageScoreParams once Build is called.
func NewBasicOutputBuilderWithMinimumAmount(targetAddr iotago.Address, storageScoreParams *iotago.StorageScoreParameters) *BasicOutputBuilder {
	builder := NewBasicOutputBuilder(targetAddr, 0)
	builder.storageScoreParams = storageScoreParams

	return builder
}

// BasicOutputBuilder builds an iotago.BasicOutput. Its amount mode is Exact (the amount given to
// NewBasicOutputBuilder is kept as-is) unless NewBasicOutputBuilderWithMinimumAmount was used, in which case Build
// sets the amount to the output's own minimum storage deposit.
type BasicOutputBuilder struct {
	output             *iotago.BasicOutput
	storageScoreParams *iotago.StorageScoreParameters
}

// Amount sets the base token amount of the output, switching the builder back to Exact mode.
func (builder *BasicOutputBuilder) Amount(amount iotago.BaseToken) *BasicOutputBuilder {
	builder.output.Amount = amount
	builder.storageScoreParams = nil

	return builder
}

// Mana sets the mana of the output.
func (builder *BasicOutputBuilder) Mana(mana iotago.Mana) *BasicOutputBuilder {
	builder.output.Mana = mana

	return builder
}

// NativeToken adds a native token to the output.
func (builder *BasicOutputBuilder) NativeToken(nt *iotago.NativeToken) *BasicOutputBuilder {
	builder.output.NativeTokens = append(builder.output.NativeTokens, nt)

	return builder
}

// Address sets/modifies an iotago.AddressUnlockCondition on the output.
func (builder *BasicOutputBuilder) Address(addr iotago.Address) *BasicOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.AddressUnlockCondition{Address: addr})

	return builder
}

// Timelock sets/modifies an iotago.TimelockUnlockCondition on the output.
func (builder *BasicOutputBuilder) Timelock(slot iotago.SlotIndex) *BasicOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.TimelockUnlockCondition{SlotIndex: slot})

	return builder
}

// Expiration sets/modifies an iotago.ExpirationUnlockCondition on the output.
func (builder *BasicOutputBuilder) Expiration(returnAddr iotago.Address, slot iotago.SlotIndex) *BasicOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.ExpirationUnlockCondition{ReturnAddress: returnAddr, SlotIndex: slot})

	return builder
}

// StorageDepositReturn sets/modifies an iotago.StorageDepositReturnUnlockCondition on the output.
func (builder *BasicOutputBuilder) StorageDepositReturn(returnAddr iotago.Address, amount iotago.BaseToken) *BasicOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.StorageDepositReturnUnlockCondition{ReturnAddress: returnAddr, Amount: amount})

	return builder
}

// Sender sets/modifies an iotago.SenderFeature on the output.
func (builder *BasicOutputBuilder) Sender(senderAddr iotago.Address) *BasicOutputBuilder {
	builder.output.Features.Upsert(&iotago.SenderFeature{Address: senderAddr})

	return builder
}

// Tag sets/modifies an iotago.TagFeature on the output.
func (builder *BasicOutputBuilder) Tag(tag []byte) *BasicOutputBuilder {
	builder.output.Features.Upsert(&iotago.TagFeature{Tag: tag})

	return builder
}

// Metadata sets/modifies an iotago.MetadataFeature on the output.
func (builder *BasicOutputBuilder) Metadata(data []byte) *BasicOutputBuilder {
	builder.output.Features.Upsert(&iotago.MetadataFeature{Data: data})

	return builder
}

// Build builds the iotago.BasicOutput, resolving a Minimum-mode amount to the output's own minimum storage
// deposit. An Exact-mode amount is kept as given and is not checked against the minimum storage deposit.
func (builder *BasicOutputBuilder) Build() (*iotago.BasicOutput, error) {
	builder.output.Conditions.Sort()
	builder.output.Features.Sort()

	if builder.storageScoreParams != nil {
		builder.output.Amount = builder.storageScoreParams.MinStorageDeposit(builder.output.StorageScore(builder.storageScoreParams, nil))
	}

	return builder.output, nil
}

// MustBuild works like Build() but panics if an error is encountered.
func (builder *BasicOutputBuilder) MustBuild() *iotago.BasicOutput {
	output, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return output
}
