package builder

import (
	"math/big"

	iotago "github.com/iotaledger/iota.go/v4"
)

// NewFoundryOutputBuilder creates a new FoundryOutputBuilder with the controlling account address, serial number,
// a SimpleTokenScheme carrying the given maximum supply, and an exact base token amount.
func NewFoundryOutputBuilder(controllerAddr *iotago.AccountAddress, amount iotago.BaseToken, serialNumber uint32, maximumSupply *big.Int) *FoundryOutputBuilder {
	return &FoundryOutputBuilder{output: &iotago.FoundryOutput{
		Amount:       amount,
		SerialNumber: serialNumber,
		TokenScheme: &iotago.SimpleTokenScheme{
			MintedTokens:  big.NewInt(0),
			MeltedTokens:  big.NewInt(0),
			MaximumSupply: maximumSupply,
		},
		Conditions: iotago.FoundryOutputUnlockConditions{
			&iotago.ImmutableAccountAddressUnlockCondition{Address: controllerAddr},
		},
		Features:          iotago.FoundryOutputFeatures{},
		ImmutableFeatures: iotago.FoundryOutputImmFeatures{},
	}}
}

// NewFoundryOutputBuilderWithMinimumAmount creates a new FoundryOutputBuilder, deferring the amount to the
// minimum storage deposit computed from storageScoreParams once Build is called.
func NewFoundryOutputBuilderWithMinimumAmount(controllerAddr *iotago.AccountAddress, storageScoreParams *iotago.StorageScoreParameters, serialNumber uint32, maximumSupply *big.Int) *FoundryOutputBuilder {
	builder := NewFoundryOutputBuilder(controllerAddr, 0, serialNumber, maximumSupply)
	builder.storageScoreParams = storageScoreParams

	return builder
}

// FoundryOutputBuilder builds an iotago.FoundryOutput.
type FoundryOutputBuilder struct {
	output             *iotago.FoundryOutput
	storageScoreParams *iotago.StorageScoreParameters
}

// Amount sets the base token amount of the output, switching the builder back to Exact mode.
func (builder *FoundryOutputBuilder) Amount(amount iotago.BaseToken) *FoundryOutputBuilder {
	builder.output.Amount = amount
	builder.storageScoreParams = nil

	return builder
}

// NativeToken sets/modifies the single iotago.NativeTokenFeature this foundry's token balance is carried in.
func (builder *FoundryOutputBuilder) NativeToken(nt *iotago.NativeToken) *FoundryOutputBuilder {
	builder.output.Features.Upsert(&iotago.NativeTokenFeature{NativeToken: *nt})

	return builder
}

// Metadata sets/modifies an iotago.MetadataFeature on the output.
func (builder *FoundryOutputBuilder) Metadata(data []byte) *FoundryOutputBuilder {
	builder.output.Features.Upsert(&iotago.MetadataFeature{Data: data})

	return builder
}

// ImmutableMetadata sets/modifies an iotago.MetadataFeature as an immutable feature on the output.
func (builder *FoundryOutputBuilder) ImmutableMetadata(data []byte) *FoundryOutputBuilder {
	builder.output.ImmutableFeatures.Upsert(&iotago.MetadataFeature{Data: data})

	return builder
}

// Build builds the iotago.FoundryOutput, resolving a Minimum-mode amount to the output's own minimum storage
// deposit.
func (builder *FoundryOutputBuilder) Build() (*iotago.FoundryOutput, error) {
	builder.output.Features.Sort()
	builder.output.ImmutableFeatures.Sort()

	if builder.storageScoreParams != nil {
		builder.output.Amount = builder.storageScoreParams.MinStorageDeposit(builder.output.StorageScore(builder.storageScoreParams, nil))
	}

	return builder.output, nil
}

// MustBuild works like Build() but panics if an error is encountered.
func (builder *FoundryOutputBuilder) MustBuild() *iotago.FoundryOutput {
	output, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return output
}
