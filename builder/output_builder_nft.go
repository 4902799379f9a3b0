package builder

import (
	"github.com/iotaledger/hive.go/ierrors"
	iotago "github.com/iotaledger/iota.go/v4"
)

var errNFTImmutableFeaturesChanged = ierrors.New("immutable features are not allowed to be changed")

// NewNFTOutputBuilder creates a new NFTOutputBuilder with the given address and an exact base token amount.
func NewNFTOutputBuilder(targetAddr iotago.Address, amount iotago.BaseToken) *NFTOutputBuilder {
	return &NFTOutputBuilder{output: &iotago.NFTOutput{
		Amount: amount,
		Mana:   0,
		NFTID:  iotago.EmptyNFTID,
		Conditions: iotago.NFTOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: targetAddr},
		},
		Features:          iotago.NFTOutputFeatures{},
		ImmutableFeatures: iotago.NFTOutputImmFeatures{},
	}}
}

// NewNFTOutputBuilderWithMinimumAmount creates a new NFTOutputBuilder, deferring the amount to the minimum storage
// deposit computed from storageScoreParams once Build is called.
func NewNFTOutputBuilderWithMinimumAmount(targetAddr iotago.Address, storageScoreParams *iotago.StorageScoreParameters) *NFTOutputBuilder {
	builder := NewNFTOutputBuilder(targetAddr, 0)
	builder.storageScoreParams = storageScoreParams

	return builder
}

// NewNFTOutputBuilderFromPrevious creates a new NFTOutputBuilder starting from a copy of the previous
// iotago.NFTOutput, for a state transition of an already-minted NFT.
func NewNFTOutputBuilderFromPrevious(previous *iotago.NFTOutput) *NFTOutputBuilder {
	return &NFTOutputBuilder{
		prev: previous,
		//nolint:forcetypeassert // we can safely assume that this is an NFTOutput
		output: previous.Clone().(*iotago.NFTOutput),
	}
}

// NFTOutputBuilder builds an iotago.NFTOutput.
type NFTOutputBuilder struct {
	prev               *iotago.NFTOutput
	output             *iotago.NFTOutput
	storageScoreParams *iotago.StorageScoreParameters
}

// Amount sets the base token amount of the output, switching the builder back to Exact mode.
func (builder *NFTOutputBuilder) Amount(amount iotago.BaseToken) *NFTOutputBuilder {
	builder.output.Amount = amount
	builder.storageScoreParams = nil

	return builder
}

// Mana sets the mana of the output.
func (builder *NFTOutputBuilder) Mana(mana iotago.Mana) *NFTOutputBuilder {
	builder.output.Mana = mana

	return builder
}

// NFTID sets the iotago.NFTID of this output. Do not call this function if the underlying iotago.NFTOutput is not
// new.
func (builder *NFTOutputBuilder) NFTID(nftID iotago.NFTID) *NFTOutputBuilder {
	builder.output.NFTID = nftID

	return builder
}

// NativeToken adds a native token to the output.
func (builder *NFTOutputBuilder) NativeToken(nt *iotago.NativeToken) *NFTOutputBuilder {
	builder.output.NativeTokens = append(builder.output.NativeTokens, nt)

	return builder
}

// Address sets/modifies an iotago.AddressUnlockCondition on the output.
func (builder *NFTOutputBuilder) Address(addr iotago.Address) *NFTOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.AddressUnlockCondition{Address: addr})

	return builder
}

// Timelock sets/modifies an iotago.TimelockUnlockCondition on the output.
func (builder *NFTOutputBuilder) Timelock(slot iotago.SlotIndex) *NFTOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.TimelockUnlockCondition{SlotIndex: slot})

	return builder
}

// Expiration sets/modifies an iotago.ExpirationUnlockCondition on the output.
func (builder *NFTOutputBuilder) Expiration(returnAddr iotago.Address, slot iotago.SlotIndex) *NFTOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.ExpirationUnlockCondition{ReturnAddress: returnAddr, SlotIndex: slot})

	return builder
}

// Sender sets/modifies an iotago.SenderFeature on the output.
func (builder *NFTOutputBuilder) Sender(senderAddr iotago.Address) *NFTOutputBuilder {
	builder.output.Features.Upsert(&iotago.SenderFeature{Address: senderAddr})

	return builder
}

// Metadata sets/modifies an iotago.MetadataFeature on the output.
func (builder *NFTOutputBuilder) Metadata(data []byte) *NFTOutputBuilder {
	builder.output.Features.Upsert(&iotago.MetadataFeature{Data: data})

	return builder
}

// ImmutableIssuer sets/modifies an iotago.IssuerFeature as an immutable feature on the output. Only call this
// function on a new iotago.NFTOutput.
func (builder *NFTOutputBuilder) ImmutableIssuer(issuer iotago.Address) *NFTOutputBuilder {
	builder.output.ImmutableFeatures.Upsert(&iotago.IssuerFeature{Address: issuer})

	return builder
}

// ImmutableMetadata sets/modifies an iotago.MetadataFeature as an immutable feature on the output. Only call this
// function on a new iotago.NFTOutput.
func (builder *NFTOutputBuilder) ImmutableMetadata(data []byte) *NFTOutputBuilder {
	builder.output.ImmutableFeatures.Upsert(&iotago.MetadataFeature{Data: data})

	return builder
}

// Build builds the iotago.NFTOutput, resolving a Minimum-mode amount to the output's own minimum storage deposit.
func (builder *NFTOutputBuilder) Build() (*iotago.NFTOutput, error) {
	if builder.prev != nil {
		if !builder.prev.ImmutableFeatures.Equal(builder.output.ImmutableFeatures) {
			return nil, errNFTImmutableFeaturesChanged
		}
	}

	builder.output.Conditions.Sort()
	builder.output.Features.Sort()
	builder.output.ImmutableFeatures.Sort()

	if builder.storageScoreParams != nil {
		builder.output.Amount = builder.storageScoreParams.MinStorageDeposit(builder.output.StorageScore(builder.storageScoreParams, nil))
	}

	return builder.output, nil
}

// MustBuild works like Build() but panics if an error is encountered.
func (builder *NFTOutputBuilder) MustBuild() *iotago.NFTOutput {
	output, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return output
}
