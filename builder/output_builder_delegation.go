package builder

import (
	iotago "github.com/iotaledger/iota.go/v4"
)

// NewDelegationOutputBuilder creates a new DelegationOutputBuilder with the given address, validator, start epoch
// and an exact base token amount; DelegatedAmount is initialized to amount, matching a fresh delegation.
func NewDelegationOutputBuilder(validatorAddr *iotago.AccountAddress, targetAddr iotago.Address, amount iotago.BaseToken, startEpoch iotago.EpochIndex) *DelegationOutputBuilder {
	return &DelegationOutputBuilder{output: &iotago.DelegationOutput{
		Amount:           amount,
		DelegatedAmount:  amount,
		DelegationID:     iotago.EmptyDelegationID,
		ValidatorAddress: validatorAddr,
		StartEpoch:       startEpoch,
		EndEpoch:         0,
		Conditions: iotago.DelegationOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: targetAddr},
		},
	}}
}

// NewDelegationOutputBuilderWithMinimumAmount creates a new DelegationOutputBuilder, deferring the amount (and the
// delegated amount, which tracks it) to the minimum storage deposit computed from storageScoreParams once Build is
// called.
func NewDelegationOutputBuilderWithMinimumAmount(validatorAddr *iotago.AccountAddress, targetAddr iotago.Address, storageScoreParams *iotago.StorageScoreParameters, startEpoch iotago.EpochIndex) *DelegationOutputBuilder {
	builder := NewDelegationOutputBuilder(validatorAddr, targetAddr, 0, startEpoch)
	builder.storageScoreParams = storageScoreParams

	return builder
}

// NewDelegationOutputBuilderFromPrevious creates a new DelegationOutputBuilder starting from a copy of the
// previous iotago.DelegationOutput, for a claiming transition.
func NewDelegationOutputBuilderFromPrevious(previous *iotago.DelegationOutput) *DelegationOutputBuilder {
	return &DelegationOutputBuilder{
		//nolint:forcetypeassert // we can safely assume that this is a DelegationOutput
		output: previous.Clone().(*iotago.DelegationOutput),
	}
}

// DelegationOutputBuilder builds an iotago.DelegationOutput.
type DelegationOutputBuilder struct {
	output             *iotago.DelegationOutput
	storageScoreParams *iotago.StorageScoreParameters
}

// Amount sets the base token amount of the output, switching the builder back to Exact mode.
func (builder *DelegationOutputBuilder) Amount(amount iotago.BaseToken) *DelegationOutputBuilder {
	builder.output.Amount = amount
	builder.storageScoreParams = nil

	return builder
}

// DelegatedAmount sets the amount that was delegated when the output was last transitioned.
func (builder *DelegationOutputBuilder) DelegatedAmount(amount iotago.BaseToken) *DelegationOutputBuilder {
	builder.output.DelegatedAmount = amount

	return builder
}

// DelegationID sets the iotago.DelegationID of this output. Do not call this function if the underlying
// iotago.DelegationOutput is not new.
func (builder *DelegationOutputBuilder) DelegationID(delegationID iotago.DelegationID) *DelegationOutputBuilder {
	builder.output.DelegationID = delegationID

	return builder
}

// EndEpoch sets the epoch the delegation stops earning rewards in, i.e. claims it.
func (builder *DelegationOutputBuilder) EndEpoch(epoch iotago.EpochIndex) *DelegationOutputBuilder {
	builder.output.EndEpoch = epoch

	return builder
}

// Address sets/modifies an iotago.AddressUnlockCondition on the output.
func (builder *DelegationOutputBuilder) Address(addr iotago.Address) *DelegationOutputBuilder {
	builder.output.Conditions.Upsert(&iotago.AddressUnlockCondition{Address: addr})

	return builder
}

// Build builds the iotago.DelegationOutput, resolving a Minimum-mode amount to the output's own minimum storage
// deposit. DelegatedAmount tracks Amount whenever the two are still equal, matching a non-yet-claimed delegation.
func (builder *DelegationOutputBuilder) Build() (*iotago.DelegationOutput, error) {
	builder.output.Conditions.Sort()

	if builder.storageScoreParams != nil {
		trackDelegated := builder.output.Amount == builder.output.DelegatedAmount
		builder.output.Amount = builder.storageScoreParams.MinStorageDeposit(builder.output.StorageScore(builder.storageScoreParams, nil))
		if trackDelegated {
			builder.output.DelegatedAmount = builder.output.Amount
		}
	}

	return builder.output, nil
}

// MustBuild works like Build() but panics if an error is encountered.
func (builder *DelegationOutputBuilder) MustBuild() *iotago.DelegationOutput {
	output, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return output
}
