package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// DelegationOutputs is a slice of DelegationOutput(s).
type DelegationOutputs []*DelegationOutput

// DelegationOutput is an output type used to delegate staked base tokens to a validator account without
// transferring custody, earning mana rewards for the delegator over the delegated epoch range.
type DelegationOutput struct {
	// The amount of IOTA tokens held by the output, fixed for the lifetime of the delegation.
	Amount BaseToken `serix:"0,mapKey=amount"`
	// The amount of IOTA tokens that were delegated when the output was last transitioned.
	DelegatedAmount BaseToken `serix:"1,mapKey=delegatedAmount"`
	// The identifier of this delegation, which is empty on genesis and derived from the OutputID thereafter.
	DelegationID DelegationID `serix:"2,mapKey=delegationId"`
	// The account the delegated tokens are delegated to.
	ValidatorAddress *AccountAddress `serix:"3,mapKey=validatorAddress"`
	// The epoch in which the delegation begins earning rewards.
	StartEpoch EpochIndex `serix:"4,mapKey=startEpoch"`
	// The epoch in which the delegation stops earning rewards. Zero while still active.
	EndEpoch EpochIndex `serix:"5,mapKey=endEpoch"`
	// The unlock conditions on this output: an AddressUnlockCondition.
	Conditions DelegationOutputUnlockConditions `serix:"6,mapKey=unlockConditions,omitempty"`
}

type (
	delegationOutputUnlockCondition  interface{ UnlockCondition }
	DelegationOutputUnlockConditions = UnlockConditions[delegationOutputUnlockCondition]
)

func (e *DelegationOutput) Clone() Output {
	//nolint:forcetypeassert // we can safely assume that this is an *AccountAddress
	return &DelegationOutput{
		Amount:           e.Amount,
		DelegatedAmount:  e.DelegatedAmount,
		DelegationID:     e.DelegationID,
		ValidatorAddress: e.ValidatorAddress.Clone().(*AccountAddress),
		StartEpoch:       e.StartEpoch,
		EndEpoch:         e.EndEpoch,
		Conditions:       e.Conditions.Clone(),
	}
}

func (e *DelegationOutput) UnlockableBy(ident Address, txCreationTime SlotIndex) bool {
	ok, _ := outputUnlockable(e, e.DelegationID, ident, txCreationTime)

	return ok
}

func (e *DelegationOutput) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.OffsetDelegation +
		storageScoreParams.FactorData.Multiply(serializer.SmallTypeDenotationByteSize+2*BaseTokenSize+DelegationIDLength+AccountAddressSerializedBytesLength+2*SlotIndexLength) +
		e.Conditions.StorageScore(storageScoreParams, nil)
}

func (e *DelegationOutput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	workScoreConditions, err := e.Conditions.WorkScore(workScoreParams)
	if err != nil {
		return 0, err
	}

	return workScoreParams.Output.Add(workScoreConditions)
}

func (e *DelegationOutput) FeatureSet() FeatureSet {
	return FeatureSet{}
}

func (e *DelegationOutput) ImmutableFeatureSet() FeatureSet {
	return FeatureSet{}
}

func (e *DelegationOutput) UnlockConditionSet() UnlockConditionSet {
	return e.Conditions.MustSet()
}

func (e *DelegationOutput) Deposit() BaseToken {
	return e.Amount
}

func (e *DelegationOutput) StoredMana() Mana {
	return 0
}

func (e *DelegationOutput) Ident() Address {
	return e.Conditions.MustSet().Address().Address
}

// ID returns the DelegationID of this output, deriving it from outputID if it is currently empty (genesis).
func (e *DelegationOutput) ID(outputID OutputID) DelegationID {
	if !e.DelegationID.Empty() {
		return e.DelegationID
	}

	return DelegationIDFromOutputID(outputID)
}

func (e *DelegationOutput) Chain() ChainID {
	return e.DelegationID
}

func (e *DelegationOutput) Type() OutputType {
	return OutputDelegation
}

func (e *DelegationOutput) Size() int {
	return serializer.SmallTypeDenotationByteSize +
		2*BaseTokenSize +
		DelegationIDLength +
		e.ValidatorAddress.Size() +
		2*SlotIndexLength +
		e.Conditions.Size()
}
