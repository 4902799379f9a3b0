package iotago

import (
	"github.com/iotaledger/hive.go/serializer/v2"
)

type (
	accountOutputUnlockCondition  interface{ UnlockCondition }
	accountOutputFeature          interface{ Feature }
	accountOutputImmFeature       interface{ Feature }
	AccountOutputUnlockConditions = UnlockConditions[accountOutputUnlockCondition]
	AccountOutputFeatures         = Features[accountOutputFeature]
	AccountOutputImmFeatures      = Features[accountOutputImmFeature]
)

// AccountOutputs is a slice of AccountOutput(s).
type AccountOutputs []*AccountOutput

// AccountOutput is an output type representing an account: a chain-constrained identity that may control
// foundries, issue blocks (when carrying a BlockIssuerFeature) and hold mutable state across transactions.
type AccountOutput struct {
	// The amount of IOTA tokens held by the output.
	Amount BaseToken `serix:"0,mapKey=amount"`
	// The stored mana held by the output.
	Mana Mana `serix:"1,mapKey=mana"`
	// The identifier of this account, which is empty on genesis and derived from the OutputID thereafter.
	AccountID AccountID `serix:"2,mapKey=accountId"`
	// Incremented on every state-controller-authorized transition.
	StateIndex uint32 `serix:"3,mapKey=stateIndex"`
	// Arbitrary binary data attached by the state controller, mutable on state transitions.
	StateMetadata []byte `serix:"4,lengthPrefixType=uint16,mapKey=stateMetadata,minLen=0,maxLen=8192,omitempty"`
	// The counter that denotes the number of foundries created by this account.
	FoundryCounter uint32 `serix:"5,mapKey=foundryCounter"`
	// The unlock conditions on this output: a StateControllerAddressUnlockCondition and a GovernorAddressUnlockCondition.
	UnlockConditions AccountOutputUnlockConditions `serix:"6,mapKey=unlockConditions,omitempty"`
	// The features on the output, mutable on state transitions.
	Features AccountOutputFeatures `serix:"7,mapKey=features,omitempty"`
	// The immutable features on the output, fixed at genesis.
	ImmutableFeatures AccountOutputImmFeatures `serix:"8,mapKey=immutableFeatures,omitempty"`
}

func (e *AccountOutput) Clone() Output {
	return &AccountOutput{
		Amount:            e.Amount,
		Mana:              e.Mana,
		AccountID:         e.AccountID,
		StateIndex:        e.StateIndex,
		StateMetadata:     append([]byte(nil), e.StateMetadata...),
		FoundryCounter:    e.FoundryCounter,
		UnlockConditions:  e.UnlockConditions.Clone(),
		Features:          e.Features.Clone(),
		ImmutableFeatures: e.ImmutableFeatures.Clone(),
	}
}

func (e *AccountOutput) UnlockableBy(ident Address, txCreationTime SlotIndex) bool {
	ok, _ := outputUnlockable(e, e.AccountID, ident, txCreationTime)

	return ok
}

func (e *AccountOutput) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.OffsetOutputOverhead +
		storageScoreParams.FactorData.Multiply(serializer.SmallTypeDenotationByteSize+BaseTokenSize+ManaSize+AccountIDLength+2*serializer.UInt32ByteSize+serializer.UInt16ByteSize+len(e.StateMetadata)) +
		e.UnlockConditions.StorageScore(storageScoreParams, nil) +
		e.Features.StorageScore(storageScoreParams, nil) +
		e.ImmutableFeatures.StorageScore(storageScoreParams, nil)
}

func (e *AccountOutput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	workScoreConditions, err := e.UnlockConditions.WorkScore(workScoreParams)
	if err != nil {
		return 0, err
	}

	workScoreFeatures, err := e.Features.WorkScore(workScoreParams)
	if err != nil {
		return 0, err
	}

	workScoreImmFeatures, err := e.ImmutableFeatures.WorkScore(workScoreParams)
	if err != nil {
		return 0, err
	}

	return workScoreParams.Output.Add(workScoreConditions, workScoreFeatures, workScoreImmFeatures)
}

func (e *AccountOutput) FeatureSet() FeatureSet {
	return e.Features.MustSet()
}

func (e *AccountOutput) ImmutableFeatureSet() FeatureSet {
	return e.ImmutableFeatures.MustSet()
}

func (e *AccountOutput) UnlockConditionSet() UnlockConditionSet {
	return e.UnlockConditions.MustSet()
}

func (e *AccountOutput) Deposit() BaseToken {
	return e.Amount
}

func (e *AccountOutput) StoredMana() Mana {
	return e.Mana
}

// StateController returns the state controller address of this account.
func (e *AccountOutput) StateController() Address {
	return e.UnlockConditions.MustSet().StateControllerAddress().Address
}

// GovernorAddress returns the governor address of this account.
func (e *AccountOutput) GovernorAddress() Address {
	return e.UnlockConditions.MustSet().GovernorAddress().Address
}

// Ident returns the state controller address, the identity of the most common (state) transition path; callers
// that need governance semantics use GovernorAddress directly.
func (e *AccountOutput) Ident() Address {
	return e.StateController()
}

// Chain returns the AccountID of this output, or a zeroed AccountID if this is a genesis output.
func (e *AccountOutput) Chain() ChainID {
	return e.AccountID
}

// ID returns the AccountID of this output, deriving it from outputID if it is currently empty (genesis).
func (e *AccountOutput) ID(outputID OutputID) AccountID {
	if !e.AccountID.Empty() {
		return e.AccountID
	}

	return AccountIDFromOutputID(outputID)
}

// MustID returns the output's own AccountID without deriving one, and panics if that AccountID is empty (a genesis
// output, whose ID is only known from its OutputID).
func (e *AccountOutput) MustID() AccountID {
	if e.AccountID.Empty() {
		panic("cannot derive account ID of an output with empty AccountID outside of its creating transaction")
	}

	return e.AccountID
}

func (e *AccountOutput) Type() OutputType {
	return OutputAccount
}

func (e *AccountOutput) Size() int {
	return serializer.SmallTypeDenotationByteSize +
		BaseTokenSize +
		ManaSize +
		AccountIDLength +
		serializer.UInt32ByteSize + // state index
		serializer.UInt16ByteSize + len(e.StateMetadata) +
		serializer.UInt32ByteSize + // foundry counter
		e.UnlockConditions.Size() +
		e.Features.Size() +
		e.ImmutableFeatures.Size()
}
