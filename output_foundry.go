package iotago

import (
	"math/big"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

type (
	foundryOutputUnlockCondition interface{ UnlockCondition }
	foundryOutputFeature         interface{ Feature }
	foundryOutputImmFeature      interface{ Feature }
	FoundryOutputUnlockConditions = UnlockConditions[foundryOutputUnlockCondition]
	FoundryOutputFeatures          = Features[foundryOutputFeature]
	FoundryOutputImmFeatures       = Features[foundryOutputImmFeature]
)

// FoundryOutputs is a slice of FoundryOutput(s).
type FoundryOutputs []*FoundryOutput

// FoundryOutput is an output type controlled by an account, used to mint and melt a single native token, identified
// by the combination of its controlling account address, serial number and token scheme type rather than by an
// OutputID hash.
type FoundryOutput struct {
	// The amount of IOTA tokens held by the output.
	Amount BaseToken `serix:"0,mapKey=amount"`
	// The serial number of the foundry with respect to the controlling account.
	SerialNumber uint32 `serix:"1,mapKey=serialNumber"`
	// The token scheme this foundry uses to mint and melt tokens.
	TokenScheme TokenScheme `serix:"2,mapKey=tokenScheme"`
	// The unlock conditions on this output: an ImmutableAccountAddressUnlockCondition.
	Conditions FoundryOutputUnlockConditions `serix:"3,mapKey=unlockConditions,omitempty"`
	// The features on the output.
	Features FoundryOutputFeatures `serix:"4,mapKey=features,omitempty"`
	// The immutable features on the output.
	ImmutableFeatures FoundryOutputImmFeatures `serix:"5,mapKey=immutableFeatures,omitempty"`
}

func (e *FoundryOutput) Clone() Output {
	return &FoundryOutput{
		Amount:            e.Amount,
		SerialNumber:      e.SerialNumber,
		TokenScheme:       e.TokenScheme.Clone(),
		Conditions:        e.Conditions.Clone(),
		Features:          e.Features.Clone(),
		ImmutableFeatures: e.ImmutableFeatures.Clone(),
	}
}

func (e *FoundryOutput) UnlockableBy(ident Address, txCreationTime SlotIndex) bool {
	ok, _ := outputUnlockable(e, nil, ident, txCreationTime)

	return ok
}

func (e *FoundryOutput) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.OffsetOutputOverhead +
		storageScoreParams.FactorData.Multiply(serializer.SmallTypeDenotationByteSize+BaseTokenSize+serializer.UInt32ByteSize) +
		e.TokenScheme.StorageScore(storageScoreParams, nil) +
		e.Conditions.StorageScore(storageScoreParams, nil) +
		e.Features.StorageScore(storageScoreParams, nil) +
		e.ImmutableFeatures.StorageScore(storageScoreParams, nil)
}

func (e *FoundryOutput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	workScoreConditions, err := e.Conditions.WorkScore(workScoreParams)
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

	workScoreTokenScheme, err := e.TokenScheme.WorkScore(workScoreParams)
	if err != nil {
		return 0, err
	}

	return workScoreParams.Output.Add(workScoreConditions, workScoreFeatures, workScoreImmFeatures, workScoreTokenScheme)
}

func (e *FoundryOutput) FeatureSet() FeatureSet {
	return e.Features.MustSet()
}

func (e *FoundryOutput) ImmutableFeatureSet() FeatureSet {
	return e.ImmutableFeatures.MustSet()
}

func (e *FoundryOutput) UnlockConditionSet() UnlockConditionSet {
	return e.Conditions.MustSet()
}

func (e *FoundryOutput) Deposit() BaseToken {
	return e.Amount
}

func (e *FoundryOutput) StoredMana() Mana {
	return 0
}

// Ident returns the AccountAddress controlling this foundry.
func (e *FoundryOutput) Ident() Address {
	return e.Conditions.MustSet().ImmutableAccount().Address
}

// ID computes the FoundryID of this output from its controlling account address, serial number and token scheme type.
func (e *FoundryOutput) ID() (FoundryID, error) {
	accountAddr, is := e.Ident().(*AccountAddress)
	if !is {
		return FoundryID{}, ierrors.New("foundry output is not controlled by an account address")
	}

	return FoundryIDFromAddressAndSerialNumberAndTokenScheme(accountAddr, e.SerialNumber, e.TokenScheme.Type()), nil
}

// MustID works like ID but panics on error.
func (e *FoundryOutput) MustID() FoundryID {
	id, err := e.ID()
	if err != nil {
		panic(err)
	}

	return id
}

// MustNativeTokenID returns the NativeTokenID (== FoundryID) of the token this foundry controls.
func (e *FoundryOutput) MustNativeTokenID() NativeTokenID {
	return e.MustID()
}

// Chain returns the FoundryID of this output.
func (e *FoundryOutput) Chain() ChainID {
	id, err := e.ID()
	if err != nil {
		return FoundryID{}
	}

	return id
}

func (e *FoundryOutput) Type() OutputType {
	return OutputFoundry
}

func (e *FoundryOutput) Size() int {
	return serializer.SmallTypeDenotationByteSize +
		BaseTokenSize +
		serializer.UInt32ByteSize +
		e.TokenScheme.Size() +
		e.Conditions.Size() +
		e.Features.Size() +
		e.ImmutableFeatures.Size()
}

// CirculatingSupply returns the circulating supply of the foundry's native token, for convenience.
func (e *FoundryOutput) CirculatingSupply() *big.Int {
	simple, is := e.TokenScheme.(*SimpleTokenScheme)
	if !is {
		return new(big.Int)
	}

	return simple.CirculatingSupply()
}
