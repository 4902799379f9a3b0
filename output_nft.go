package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

type (
	nftOutputUnlockCondition interface{ UnlockCondition }
	nftOutputFeature         interface{ Feature }
	nftOutputImmFeature      interface{ Feature }
	NFTOutputUnlockConditions = UnlockConditions[nftOutputUnlockCondition]
	NFTOutputFeatures          = Features[nftOutputFeature]
	NFTOutputImmFeatures       = Features[nftOutputImmFeature]
)

// NFTOutputs is a slice of NFTOutput(s).
type NFTOutputs []*NFTOutput

// NFTOutput is an output type representing a unique, non-fungible token.
type NFTOutput struct {
	// The amount of IOTA tokens held by the output.
	Amount BaseToken `serix:"0,mapKey=amount"`
	// The stored mana held by the output.
	Mana Mana `serix:"1,mapKey=mana"`
	// The native tokens held by the output.
	NativeTokens NativeTokens `serix:"2,mapKey=nativeTokens,omitempty"`
	// The identifier of this NFT, which is empty on genesis and derived from the OutputID thereafter.
	NFTID NFTID `serix:"3,mapKey=nftId"`
	// The unlock conditions on this output.
	Conditions NFTOutputUnlockConditions `serix:"4,mapKey=unlockConditions,omitempty"`
	// The features on the output.
	Features NFTOutputFeatures `serix:"5,mapKey=features,omitempty"`
	// The immutable features on the output, fixed at genesis.
	ImmutableFeatures NFTOutputImmFeatures `serix:"6,mapKey=immutableFeatures,omitempty"`
}

func (e *NFTOutput) Clone() Output {
	return &NFTOutput{
		Amount:            e.Amount,
		Mana:              e.Mana,
		NativeTokens:      e.NativeTokens.Clone(),
		NFTID:             e.NFTID,
		Conditions:        e.Conditions.Clone(),
		Features:          e.Features.Clone(),
		ImmutableFeatures: e.ImmutableFeatures.Clone(),
	}
}

func (e *NFTOutput) UnlockableBy(ident Address, txCreationTime SlotIndex) bool {
	ok, _ := outputUnlockable(e, e.NFTID, ident, txCreationTime)

	return ok
}

func (e *NFTOutput) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	return storageScoreParams.OffsetOutputOverhead +
		storageScoreParams.FactorData.Multiply(serializer.SmallTypeDenotationByteSize+BaseTokenSize+ManaSize+NFTIDLength) +
		e.NativeTokens.StorageScore(storageScoreParams, nil) +
		e.Conditions.StorageScore(storageScoreParams, nil) +
		e.Features.StorageScore(storageScoreParams, nil) +
		e.ImmutableFeatures.StorageScore(storageScoreParams, nil)
}

func (e *NFTOutput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
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

	return workScoreParams.Output.Add(workScoreConditions, workScoreFeatures, workScoreImmFeatures)
}

func (e *NFTOutput) NativeTokenList() NativeTokens {
	return e.NativeTokens
}

func (e *NFTOutput) FeatureSet() FeatureSet {
	return e.Features.MustSet()
}

func (e *NFTOutput) ImmutableFeatureSet() FeatureSet {
	return e.ImmutableFeatures.MustSet()
}

func (e *NFTOutput) UnlockConditionSet() UnlockConditionSet {
	return e.Conditions.MustSet()
}

func (e *NFTOutput) Deposit() BaseToken {
	return e.Amount
}

func (e *NFTOutput) StoredMana() Mana {
	return e.Mana
}

func (e *NFTOutput) Ident() Address {
	return e.Conditions.MustSet().Address().Address
}

// ID returns the NFTID of this output, deriving it from outputID if it is currently empty (genesis).
func (e *NFTOutput) ID(outputID OutputID) NFTID {
	if !e.NFTID.Empty() {
		return e.NFTID
	}

	return NFTIDFromOutputID(outputID)
}

func (e *NFTOutput) Chain() ChainID {
	return e.NFTID
}

func (e *NFTOutput) Type() OutputType {
	return OutputNFT
}

func (e *NFTOutput) Size() int {
	return serializer.SmallTypeDenotationByteSize +
		BaseTokenSize +
		ManaSize +
		e.NativeTokens.Size() +
		NFTIDLength +
		e.Conditions.Size() +
		e.Features.Size() +
		e.ImmutableFeatures.Size()
}
