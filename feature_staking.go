package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// StakingFeature marks an account as a registered validator participating in staking, committing to a fixed cost
// and a staked amount for the duration between StartEpoch and EndEpoch.
type StakingFeature struct {
	StakedAmount BaseToken  `serix:"0,mapKey=stakedAmount"`
	FixedCost    Mana       `serix:"1,mapKey=fixedCost"`
	StartEpoch   EpochIndex `serix:"2,mapKey=startEpoch"`
	EndEpoch     EpochIndex `serix:"3,mapKey=endEpoch"`
}

func (s *StakingFeature) Clone() Feature {
	return &StakingFeature{
		StakedAmount: s.StakedAmount,
		FixedCost:    s.FixedCost,
		StartEpoch:   s.StartEpoch,
		EndEpoch:     s.EndEpoch,
	}
}

func (s *StakingFeature) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.OffsetStakingFeature
}

func (s *StakingFeature) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.Staking, nil
}

func (s *StakingFeature) Equal(other Feature) bool {
	otherFeat, is := other.(*StakingFeature)
	if !is {
		return false
	}

	return s.StakedAmount == otherFeat.StakedAmount &&
		s.FixedCost == otherFeat.FixedCost &&
		s.StartEpoch == otherFeat.StartEpoch &&
		s.EndEpoch == otherFeat.EndEpoch
}

func (s *StakingFeature) Type() FeatureType {
	return FeatureStaking
}

func (s *StakingFeature) Size() int {
	return serializer.SmallTypeDenotationByteSize + BaseTokenSize + ManaSize + 2*SlotIndexLength
}

// IsActive tells whether the staking feature is within its active staking period for the given epoch.
func (s *StakingFeature) IsActive(epoch EpochIndex) bool {
	return epoch >= s.StartEpoch && (s.EndEpoch == 0 || epoch < s.EndEpoch)
}
