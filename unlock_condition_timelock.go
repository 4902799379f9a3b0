package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// TimelockUnlockCondition prevents the output from being unlocked before the given SlotIndex.
type TimelockUnlockCondition struct {
	SlotIndex SlotIndex `serix:"0,mapKey=slotIndex"`
}

func (s *TimelockUnlockCondition) Clone() UnlockCondition {
	return &TimelockUnlockCondition{SlotIndex: s.SlotIndex}
}

func (s *TimelockUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *TimelockUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *TimelockUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*TimelockUnlockCondition)
	if !is {
		return false
	}

	return s.SlotIndex == otherCond.SlotIndex
}

func (s *TimelockUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionTimelock
}

func (s *TimelockUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + SlotIndexLength
}
