package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// AddressUnlockCondition is an unlock condition which restricts an output to be unlocked only by the given Address.
type AddressUnlockCondition struct {
	Address Address `serix:"0,mapKey=address"`
}

func (s *AddressUnlockCondition) Clone() UnlockCondition {
	return &AddressUnlockCondition{Address: s.Address.Clone()}
}

func (s *AddressUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *AddressUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *AddressUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*AddressUnlockCondition)
	if !is {
		return false
	}

	return s.Address.Equal(otherCond.Address)
}

func (s *AddressUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionAddress
}

func (s *AddressUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
