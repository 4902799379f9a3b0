package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// StateControllerAddressUnlockCondition defines the Address that is allowed to do state transitions on an Account
// output, i.e. changes which do not qualify as governance transitions.
type StateControllerAddressUnlockCondition struct {
	Address Address `serix:"0,mapKey=address"`
}

func (s *StateControllerAddressUnlockCondition) Clone() UnlockCondition {
	return &StateControllerAddressUnlockCondition{Address: s.Address.Clone()}
}

func (s *StateControllerAddressUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *StateControllerAddressUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *StateControllerAddressUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*StateControllerAddressUnlockCondition)
	if !is {
		return false
	}

	return s.Address.Equal(otherCond.Address)
}

func (s *StateControllerAddressUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionStateControllerAddress
}

func (s *StateControllerAddressUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
