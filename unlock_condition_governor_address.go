package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// GovernorAddressUnlockCondition defines the Address that is allowed to do governance transitions on an Account
// output, i.e. changes to the state controller, governor or immutable features.
type GovernorAddressUnlockCondition struct {
	Address Address `serix:"0,mapKey=address"`
}

func (s *GovernorAddressUnlockCondition) Clone() UnlockCondition {
	return &GovernorAddressUnlockCondition{Address: s.Address.Clone()}
}

func (s *GovernorAddressUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *GovernorAddressUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *GovernorAddressUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*GovernorAddressUnlockCondition)
	if !is {
		return false
	}

	return s.Address.Equal(otherCond.Address)
}

func (s *GovernorAddressUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionGovernorAddress
}

func (s *GovernorAddressUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
