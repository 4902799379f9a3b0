package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// ImmutableAccountAddressUnlockCondition marks a foundry output as permanently controlled by the given
// AccountAddress; it may never be changed or removed across the foundry's lifetime.
type ImmutableAccountAddressUnlockCondition struct {
	Address *AccountAddress `serix:"0,mapKey=address"`
}

func (s *ImmutableAccountAddressUnlockCondition) Clone() UnlockCondition {
	//nolint:forcetypeassert // we can safely assume that this is an *AccountAddress
	return &ImmutableAccountAddressUnlockCondition{Address: s.Address.Clone().(*AccountAddress)}
}

func (s *ImmutableAccountAddressUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *ImmutableAccountAddressUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *ImmutableAccountAddressUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*ImmutableAccountAddressUnlockCondition)
	if !is {
		return false
	}

	return s.Address.Equal(otherCond.Address)
}

func (s *ImmutableAccountAddressUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionImmutableAccountAddress
}

func (s *ImmutableAccountAddressUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.Address.Size()
}
