package iotago

import "github.com/iotaledger/hive.go/serializer/v2"

// ExpirationUnlockCondition hands the output over to ReturnAddress once SlotIndex has been reached, instead of the
// Address given by the output's AddressUnlockCondition.
type ExpirationUnlockCondition struct {
	ReturnAddress Address   `serix:"0,mapKey=returnAddress"`
	SlotIndex     SlotIndex `serix:"1,mapKey=slotIndex"`
}

func (s *ExpirationUnlockCondition) Clone() UnlockCondition {
	return &ExpirationUnlockCondition{
		ReturnAddress: s.ReturnAddress.Clone(),
		SlotIndex:     s.SlotIndex,
	}
}

func (s *ExpirationUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *ExpirationUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *ExpirationUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*ExpirationUnlockCondition)
	if !is {
		return false
	}

	return s.ReturnAddress.Equal(otherCond.ReturnAddress) && s.SlotIndex == otherCond.SlotIndex
}

func (s *ExpirationUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionExpiration
}

func (s *ExpirationUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.ReturnAddress.Size() + SlotIndexLength
}

// ReturnIdentCanUnlock tells whether the return address may unlock the output at the given slot, i.e. whether
// the expiration slot has been reached or passed.
func (s *ExpirationUnlockCondition) ReturnIdentCanUnlock(slotIndex SlotIndex) bool {
	return slotIndex >= s.SlotIndex
}
