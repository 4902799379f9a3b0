package iotago

import (
	"math/big"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// StorageDepositReturnUnlockCondition requires the return of a given amount of base tokens to a return Address
// whenever the output it is attached to is consumed.
type StorageDepositReturnUnlockCondition struct {
	ReturnAddress Address   `serix:"0,mapKey=returnAddress"`
	Amount        BaseToken `serix:"1,mapKey=amount"`
}

func (s *StorageDepositReturnUnlockCondition) Clone() UnlockCondition {
	return &StorageDepositReturnUnlockCondition{
		ReturnAddress: s.ReturnAddress.Clone(),
		Amount:        s.Amount,
	}
}

func (s *StorageDepositReturnUnlockCondition) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(s.Size()))
}

func (s *StorageDepositReturnUnlockCondition) WorkScore(_ *WorkScoreParameters) (WorkScore, error) {
	return 0, nil
}

func (s *StorageDepositReturnUnlockCondition) Equal(other UnlockCondition) bool {
	otherCond, is := other.(*StorageDepositReturnUnlockCondition)
	if !is {
		return false
	}

	return s.ReturnAddress.Equal(otherCond.ReturnAddress) && s.Amount == otherCond.Amount
}

func (s *StorageDepositReturnUnlockCondition) Type() UnlockConditionType {
	return UnlockConditionStorageDepositReturn
}

func (s *StorageDepositReturnUnlockCondition) Size() int {
	return serializer.SmallTypeDenotationByteSize + s.ReturnAddress.Size() + BaseTokenSize
}

// AmountAsBigInt returns the return amount as a *big.Int, convenient for the balanced-deposit semantic checks.
func (s *StorageDepositReturnUnlockCondition) AmountAsBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(s.Amount))
}

// checkStorageDepositReturnAmount verifies that the return amount neither exceeds the output's total amount nor
// falls below the minimum storage deposit required for the implicit basic return output it funds.
func checkStorageDepositReturnAmount(storageScoreParams *StorageScoreParameters, outputAmount BaseToken, cond *StorageDepositReturnUnlockCondition) error {
	if cond.Amount > outputAmount {
		return ierrors.Wrapf(ErrStorageDepositReturnExceedsOutputAmount, "%d return amount exceeds %d output amount", cond.Amount, outputAmount)
	}

	returnOutput := &BasicOutput{
		Conditions: BasicOutputUnlockConditions{&AddressUnlockCondition{Address: cond.ReturnAddress}},
	}
	minStorageDepositForReturnOutput := storageScoreParams.MinStorageDeposit(returnOutput.StorageScore(storageScoreParams, nil))

	if cond.Amount < minStorageDepositForReturnOutput {
		return ierrors.Wrapf(ErrStorageDepositReturnOverflow, "%d return amount is less than the min storage deposit %d for the return output", cond.Amount, minStorageDepositForReturnOutput)
	}

	return nil
}
