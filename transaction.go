package iotago

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
)

// Transaction is a transaction consuming inputs, creating outputs and carrying the unlocks that authorize the
// consumption of its inputs.
type Transaction struct {
	Essence *TransactionEssence `serix:"0,mapKey=essence"`
	Unlocks Unlocks             `serix:"1,mapKey=unlocks"`
}

// PayloadType returns the type of this payload when a Transaction is itself embedded as a block's payload.
func (t *Transaction) PayloadType() PayloadType {
	return PayloadTransaction
}

func (t *Transaction) Clone() Payload {
	unlocks := make(Unlocks, len(t.Unlocks))
	for i, unlock := range t.Unlocks {
		unlocks[i] = unlock.Clone()
	}

	return &Transaction{
		Essence: t.Essence.Clone(),
		Unlocks: unlocks,
	}
}

func (t *Transaction) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(t.Size()))
}

func (t *Transaction) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	var sum WorkScore
	for _, input := range t.Essence.Inputs {
		inputScore, err := input.WorkScore(workScoreParams)
		if err != nil {
			return 0, err
		}
		sum, err = sum.Add(inputScore)
		if err != nil {
			return 0, err
		}
	}

	for _, contextInput := range t.Essence.ContextInputs {
		contextScore, err := contextInput.WorkScore(workScoreParams)
		if err != nil {
			return 0, err
		}
		sum, err = sum.Add(contextScore)
		if err != nil {
			return 0, err
		}
	}

	for _, output := range t.Essence.Outputs {
		outputScore, err := output.WorkScore(workScoreParams)
		if err != nil {
			return 0, err
		}
		sum, err = sum.Add(outputScore)
		if err != nil {
			return 0, err
		}
	}

	for _, unlock := range t.Unlocks {
		unlockScore, err := unlock.WorkScore(workScoreParams)
		if err != nil {
			return 0, err
		}
		sum, err = sum.Add(unlockScore)
		if err != nil {
			return 0, err
		}
	}

	allotmentsScore, err := workScoreParams.Allotment.Multiply(len(t.Essence.Allotments))
	if err != nil {
		return 0, err
	}

	return sum.Add(workScoreParams.Block, allotmentsScore)
}

func (t *Transaction) Size() int {
	size := t.Essence.Size()
	for _, unlock := range t.Unlocks {
		size += unlock.Size()
	}

	return size
}

// ID computes the TransactionID of this transaction: a BLAKE2b-256 hash of the signed payload, bound to the
// essence's creation slot.
func (t *Transaction) ID() (TransactionID, error) {
	data, err := commonSerixAPI().Encode(context.Background(), t)
	if err != nil {
		return EmptyTransactionID, ierrors.Wrap(err, "failed to serialize transaction")
	}

	return TransactionIDRepresentingData(t.Essence.CreationTime, data), nil
}

// MustID works like ID but panics on error.
func (t *Transaction) MustID() TransactionID {
	id, err := t.ID()
	if err != nil {
		panic(err)
	}

	return id
}

// OutputsSet returns the outputs of this transaction's essence indexed by their OutputID, computed from txID.
func (t *Transaction) OutputsSet(txID TransactionID) (OutputSet, error) {
	set := make(OutputSet, len(t.Essence.Outputs))
	for i, output := range t.Essence.Outputs {
		outputID, err := OutputIDFromTransactionIDAndIndex(txID, uint16(i))
		if err != nil {
			return nil, err
		}

		set[outputID] = output
	}

	return set, nil
}
