package iotago

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// InputType denotes the type of an Input.
type InputType byte

const (
	// InputUTXO denotes an Input that references an unspent output.
	InputUTXO InputType = iota
)

func (inputType InputType) String() string {
	if inputType == InputUTXO {
		return "UTXOInput"
	}

	return "unknown input type"
}

// Input references an unspent output to consume as the input of a transaction.
type Input interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[Input]
	constraints.Equalable[Input]

	// Type returns the type of Input.
	Type() InputType
}

func registerInputs(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Input)(nil),
		(*UTXOInput)(nil),
	)
}

// utxoInputSize is the serialized size of an UTXOInput: type byte + TransactionID + uint16 output index.
const utxoInputSize = serializer.SmallTypeDenotationByteSize + TransactionIDLength + serializer.UInt16ByteSize

// UTXOInput references an unspent output by the transaction that created it and its index therein.
type UTXOInput struct {
	// The ID of the transaction that created the referenced output.
	TransactionID TransactionID `serix:"0,mapKey=transactionId"`
	// The index of the referenced output in the transaction that created it.
	TransactionOutputIndex uint16 `serix:"1,mapKey=transactionOutputIndex"`
}

// ID returns the OutputID this UTXOInput references.
func (u *UTXOInput) ID() OutputID {
	return MustOutputIDFromTransactionIDAndIndex(u.TransactionID, u.TransactionOutputIndex)
}

func (u *UTXOInput) Clone() Input {
	return &UTXOInput{
		TransactionID:          u.TransactionID,
		TransactionOutputIndex: u.TransactionOutputIndex,
	}
}

func (u *UTXOInput) Equal(other Input) bool {
	otherInput, is := other.(*UTXOInput)
	if !is {
		return false
	}

	return u.TransactionID == otherInput.TransactionID && u.TransactionOutputIndex == otherInput.TransactionOutputIndex
}

func (u *UTXOInput) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(u.Size()))
}

func (u *UTXOInput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.Input, nil
}

func (u *UTXOInput) Type() InputType {
	return InputUTXO
}

func (u *UTXOInput) Size() int {
	return utxoInputSize
}

// ContextInputType denotes the type of a ContextInput.
type ContextInputType byte

const (
	// ContextInputCommitment denotes a CommitmentInput.
	ContextInputCommitment ContextInputType = iota
	// ContextInputBlockIssuanceCredit denotes a BlockIssuanceCreditInput.
	ContextInputBlockIssuanceCredit
	// ContextInputReward denotes a RewardInput.
	ContextInputReward
)

func (t ContextInputType) String() string {
	if int(t) >= len(contextInputNames) {
		return "unknown context input type"
	}

	return contextInputNames[t]
}

var contextInputNames = [ContextInputReward + 1]string{
	"CommitmentInput", "BlockIssuanceCreditInput", "RewardInput",
}

// ContextInput provides additional contextual information to the validation of a transaction, without being
// consumed or referencing an Output in the way a regular Input does.
type ContextInput interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[ContextInput]
	constraints.Equalable[ContextInput]

	// Type returns the type of ContextInput.
	Type() ContextInputType
}

func registerContextInputs(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*ContextInput)(nil),
		(*CommitmentInput)(nil),
		(*BlockIssuanceCreditInput)(nil),
		(*RewardInput)(nil),
	)
}

// commitmentInputSize is the serialized size of a CommitmentInput: type byte + Identifier.
const commitmentInputSize = serializer.SmallTypeDenotationByteSize + IdentifierLength

// CommitmentInput pins the validation of a transaction to a specific slot commitment, making the commitment's
// slot index and the state it attests to available to context-sensitive unlock conditions and features.
type CommitmentInput struct {
	CommitmentID Identifier `serix:"0,mapKey=commitmentId"`
}

func (c *CommitmentInput) Clone() ContextInput {
	return &CommitmentInput{CommitmentID: c.CommitmentID}
}

func (c *CommitmentInput) Equal(other ContextInput) bool {
	otherInput, is := other.(*CommitmentInput)
	if !is {
		return false
	}

	return c.CommitmentID == otherInput.CommitmentID
}

func (c *CommitmentInput) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(c.Size()))
}

func (c *CommitmentInput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.ContextInput, nil
}

func (c *CommitmentInput) Type() ContextInputType {
	return ContextInputCommitment
}

func (c *CommitmentInput) Size() int {
	return commitmentInputSize
}

// blockIssuanceCreditInputSize is the serialized size of a BlockIssuanceCreditInput: type byte + AccountID.
const blockIssuanceCreditInputSize = serializer.SmallTypeDenotationByteSize + AccountIDLength

// BlockIssuanceCreditInput references an account whose block issuance credit balance is made available to the
// semantic validation of the transaction, e.g. to check a BlockIssuerFeature transition for non-negativity.
type BlockIssuanceCreditInput struct {
	AccountID AccountID `serix:"0,mapKey=accountId"`
}

func (b *BlockIssuanceCreditInput) Clone() ContextInput {
	return &BlockIssuanceCreditInput{AccountID: b.AccountID}
}

func (b *BlockIssuanceCreditInput) Equal(other ContextInput) bool {
	otherInput, is := other.(*BlockIssuanceCreditInput)
	if !is {
		return false
	}

	return b.AccountID == otherInput.AccountID
}

func (b *BlockIssuanceCreditInput) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(b.Size()))
}

func (b *BlockIssuanceCreditInput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.ContextInput, nil
}

func (b *BlockIssuanceCreditInput) Type() ContextInputType {
	return ContextInputBlockIssuanceCredit
}

func (b *BlockIssuanceCreditInput) Size() int {
	return blockIssuanceCreditInputSize
}

// RewardInputIndex is the index of an Input within a transaction's Inputs that a RewardInput claims rewards for.
type RewardInputIndex = uint16

// rewardInputSize is the serialized size of a RewardInput: type byte + uint16 index.
const rewardInputSize = serializer.SmallTypeDenotationByteSize + serializer.UInt16ByteSize

// RewardInput references a staking or delegation Input by index, claiming the mana rewards accrued on it.
type RewardInput struct {
	Index RewardInputIndex `serix:"0,mapKey=index"`
}

func (r *RewardInput) Clone() ContextInput {
	return &RewardInput{Index: r.Index}
}

func (r *RewardInput) Equal(other ContextInput) bool {
	otherInput, is := other.(*RewardInput)
	if !is {
		return false
	}

	return r.Index == otherInput.Index
}

func (r *RewardInput) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(r.Size()))
}

func (r *RewardInput) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.ContextInput, nil
}

func (r *RewardInput) Type() ContextInputType {
	return ContextInputReward
}

func (r *RewardInput) Size() int {
	return rewardInputSize
}
