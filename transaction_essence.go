package iotago

import (
	"context"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// InputsCommitmentLength is the byte length of a TransactionEssence's InputsCommitment field.
const InputsCommitmentLength = blake2b.Size256

// NetworkIDLength is the byte length of a NetworkID.
const NetworkIDLength = 8

// TransactionEssence is the essence part of a Transaction, carrying everything that is signed over.
type TransactionEssence struct {
	// NetworkID denotes the network this transaction was built for, preventing replay across networks.
	NetworkID NetworkID `serix:"0,mapKey=networkId"`
	// CreationTime is the slot this transaction was created in.
	CreationTime SlotIndex `serix:"1,mapKey=creationSlot"`
	// ContextInputs provide additional validation context (commitment, BIC, reward) without being consumed.
	ContextInputs ContextInputs `serix:"2,mapKey=contextInputs,omitempty"`
	// Inputs are the inputs to consume in order to fund the outputs of this transaction.
	Inputs Inputs `serix:"3,mapKey=inputs"`
	// InputsCommitment is the BLAKE2b-256 hash over the consumed outputs, in input order.
	InputsCommitment [InputsCommitmentLength]byte `serix:"4,mapKey=inputsCommitment"`
	// Outputs are the outputs this transaction creates.
	Outputs TxEssenceOutputs `serix:"5,mapKey=outputs"`
	// Allotments allot mana to accounts' block issuance credit balances.
	Allotments Allotments `serix:"6,mapKey=allotments,omitempty"`
	// Capabilities are the transaction capabilities this transaction explicitly grants itself.
	Capabilities TransactionCapabilitiesBitMask `serix:"7,lengthPrefixType=uint8,mapKey=capabilities,minLen=0,maxLen=1,omitempty"`
	// Payload is an optional payload carried alongside the value transfer, e.g. TaggedData.
	Payload TxEssencePayload `serix:"8,optional,mapKey=payload"`
}

type (
	// Inputs is a slice of Input.
	Inputs = []Input
	// ContextInputs is a slice of ContextInput.
	ContextInputs = []ContextInput
	// TxEssenceOutputs is a slice of Output, aliased for clarity within a TransactionEssence.
	TxEssenceOutputs = []Output
	// TxEssencePayload is the interface of payloads a TransactionEssence may carry.
	TxEssencePayload = Payload
)

// SigningMessage returns the BLAKE2b-256 hash of the serialized essence, the message that gets signed by every
// unlock of the transaction this essence belongs to.
func (e *TransactionEssence) SigningMessage() ([]byte, error) {
	essenceBytes, err := commonSerixAPI().Encode(context.Background(), e)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to serialize transaction essence")
	}

	sum := blake2bSum256(essenceBytes)

	return sum[:], nil
}

// Clone returns a deep copy of the essence.
func (e *TransactionEssence) Clone() *TransactionEssence {
	clonedInputs := make(Inputs, len(e.Inputs))
	for i, input := range e.Inputs {
		clonedInputs[i] = input.Clone()
	}

	clonedContextInputs := make(ContextInputs, len(e.ContextInputs))
	for i, contextInput := range e.ContextInputs {
		clonedContextInputs[i] = contextInput.Clone()
	}

	clonedOutputs := make(TxEssenceOutputs, len(e.Outputs))
	for i, output := range e.Outputs {
		clonedOutputs[i] = output.Clone()
	}

	var clonedPayload TxEssencePayload
	if e.Payload != nil {
		clonedPayload = e.Payload.Clone()
	}

	return &TransactionEssence{
		NetworkID:        e.NetworkID,
		CreationTime:     e.CreationTime,
		ContextInputs:    clonedContextInputs,
		Inputs:           clonedInputs,
		InputsCommitment: e.InputsCommitment,
		Outputs:          clonedOutputs,
		Allotments:       e.Allotments.Clone(),
		Capabilities:     append(TransactionCapabilitiesBitMask(nil), e.Capabilities...),
		Payload:          clonedPayload,
	}
}

func (e *TransactionEssence) Size() int {
	size := serializer.SmallTypeDenotationByteSize + // essence type byte
		NetworkIDLength +
		SlotIndexLength +
		serializer.UInt16ByteSize + InputsCommitmentLength

	for _, input := range e.Inputs {
		size += input.Size()
	}
	for _, contextInput := range e.ContextInputs {
		size += contextInput.Size()
	}
	for _, output := range e.Outputs {
		size += output.Size()
	}
	size += e.Allotments.Size()
	size += serializer.OneByte + len(e.Capabilities)
	size += serializer.OneByte
	if e.Payload != nil {
		size += e.Payload.Size()
	}

	return size
}
