package builder

import (
	"errors"
	"fmt"

	iotago "github.com/iotaledger/iota.go/v4"
)

var (
	// ErrEssenceBuilder defines a generic error occurring within the EssenceBuilder.
	ErrEssenceBuilder = errors.New("essence builder error")
)

// NewEssenceBuilder creates a new EssenceBuilder.
func NewEssenceBuilder(networkID iotago.NetworkID) *EssenceBuilder {
	return &EssenceBuilder{
		essence: &iotago.TransactionEssence{
			NetworkID: networkID,
		},
		inputOwner: map[iotago.OutputID]iotago.Address{},
		inputs:     iotago.OutputSet{},
	}
}

// EssenceBuilder assembles a Transaction from an already-chosen, fixed set of inputs and outputs: it computes the
// inputs commitment, signs every distinct unlocking address once and produces the matching referential unlocks for
// repeated addresses. TransactionBuilder sits on top of it once the input/output set has been selected.
type EssenceBuilder struct {
	occurredBuildErr error
	essence          *iotago.TransactionEssence
	inputs           iotago.OutputSet
	inputOwner       map[iotago.OutputID]iotago.Address
}

// TxInput defines an input with the address to unlock.
type TxInput struct {
	// The address which needs to be unlocked to spend this input.
	UnlockTarget iotago.Address `json:"address"`
	// The ID of the referenced input.
	InputID iotago.OutputID `json:"inputID"`
	// The output which is used as an input.
	Input iotago.Output `json:"input"`
}

// AddInput adds the given input to the builder.
func (b *EssenceBuilder) AddInput(input *TxInput) *EssenceBuilder {
	b.inputOwner[input.InputID] = input.UnlockTarget
	b.essence.Inputs = append(b.essence.Inputs, input.InputID.UTXOInput())
	b.inputs[input.InputID] = input.Input

	return b
}

// EssenceBuilderInputFilter is a filter function which determines whether
// an input should be used or not. (returning true = pass). The filter can also
// be used to accumulate data over the set of inputs, i.e. the input sum etc.
type EssenceBuilderInputFilter func(outputID iotago.OutputID, input iotago.Output) bool

// AddContextInput adds the given context input to the builder.
func (b *EssenceBuilder) AddContextInput(input iotago.ContextInput) *EssenceBuilder {
	b.essence.ContextInputs = append(b.essence.ContextInputs, input)

	return b
}

// AddAllotment adds the given allotment to the builder.
func (b *EssenceBuilder) AddAllotment(allotment *iotago.Allotment) *EssenceBuilder {
	b.essence.Allotments = append(b.essence.Allotments, allotment)

	return b
}

// AddOutput adds the given output to the builder.
func (b *EssenceBuilder) AddOutput(output iotago.Output) *EssenceBuilder {
	b.essence.Outputs = append(b.essence.Outputs, output)

	return b
}

func (b *EssenceBuilder) SetCreationTime(creationTime iotago.SlotIndex) *EssenceBuilder {
	b.essence.CreationTime = creationTime

	return b
}

// AddTaggedDataPayload adds the given TaggedData as the inner payload.
func (b *EssenceBuilder) AddTaggedDataPayload(payload *iotago.TaggedData) *EssenceBuilder {
	b.essence.Payload = payload

	return b
}

// TransactionFunc is a function which receives a Transaction as its parameter.
type TransactionFunc func(tx *iotago.Transaction)

// BuildAndSwapToBlockBuilder builds the transaction and then swaps to a BasicBlockBuilder with
// the transaction set as its payload. txFunc can be nil.
func (b *EssenceBuilder) BuildAndSwapToBlockBuilder(protoParams iotago.ProtocolParameters, signer iotago.AddressSigner, txFunc TransactionFunc) *BasicBlockBuilder {
	blockBuilder := NewBasicBlockBuilder()
	tx, err := b.Build(protoParams, signer)
	if err != nil {
		blockBuilder.err = err
		return blockBuilder
	}
	if txFunc != nil {
		txFunc(tx)
	}

	return blockBuilder.ProtocolVersion(protoParams.Version()).Payload(tx)
}

// Build signs the inputs with the given signer and returns the built payload.
func (b *EssenceBuilder) Build(protoParams iotago.ProtocolParameters, signer iotago.AddressSigner) (*iotago.Transaction, error) {
	switch {
	case b.occurredBuildErr != nil:
		return nil, b.occurredBuildErr
	case protoParams == nil:
		return nil, fmt.Errorf("%w: must supply protocol parameters", ErrEssenceBuilder)
	case signer == nil:
		return nil, fmt.Errorf("%w: must supply signer", ErrEssenceBuilder)
	}

	// prepare the inputs commitment in the same order as the inputs in the essence
	var inputIDs iotago.OutputIDs
	for _, input := range b.essence.Inputs {
		inputIDs = append(inputIDs, input.(*iotago.UTXOInput).ID())
	}

	inputs := inputIDs.OrderedSet(b.inputs)
	commitment, err := inputs.Commitment()
	if err != nil {
		return nil, err
	}
	copy(b.essence.InputsCommitment[:], commitment)

	txEssenceData, err := b.essence.SigningMessage()
	if err != nil {
		return nil, err
	}

	unlockPos := map[string]int{}
	unlocks := iotago.Unlocks{}
	for i, inputRef := range b.essence.Inputs {
		addr := b.inputOwner[inputRef.(*iotago.UTXOInput).ID()]
		addrKey := addr.Key()

		pos, unlocked := unlockPos[addrKey]
		if !unlocked {
			// the output's owning chain address must have been unlocked already
			if _, is := addr.(iotago.ChainAddress); is {
				return nil, fmt.Errorf("input %d's owning chain is not unlocked, chainID %s, type %s", i, addr, addr.Type())
			}

			// produce signature
			var signature iotago.Signature
			signature, err = signer.Sign(addr, txEssenceData)
			if err != nil {
				return nil, err
			}

			unlocks = append(unlocks, &iotago.SignatureUnlock{Signature: signature})
			addChainAsUnlocked(inputs[i], i, unlockPos)
			unlockPos[addrKey] = i
			continue
		}

		unlocks = addReferentialUnlock(addr, unlocks, pos)
		addChainAsUnlocked(inputs[i], i, unlockPos)
	}

	sigTxPayload := &iotago.Transaction{Essence: b.essence, Unlocks: unlocks}

	return sigTxPayload, nil
}

func addReferentialUnlock(addr iotago.Address, unlocks iotago.Unlocks, pos int) iotago.Unlocks {
	switch addr.(type) {
	case *iotago.AccountAddress:
		return append(unlocks, &iotago.AccountUnlock{Reference: uint16(pos)})
	case *iotago.NFTAddress:
		return append(unlocks, &iotago.NFTUnlock{Reference: uint16(pos)})
	default:
		return append(unlocks, &iotago.ReferenceUnlock{Reference: uint16(pos)})
	}
}

func addChainAsUnlocked(input iotago.Output, posUnlocked int, prevUnlocked map[string]int) {
	if chainInput, is := input.(iotago.ChainOutput); is && chainInput.Chain().Addressable() {
		prevUnlocked[chainInput.Chain().ToAddress().Key()] = posUnlocked
	}
}
