package builder

import (
	"errors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// ErrBasicBlockBuilder defines a generic error occurring within the BasicBlockBuilder.
var ErrBasicBlockBuilder = errors.New("basic block builder error")

// BasicBlock is the minimal payload carrier a TransactionBuilder swaps into: a protocol version paired with the
// transaction payload to submit. Full block structure (parents, issuing time, signature, PoW) is handled by the
// node-facing layers that consume this package, not by the transaction construction core.
type BasicBlock struct {
	ProtocolVersion iotago.Version
	Payload         iotago.Payload
}

// NewBasicBlockBuilder creates a new BasicBlockBuilder.
func NewBasicBlockBuilder() *BasicBlockBuilder {
	return &BasicBlockBuilder{block: &BasicBlock{}}
}

// BasicBlockBuilder incrementally builds up a BasicBlock.
type BasicBlockBuilder struct {
	err   error
	block *BasicBlock
}

// ProtocolVersion sets the protocol version of the block.
func (b *BasicBlockBuilder) ProtocolVersion(version iotago.Version) *BasicBlockBuilder {
	if b.err != nil {
		return b
	}

	b.block.ProtocolVersion = version

	return b
}

// Payload sets the payload of the block.
func (b *BasicBlockBuilder) Payload(payload iotago.Payload) *BasicBlockBuilder {
	if b.err != nil {
		return b
	}

	b.block.Payload = payload

	return b
}

// Build builds the BasicBlock.
func (b *BasicBlockBuilder) Build() (*BasicBlock, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.block, nil
}
