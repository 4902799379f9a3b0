package iotago

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/iota.go/v4/hexutil"
)

// OutputIDLength is the byte length of an OutputID: a TransactionID plus a 2 byte big-endian output index.
const OutputIDLength = TransactionIDLength + 2

// OutputID includes the TransactionID plus the index of the output.
type OutputID [OutputIDLength]byte

// EmptyOutputID is an OutputID with all zero bytes.
var EmptyOutputID = OutputID{}

// OutputIDFromTransactionIDAndIndex creates a new OutputID from a TransactionID and an output index.
func OutputIDFromTransactionIDAndIndex(txID TransactionID, index uint16) (OutputID, error) {
	if index > MaxOutputIndex {
		return EmptyOutputID, ierrors.Errorf("output index %d exceeds maximum output index %d", index, MaxOutputIndex)
	}

	var id OutputID
	copy(id[:TransactionIDLength], txID[:])
	binary.BigEndian.PutUint16(id[TransactionIDLength:], index)

	return id, nil
}

// MustOutputIDFromTransactionIDAndIndex panics if the output index is invalid.
func MustOutputIDFromTransactionIDAndIndex(txID TransactionID, index uint16) OutputID {
	id, err := OutputIDFromTransactionIDAndIndex(txID, index)
	if err != nil {
		panic(err)
	}

	return id
}

// TransactionID returns the TransactionID component of the OutputID.
func (o OutputID) TransactionID() TransactionID {
	var txID TransactionID
	copy(txID[:], o[:TransactionIDLength])

	return txID
}

// Index returns the index component of the OutputID.
func (o OutputID) Index() uint16 {
	return binary.BigEndian.Uint16(o[TransactionIDLength:])
}

func (o OutputID) ToHex() string {
	return hexutil.EncodeHex(o[:])
}

func (o OutputID) String() string {
	return o.ToHex()
}

func (o OutputID) Empty() bool {
	return o == EmptyOutputID
}

func (o OutputID) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(o)))
	hex.Encode(dst, o[:])

	return dst, nil
}

func (o *OutputID) UnmarshalText(text []byte) error {
	_, err := hex.Decode(o[:], text)

	return err
}

// UTXOInput converts the OutputID into an UTXOInput.
func (o OutputID) UTXOInput() *UTXOInput {
	return &UTXOInput{
		TransactionID:          o.TransactionID(),
		TransactionOutputIndex: o.Index(),
	}
}

// OutputIDs is a slice of OutputID.
type OutputIDs []OutputID

// OrderedSet resolves the given OutputIDs against set, preserving the order of this OutputIDs slice.
func (ids OutputIDs) OrderedSet(set OutputSet) OrderedOutputs {
	outputs := make(OrderedOutputs, len(ids))
	for i, id := range ids {
		outputs[i] = set[id]
	}

	return outputs
}

// OrderedOutputs is a slice of Output in a specific, meaningful order, e.g. the order in which they are consumed
// as the inputs of a transaction.
type OrderedOutputs []Output

// Commitment computes the BLAKE2b-256 hash of the concatenation of the BLAKE2b-256 hashes of each output's
// serialized bytes, in the order of this OrderedOutputs, matching the value a transaction's InputsCommitment
// must hold for the inputs it consumes.
func (outputs OrderedOutputs) Commitment() ([]byte, error) {
	var concatenated []byte
	for _, output := range outputs {
		outputBytes, err := commonSerixAPI().Encode(context.Background(), output)
		if err != nil {
			return nil, err
		}

		sum := blake2bSum256(outputBytes)
		concatenated = append(concatenated, sum[:]...)
	}

	sum := blake2bSum256(concatenated)

	return sum[:], nil
}
