package iotago

import (
	"math/big"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// NativeTokenID is the identifier of a native token: the FoundryID of the foundry that minted it.
type NativeTokenID = FoundryID

// NativeToken describes a native token that resides on an output together with its base token amount.
type NativeToken struct {
	ID     NativeTokenID `serix:"0,mapKey=id"`
	Amount *big.Int      `serix:"1,mapKey=amount"`
}

// NativeTokenSum describes a set of NativeTokens and the sum per ID.
type NativeTokenSum map[NativeTokenID]*big.Int

func (n *NativeToken) Clone() *NativeToken {
	return &NativeToken{
		ID:     n.ID,
		Amount: new(big.Int).Set(n.Amount),
	}
}

func (n *NativeToken) Equal(other *NativeToken) bool {
	if n.ID != other.ID {
		return false
	}

	return n.Amount.Cmp(other.Amount) == 0
}

func (n *NativeToken) Size() int {
	return FoundryIDLength + serializer.UInt256ByteSize
}

// NativeTokens is a slice of NativeToken.
type NativeTokens []*NativeToken

func (n NativeTokens) Clone() NativeTokens {
	cpy := make(NativeTokens, len(n))
	for i, token := range n {
		cpy[i] = token.Clone()
	}

	return cpy
}

func (n NativeTokens) Size() int {
	sum := serializer.OneByte
	for _, token := range n {
		sum += token.Size()
	}

	return sum
}

// Set returns a map of the NativeTokens indexed by their ID, erroring if an ID occurs more than once.
func (n NativeTokens) Set() (NativeTokenSum, error) {
	set := make(NativeTokenSum)
	for _, token := range n {
		if _, has := set[token.ID]; has {
			return nil, ierrors.Wrapf(ErrInvalidNativeTokenCount, "duplicate native token ID %s", token.ID)
		}
		set[token.ID] = token.Amount
	}

	return set, nil
}

// MergeSum merges every NativeToken amount across the given NativeTokens sets, erroring on overflow past 256 bits.
func MergeSum(tokenSets ...NativeTokens) (NativeTokenSum, error) {
	sum := make(NativeTokenSum)
	for _, tokens := range tokenSets {
		for _, token := range tokens {
			if token.Amount.Sign() <= 0 {
				return nil, ErrNativeTokenAmountLessThanEqualZero
			}

			existing, has := sum[token.ID]
			if !has {
				sum[token.ID] = new(big.Int).Set(token.Amount)

				continue
			}

			sum[token.ID] = new(big.Int).Add(existing, token.Amount)
			if sum[token.ID].BitLen() > 256 {
				return nil, ierrors.Errorf("native token %s sum overflows 256 bits", token.ID)
			}
		}
	}

	return sum, nil
}

// ValueOrBigInt0 returns the sum recorded for id, or a zero-valued *big.Int if id is not present.
func (n NativeTokenSum) ValueOrBigInt0(id NativeTokenID) *big.Int {
	if v, has := n[id]; has {
		return v
	}

	return new(big.Int)
}
