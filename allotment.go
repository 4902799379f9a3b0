package iotago

import (
	"bytes"
	"sort"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/serializer/v2"
)

// allotmentSize is the serialized size of an Allotment: AccountID + Mana.
const allotmentSize = AccountIDLength + ManaSize

// Allotment allots a slice of a transaction's mana to an account's block issuance credit balance, paid for by
// burning stored/potential mana out of the transaction's inputs.
type Allotment struct {
	AccountID AccountID `serix:"0,mapKey=accountId"`
	Mana      Mana      `serix:"1,mapKey=mana"`
}

func (a *Allotment) Clone() *Allotment {
	return &Allotment{
		AccountID: a.AccountID,
		Mana:      a.Mana,
	}
}

func (a *Allotment) Equal(other *Allotment) bool {
	return a.AccountID == other.AccountID && a.Mana == other.Mana
}

func (a *Allotment) Size() int {
	return allotmentSize
}

// Allotments is a slice of Allotment.
type Allotments []*Allotment

var _ constraints.Cloneable[Allotments] = Allotments{}

func (a Allotments) Clone() Allotments {
	cloned := make(Allotments, len(a))
	for i, allotment := range a {
		cloned[i] = allotment.Clone()
	}

	return cloned
}

func (a Allotments) Size() int {
	return serializer.UInt16ByteSize + len(a)*allotmentSize
}

// Sort sorts the allotments in place by ascending AccountID, the canonical order required by the protocol.
func (a Allotments) Sort() {
	sort.Slice(a, func(i, j int) bool {
		return bytes.Compare(a[i].AccountID[:], a[j].AccountID[:]) < 0
	})
}

// Get returns the Allotment for accountID, or nil if none is present.
func (a Allotments) Get(accountID AccountID) *Allotment {
	for _, allotment := range a {
		if allotment.AccountID == accountID {
			return allotment
		}
	}

	return nil
}

// Sum returns the sum of mana allotted across all allotments.
func (a Allotments) Sum() Mana {
	var sum Mana
	for _, allotment := range a {
		sum += allotment.Mana
	}

	return sum
}
