package iotago

import (
	"sort"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// UnlockConditionType defines the type of unlock conditions.
type UnlockConditionType byte

const (
	// UnlockConditionAddress denotes an AddressUnlockCondition.
	UnlockConditionAddress UnlockConditionType = iota
	// UnlockConditionStorageDepositReturn denotes a StorageDepositReturnUnlockCondition.
	UnlockConditionStorageDepositReturn
	// UnlockConditionTimelock denotes a TimelockUnlockCondition.
	UnlockConditionTimelock
	// UnlockConditionExpiration denotes an ExpirationUnlockCondition.
	UnlockConditionExpiration
	// UnlockConditionStateControllerAddress denotes a StateControllerAddressUnlockCondition.
	UnlockConditionStateControllerAddress
	// UnlockConditionGovernorAddress denotes a GovernorAddressUnlockCondition.
	UnlockConditionGovernorAddress
	// UnlockConditionImmutableAccountAddress denotes an ImmutableAccountAddressUnlockCondition.
	UnlockConditionImmutableAccountAddress
)

func (u UnlockConditionType) String() string {
	if int(u) >= len(unlockCondNames) {
		return "unknown unlock condition type"
	}

	return unlockCondNames[u]
}

var unlockCondNames = [UnlockConditionImmutableAccountAddress + 1]string{
	"AddressUnlockCondition",
	"StorageDepositReturnUnlockCondition",
	"TimelockUnlockCondition",
	"ExpirationUnlockCondition",
	"StateControllerAddressUnlockCondition",
	"GovernorAddressUnlockCondition",
	"ImmutableAccountAddressUnlockCondition",
}

// UnlockCondition is an abstract building block defining the unlock conditions of an Output.
type UnlockCondition interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[UnlockCondition]
	constraints.Equalable[UnlockCondition]
	constraints.Comparable[UnlockCondition]

	// Type returns the type of the UnlockCondition.
	Type() UnlockConditionType
}

func registerUnlockConditions(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*UnlockCondition)(nil),
		(*AddressUnlockCondition)(nil),
		(*StorageDepositReturnUnlockCondition)(nil),
		(*TimelockUnlockCondition)(nil),
		(*ExpirationUnlockCondition)(nil),
		(*StateControllerAddressUnlockCondition)(nil),
		(*GovernorAddressUnlockCondition)(nil),
		(*ImmutableAccountAddressUnlockCondition)(nil),
	)
}

// UnlockConditions is a slice of UnlockCondition(s).
type UnlockConditions[T UnlockCondition] []T

func (f UnlockConditions[T]) Clone() UnlockConditions[T] {
	cpy := make(UnlockConditions[T], len(f))
	for i, v := range f {
		//nolint:forcetypeassert // we can safely assume that this is of type T
		cpy[i] = v.Clone().(T)
	}

	return cpy
}

func (f UnlockConditions[T]) StorageScore(storageScoreParams *StorageScoreParameters, _ StorageScoreFunc) StorageScore {
	var sumCost StorageScore
	for _, cond := range f {
		sumCost += cond.StorageScore(storageScoreParams, nil)
	}

	return sumCost
}

func (f UnlockConditions[T]) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	var workScoreConds WorkScore
	for _, cond := range f {
		condWorkScore, err := cond.WorkScore(workScoreParams)
		if err != nil {
			return 0, err
		}

		workScoreConds, err = workScoreConds.Add(condWorkScore)
		if err != nil {
			return 0, err
		}
	}

	return workScoreConds, nil
}

func (f UnlockConditions[T]) Size() int {
	sum := serializer.OneByte
	for _, cond := range f {
		sum += cond.Size()
	}

	return sum
}

// Set converts the slice into an UnlockConditionSet, erroring if a UnlockConditionType occurs multiple times.
func (f UnlockConditions[T]) Set() (UnlockConditionSet, error) {
	set := make(UnlockConditionSet)
	for _, cond := range f {
		if _, has := set[cond.Type()]; has {
			return nil, ErrNonUniqueUnlockConditions
		}
		set[cond.Type()] = cond
	}

	return set, nil
}

// MustSet works like Set but panics if an error occurs.
func (f UnlockConditions[T]) MustSet() UnlockConditionSet {
	set, err := f.Set()
	if err != nil {
		panic(err)
	}

	return set
}

func (f UnlockConditions[T]) Equal(other UnlockConditions[T]) bool {
	if len(f) != len(other) {
		return false
	}

	for idx, cond := range f {
		if !cond.Equal(other[idx]) {
			return false
		}
	}

	return true
}

// Upsert adds the given unlock condition or updates the previous one if existing.
func (f *UnlockConditions[T]) Upsert(cond T) {
	for i, ele := range *f {
		if ele.Type() == cond.Type() {
			(*f)[i] = cond

			return
		}
	}
	*f = append(*f, cond)
}

// Sort sorts the UnlockConditions in place by type.
func (f UnlockConditions[T]) Sort() {
	sort.Slice(f, func(i, j int) bool { return f[i].Type() < f[j].Type() })
}

// UnlockConditionSet is a set of UnlockCondition(s).
type UnlockConditionSet map[UnlockConditionType]UnlockCondition

// Address returns the AddressUnlockCondition in the set or nil.
func (f UnlockConditionSet) Address() *AddressUnlockCondition {
	b, has := f[UnlockConditionAddress]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is an AddressUnlockCondition
	return b.(*AddressUnlockCondition)
}

// StorageDepositReturn returns the StorageDepositReturnUnlockCondition in the set or nil.
func (f UnlockConditionSet) StorageDepositReturn() *StorageDepositReturnUnlockCondition {
	b, has := f[UnlockConditionStorageDepositReturn]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is a StorageDepositReturnUnlockCondition
	return b.(*StorageDepositReturnUnlockCondition)
}

// Timelock returns the TimelockUnlockCondition in the set or nil.
func (f UnlockConditionSet) Timelock() *TimelockUnlockCondition {
	b, has := f[UnlockConditionTimelock]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is a TimelockUnlockCondition
	return b.(*TimelockUnlockCondition)
}

// Expiration returns the ExpirationUnlockCondition in the set or nil.
func (f UnlockConditionSet) Expiration() *ExpirationUnlockCondition {
	b, has := f[UnlockConditionExpiration]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is an ExpirationUnlockCondition
	return b.(*ExpirationUnlockCondition)
}

// StateControllerAddress returns the StateControllerAddressUnlockCondition in the set or nil.
func (f UnlockConditionSet) StateControllerAddress() *StateControllerAddressUnlockCondition {
	b, has := f[UnlockConditionStateControllerAddress]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is a StateControllerAddressUnlockCondition
	return b.(*StateControllerAddressUnlockCondition)
}

// GovernorAddress returns the GovernorAddressUnlockCondition in the set or nil.
func (f UnlockConditionSet) GovernorAddress() *GovernorAddressUnlockCondition {
	b, has := f[UnlockConditionGovernorAddress]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is a GovernorAddressUnlockCondition
	return b.(*GovernorAddressUnlockCondition)
}

// ImmutableAccount returns the ImmutableAccountAddressUnlockCondition in the set or nil.
func (f UnlockConditionSet) ImmutableAccount() *ImmutableAccountAddressUnlockCondition {
	b, has := f[UnlockConditionImmutableAccountAddress]
	if !has {
		return nil
	}

	//nolint:forcetypeassert // we can safely assume that this is an ImmutableAccountAddressUnlockCondition
	return b.(*ImmutableAccountAddressUnlockCondition)
}

// HasManalockCondition tells whether the set locks mana to accountID until at least slotIndex, i.e. whether the
// output carries a timelock or an unexpired expiration/address unlock bound to accountID.
func (f UnlockConditionSet) HasManalockCondition(accountID AccountID, slotIndex SlotIndex) bool {
	addressCond := f.Address()
	if addressCond == nil {
		return false
	}

	accountAddress, isAccountAddr := addressCond.Address.(*AccountAddress)
	if !isAccountAddr || accountAddress.AccountID() != accountID {
		return false
	}

	if timelock := f.Timelock(); timelock != nil && timelock.SlotIndex >= slotIndex {
		return true
	}

	if expiration := f.Expiration(); expiration != nil && expiration.SlotIndex >= slotIndex {
		return true
	}

	return false
}
