package iotago

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// OutputType denotes the type of an Output.
type OutputType byte

const (
	// OutputBasic denotes a BasicOutput.
	OutputBasic OutputType = iota
	// OutputAccount denotes an AccountOutput.
	OutputAccount
	// OutputAnchor denotes an AnchorOutput.
	OutputAnchor
	// OutputFoundry denotes a FoundryOutput.
	OutputFoundry
	// OutputNFT denotes an NFTOutput.
	OutputNFT
	// OutputDelegation denotes a DelegationOutput.
	OutputDelegation
)

func (outputType OutputType) String() string {
	if int(outputType) >= len(outputTypeNames) {
		return "unknown output type"
	}

	return outputTypeNames[outputType]
}

var outputTypeNames = [OutputDelegation + 1]string{
	"BasicOutput", "AccountOutput", "AnchorOutput", "FoundryOutput", "NFTOutput", "DelegationOutput",
}

// Output is a generic interface for all the different output types.
type Output interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[Output]

	// Deposit returns the amount of base tokens locked in this output.
	Deposit() BaseToken

	// StoredMana returns the stored mana held by this output.
	StoredMana() Mana

	// UnlockConditionSet returns the UnlockConditionSet of this output.
	UnlockConditionSet() UnlockConditionSet

	// FeatureSet returns the FeatureSet of this output.
	FeatureSet() FeatureSet

	// Ident returns the default identity to which this output is locked to.
	Ident() Address

	// UnlockableBy tells whether the given ident can unlock this output in principle, assuming it was not
	// composed with a malformed unlock condition set. txCreationTime is the slot at which the consuming
	// transaction is created, relevant for time-locked and expiring unlock conditions.
	UnlockableBy(ident Address, txCreationTime SlotIndex) bool

	// Type returns the type of the output.
	Type() OutputType
}

// OutputsFilterFunc is a predicate function operating on an Output.
type OutputsFilterFunc func(output Output) bool

// Outputs is a slice of Output.
type Outputs[T Output] []T

// OutputSet is a map of OutputID to Output.
type OutputSet map[OutputID]Output

// ChainOutput is a type of Output that has a ChainID and can be state-transitioned across a sequence of
// transactions, i.e. account, foundry, NFT and delegation outputs.
type ChainOutput interface {
	Output

	// Chain returns the ChainID of this output. It is empty when the output was just created.
	Chain() ChainID

	// ImmutableFeatureSet returns the immutable FeatureSet of this output.
	ImmutableFeatureSet() FeatureSet
}

// ChainTransitionError wraps an error that occurred while validating a ChainOutput state transition with the
// identity of the chain it happened on, without requiring every call site to format that context itself.
type ChainTransitionError struct {
	Inner error
	Msg   string
}

func (e *ChainTransitionError) Error() string {
	return e.Msg + ": " + e.Inner.Error()
}

func (e *ChainTransitionError) Unwrap() error {
	return e.Inner
}

func registerOutputs(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Output)(nil),
		(*BasicOutput)(nil),
		(*AccountOutput)(nil),
		(*FoundryOutput)(nil),
		(*NFTOutput)(nil),
		(*DelegationOutput)(nil),
	)
}

// outputUnlockable checks whether an output can in principle be unlocked by ident at the given transaction
// creation slot, taking into account expiration and timelock unlock conditions, and if chainID is non-nil, that
// the given ident matches the governor/state-controller split on account outputs.
func outputUnlockable(output Output, chainID ChainID, ident Address, txCreationTime SlotIndex) (bool, error) {
	unlockConds := output.UnlockConditionSet()

	if timelock := unlockConds.Timelock(); timelock != nil {
		if timelock.SlotIndex > txCreationTime {
			return false, ierrors.Wrapf(ErrTimelockNotExpired, "slot index %d not reached, current slot index %d", timelock.SlotIndex, txCreationTime)
		}
	}

	targetIdent := ident
	if expiration := unlockConds.Expiration(); expiration != nil {
		if expiration.ReturnIdentCanUnlock(txCreationTime) {
			targetIdent = expiration.ReturnAddress
		} else if expiration.SlotIndex > txCreationTime {
			// owner ident only in control before the expiration slot
		} else {
			return false, ErrExpirationNotUnlockable
		}
	}

	addrUnlockCond := unlockConds.Address()
	if addrUnlockCond != nil {
		return addrUnlockCond.Address.Equal(targetIdent), nil
	}

	if chainID != nil {
		if stateCtrl := unlockConds.StateControllerAddress(); stateCtrl != nil && stateCtrl.Address.Equal(targetIdent) {
			return true, nil
		}
		if governor := unlockConds.GovernorAddress(); governor != nil && governor.Address.Equal(targetIdent) {
			return true, nil
		}
	}

	return false, nil
}
