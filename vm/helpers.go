package vm

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// VirtualMachine validates a built transaction against a resolved input set, and adjudicates the state transition
// of individual chain-constrained outputs on behalf of the ExecFunc pipeline it runs.
type VirtualMachine interface {
	// Execute runs the given transaction through the VM's default ExecFunc pipeline, or through overrideFuncs if
	// any are given, against the resolved inputs.
	Execute(t *iotago.Transaction, vmParams *Params, inputs ResolvedInputs, overrideFuncs ...ExecFunc) error

	// ChainSTVF validates the state transition of a single chain-constrained output between input and next.
	ChainSTVF(transType iotago.ChainTransitionType, input *ChainOutputWithCreationTime, next iotago.ChainOutput, vmParams *Params) error
}

// ExecFunc is one check in a VirtualMachine's validation pipeline, executed in sequence against the WorkingSet
// already populated on vmParams.
type ExecFunc func(vm VirtualMachine, vmParams *Params) error

// RunVMFuncs runs every ExecFunc in funcs in order against vmParams, stopping at the first error.
func RunVMFuncs(vm VirtualMachine, vmParams *Params, funcs ...ExecFunc) error {
	for _, fn := range funcs {
		if err := fn(vm, vmParams); err != nil {
			return err
		}
	}

	return nil
}

// IsIssuerOnOutputUnlocked checks that an output carrying an IssuerFeature is only created in a transaction that
// unlocks the issuer's address, per the issuer feature's genesis-only invariant.
func IsIssuerOnOutputUnlocked(output iotago.Output, unlockedIdents UnlockedIdentities) error {
	issuerFeat := output.FeatureSet().Issuer()
	if issuerFeat == nil {
		return nil
	}

	if _, unlocked := unlockedIdents[issuerFeat.Address.Key()]; !unlocked {
		return ierrors.Wrapf(iotago.ErrIssuerFeatureNotUnlocked, "issuer %s is not unlocked", issuerFeat.Address)
	}

	return nil
}

// TotalManaIn sums the mana made available by a transaction's inputs: the stored mana each input carried, decayed
// from the slot it was created in up to the transaction's creation slot, plus the potential mana generated over
// that same interval by the portion of each input's deposited amount above its minimum storage deposit.
func TotalManaIn(manaDecayProvider *iotago.ManaDecayProvider, storageScoreParams *iotago.StorageScoreParameters, txCreationSlot iotago.SlotIndex, inputs []*UTXOInputWithCreationTime) iotago.Mana {
	var sum iotago.Mana
	for _, in := range inputs {
		sum += manaDecayProvider.StoredManaWithDecay(in.Output.StoredMana(), in.CreationTime, txCreationSlot)
		sum += manaDecayProvider.PotentialManaWithDecay(potentialManaGenerationAmount(in.Output, storageScoreParams), in.CreationTime, txCreationSlot)
	}

	return sum
}

// potentialManaGenerationAmount returns the portion of an output's deposited amount that generates potential mana:
// the protocol only accrues mana on the balance above what the output is required to lock up as storage deposit.
func potentialManaGenerationAmount(output iotago.Output, storageScoreParams *iotago.StorageScoreParameters) iotago.BaseToken {
	minDeposit := storageScoreParams.MinStorageDeposit(output.StorageScore(storageScoreParams, nil))
	if output.Deposit() <= minDeposit {
		return 0
	}

	return output.Deposit() - minDeposit
}

// TotalManaOut sums the mana a transaction spends: the stored mana assigned to each output it creates, plus every
// allotment it makes to an account's block issuance credit balance.
func TotalManaOut(outputs iotago.TxEssenceOutputs, allotments iotago.Allotments) iotago.Mana {
	var sum iotago.Mana
	for _, output := range outputs {
		sum += output.StoredMana()
	}

	return sum + allotments.Sum()
}
