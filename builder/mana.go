package builder

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// potentialManaGenerationAmount returns the portion of an output's deposited amount that generates potential mana:
// the protocol only accrues mana on the balance above what the output is required to lock up as storage deposit.
func potentialManaGenerationAmount(output iotago.Output, storageScoreParams *iotago.StorageScoreParameters) iotago.BaseToken {
	minDeposit := storageScoreParams.MinStorageDeposit(output.StorageScore(storageScoreParams, nil))
	if output.Deposit() <= minDeposit {
		return 0
	}

	return output.Deposit() - minDeposit
}

// totalSelectedMana sums the decay-adjusted stored and potential mana the currently selected inputs contribute
// at the builder's creation slot, plus any recorded mana rewards for outputs among them.
func (b *TransactionBuilder) totalSelectedMana() iotago.Mana {
	decay := b.protocolParameters.ManaDecayProvider()
	storageScoreParams := b.protocolParameters.StorageScoreParameters()

	var total iotago.Mana
	for _, in := range b.selectedInputs {
		total += decay.StoredManaWithDecay(in.Output.StoredMana(), in.CreationSlot, b.creationSlot)

		if !b.burn.excludesGeneratedMana() {
			total += decay.PotentialManaWithDecay(potentialManaGenerationAmount(in.Output, storageScoreParams), in.CreationSlot, b.creationSlot)
		}

		if reward, has := b.manaRewards[in.OutputID]; has {
			total += reward
		}
	}

	return total
}

// totalMana sums the mana demanded by the outputs the transaction creates (stored mana plus remainders) and by
// its mana allotments.
func (b *TransactionBuilder) totalMana() iotago.Mana {
	var total iotago.Mana
	for _, out := range b.allOutputs() {
		total += out.StoredMana()
	}
	for _, out := range b.remainderOutputs() {
		total += out.StoredMana()
	}
	for _, mana := range b.manaAllotments {
		total += mana
	}

	return total
}

// fulfillMana closes any mana deficit between what the transaction demands and what the selected inputs supply,
// first trying to recover mana by reducing an already-selected issuing account's stored mana to zero (the
// account's mana was going to be consumed by the allotment anyway), then by drawing more inputs ordered to
// minimize overshoot.
func (b *TransactionBuilder) fulfillMana() error {
	if b.reduceAccountOutput() {
		if b.totalMana() <= b.totalSelectedMana() {
			return nil
		}
	}

	for {
		have, want := b.totalSelectedMana(), b.totalMana()
		if have >= want {
			return nil
		}

		missing := want - have
		if len(b.availableInputs) == 0 {
			return ierrors.Wrapf(ErrInsufficientMana, "required %d more mana, no inputs available", missing)
		}

		if !b.allowAdditionalInputSelection {
			return ierrors.Wrapf(ErrAdditionalInputsRequired, "mana deficit of %d requires another input", missing)
		}

		decay := b.protocolParameters.ManaDecayProvider()
		storageScoreParams := b.protocolParameters.StorageScoreParameters()
		ordered := orderCandidatesForDeficit(b.availableInputs, missing, func(in *InputSigningData) iotago.Mana {
			stored := decay.StoredManaWithDecay(in.Output.StoredMana(), in.CreationSlot, b.creationSlot)
			potential := decay.PotentialManaWithDecay(potentialManaGenerationAmount(in.Output, storageScoreParams), in.CreationSlot, b.creationSlot)

			return stored + potential
		})

		b.selectInput(ordered[0])
	}
}

// reduceAccountOutput zeroes the stored mana of an already-selected, issuing account output among the provided
// outputs, reporting whether it found one to reduce. Only the account output of the issuer configured through the
// minimum mana allotment is considered; other account outputs keep their stored mana.
func (b *TransactionBuilder) reduceAccountOutput() bool {
	for i, out := range b.providedOutputs {
		account, is := out.(*iotago.AccountOutput)
		if !is || account.Mana == 0 {
			continue
		}

		if !b.hasSelectedAccount(account.AccountID) {
			continue
		}

		if b.minManaAllotment == nil || account.AccountID != b.minManaAllotment.IssuerID {
			continue
		}

		reduced := account.Clone().(*iotago.AccountOutput)
		reduced.Mana = 0
		b.providedOutputs[i] = reduced

		return true
	}

	return false
}

// fulfillMinManaAllotment raises the mana allotted to the configured issuer account until it covers the
// transaction's own work score, repeating the requirement fixpoint each time the allotment increase itself
// forces another input to be selected, since that input can in turn change the work score.
func (b *TransactionBuilder) fulfillMinManaAllotment() error {
	if !b.hasSelectedAccount(b.minManaAllotment.IssuerID) {
		return ErrBlockIssuerAccountNotFound
	}

	workScoreParams := b.protocolParameters.WorkScoreParameters()

	const maxRounds = 8
	for round := 0; round < maxRounds; round++ {
		unlocks, err := b.nullTransactionUnlocks()
		if err != nil {
			return err
		}

		trial := &iotago.Transaction{
			Essence: &iotago.TransactionEssence{
				NetworkID:     b.protocolParameters.NetworkID(),
				CreationTime:  b.creationSlot,
				ContextInputs: b.contextInputs(),
				Outputs:       append(b.allOutputs(), b.remainderOutputs()...),
			},
			Unlocks: unlocks,
		}
		for _, in := range b.selectedInputs {
			trial.Essence.Inputs = append(trial.Essence.Inputs, in.OutputID.UTXOInput())
		}

		workScore, err := trial.WorkScore(workScoreParams)
		if err != nil {
			return ierrors.Wrap(err, "failed to compute trial work score")
		}

		required := iotago.Mana(workScore) * b.minManaAllotment.ReferenceManaCost
		current := b.manaAllotments[b.minManaAllotment.IssuerID]
		if required <= current {
			return nil
		}

		b.manaAllotments[b.minManaAllotment.IssuerID] = required

		if err := b.fulfillMana(); err != nil {
			return err
		}
	}

	return ierrors.Wrap(ErrTransactionBuilder, "minimum mana allotment did not converge")
}

// nullTransactionUnlocks produces a trial unlock per selected input using a zero-valued Ed25519 signature for
// every distinct address and a referential unlock for repeats, exactly mirroring the shape the final signed
// transaction will have; used both to assemble the unsigned transaction returned by Build and to measure work
// score while computing a minimum mana allotment.
func (b *TransactionBuilder) nullTransactionUnlocks() (iotago.Unlocks, error) {
	blockIndexes := make(map[string]int, len(b.selectedInputs))
	unlocks := make(iotago.Unlocks, 0, len(b.selectedInputs))

	for i, in := range b.selectedInputs {
		addr := requiredAddress(in.Output, b.creationSlot)

		normalized := addr
		if restricted, is := addr.(*iotago.RestrictedAddress); is {
			normalized = restricted.Address
		}
		if implicit, is := normalized.(*iotago.ImplicitAccountCreationAddress); is {
			ed25519Addr := iotago.Ed25519Address(*implicit)
			normalized = &ed25519Addr
		}

		key := normalized.Key()
		if pos, already := blockIndexes[key]; already {
			unlocks = append(unlocks, referentialUnlockFor(normalized, pos))
		} else {
			if _, is := normalized.(iotago.ChainAddress); is {
				return nil, ierrors.Wrapf(ErrUnsupportedOutputKind, "input %d's owning chain is not yet unlocked", i)
			}

			unlocks = append(unlocks, &iotago.SignatureUnlock{Signature: &iotago.Ed25519Signature{}})
			blockIndexes[key] = i
		}

		if chainOutput, is := in.Output.(iotago.ChainOutput); is && chainOutput.Chain().Addressable() {
			blockIndexes[chainOutput.Chain().ToAddress().Key()] = i
		}
	}

	return unlocks, nil
}

func referentialUnlockFor(addr iotago.Address, pos int) iotago.Unlock {
	switch addr.(type) {
	case *iotago.AccountAddress:
		return &iotago.AccountUnlock{Reference: uint16(pos)}
	case *iotago.NFTAddress:
		return &iotago.NFTUnlock{Reference: uint16(pos)}
	default:
		return &iotago.ReferenceUnlock{Reference: uint16(pos)}
	}
}
