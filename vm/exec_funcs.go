package vm

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// ExecFuncTimelocks rejects a transaction that consumes an output still under a timelock unlock condition at the
// transaction's creation slot.
func ExecFuncTimelocks() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		creationSlot := vmParams.WorkingSet.Tx.Essence.CreationTime

		for _, in := range vmParams.WorkingSet.UTXOInputsWithCreationTime {
			timelock := in.Output.UnlockConditionSet().Timelock()
			if timelock == nil {
				continue
			}

			if timelock.SlotIndex > creationSlot {
				return ierrors.Wrapf(iotago.ErrTimelockNotExpired, "output %s is timelocked until slot %d, transaction creation slot is %d", in.OutputID, timelock.SlotIndex, creationSlot)
			}
		}

		return nil
	}
}

// ExecFuncInputUnlocks verifies that every consumed output's unlocking address is authorized by the unlock at the
// same index in the transaction, walking inputs in order so that referential unlocks can be checked against an
// identity already unlocked earlier in the same transaction.
func ExecFuncInputUnlocks() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet
		inputs := ws.Tx.Essence.Inputs
		unlocks := ws.Tx.Unlocks

		if len(inputs) != len(unlocks) {
			return iotago.ErrNonMatchingUnlocksTransactionInputs
		}

		signingMsg, err := ws.Tx.Essence.SigningMessage()
		if err != nil {
			return ierrors.Wrap(err, "failed to compute transaction signing message")
		}

		for index, input := range inputs {
			utxoInput, is := input.(*iotago.UTXOInput)
			if !is {
				continue
			}

			outputID := utxoInput.ID()
			output, has := ws.InputSet[outputID]
			if !has {
				return ierrors.Errorf("no resolved output for input %d with ID %s", index, outputID)
			}

			ident := output.Ident()
			unlock := unlocks[index]

			if referential, isReferential := unlock.(iotago.ReferentialUnlock); isReferential {
				if err := ws.unlockReferential(ident, referential, uint16(index)); err != nil {
					return ierrors.Wrapf(err, "input %d", index)
				}

				continue
			}

			if err := ident.Unlock(signingMsg, unlock); err != nil {
				return ierrors.Wrapf(iotago.ErrUnlockSignatureInvalid, "input %d: %s", index, err)
			}

			ws.recordUnlocked(ident, uint16(index))
		}

		return nil
	}
}

// unlockReferential validates that a ReferenceUnlock/AccountUnlock/AnchorUnlock/NFTUnlock at position index
// legitimately reuses the authorization of an earlier unlock, and records ident as unlocked at index.
func (ws *WorkingSet) unlockReferential(ident iotago.Address, unlock iotago.ReferentialUnlock, index uint16) error {
	refIndex := unlock.Index()
	if refIndex >= index {
		return ierrors.Wrapf(iotago.ErrReferentialUnlockInvalid, "references unlock at or after its own index %d", refIndex)
	}

	unlocked, has := ws.UnlockedIdents[ident.Key()]
	if !has || unlocked.UnlockedAt != refIndex {
		return ierrors.Wrapf(iotago.ErrReferentialUnlockInvalid, "ident %s is not unlocked by the referenced unlock %d", ident, refIndex)
	}

	if !unlock.SourceAllowed(ident) {
		return ierrors.Wrapf(iotago.ErrReferentialUnlockInvalid, "unlock of type %T cannot reference address of type %T", unlock, ident)
	}

	if _, refWasReferential := ws.Tx.Unlocks[refIndex].(iotago.ReferentialUnlock); refWasReferential && !unlock.Chainable() {
		return ierrors.Wrapf(iotago.ErrReferentialUnlockInvalid, "unlock of type %T cannot reference another referential unlock", unlock)
	}

	ws.recordUnlocked(ident, index)

	return nil
}

// recordUnlocked marks ident as authorized by the unlock at index, remembering its ChainID if ident is chain-derived.
func (ws *WorkingSet) recordUnlocked(ident iotago.Address, index uint16) {
	unlockedIdentity := &UnlockedIdentity{Ident: ident, UnlockedAt: index}

	if chainAddr, is := ident.(iotago.ChainAddress); is {
		unlockedIdentity.ChainID = chainAddr.ChainID()
	}

	ws.UnlockedIdents[ident.Key()] = unlockedIdentity
}

// ExecFuncSenderUnlocked rejects a transaction that creates an output carrying a SenderFeature without the sender's
// address being unlocked by one of the transaction's inputs.
func ExecFuncSenderUnlocked() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet

		for _, output := range ws.Tx.Essence.Outputs {
			if err := IsIssuerOnOutputUnlocked(output, ws.UnlockedIdents); err != nil {
				return err
			}

			senderFeat := output.FeatureSet().SenderFeature()
			if senderFeat == nil {
				continue
			}

			if _, unlocked := ws.UnlockedIdents[senderFeat.Address.Key()]; !unlocked {
				return ierrors.Wrapf(iotago.ErrSenderFeatureNotUnlocked, "sender %s is not unlocked", senderFeat.Address)
			}
		}

		return nil
	}
}

// ExecFuncBalancedDeposit verifies that the transaction neither creates nor destroys base token supply, and that
// every storage deposit return unlock condition on a consumed output is fully refunded by an output of the
// transaction.
func ExecFuncBalancedDeposit() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet

		var in, out iotago.BaseToken
		for _, utxo := range ws.UTXOInputsWithCreationTime {
			in += utxo.Output.Deposit()
		}
		for _, output := range ws.Tx.Essence.Outputs {
			out += output.Deposit()
		}

		if in != out {
			return ierrors.Wrapf(iotago.ErrInputOutputSumMismatch, "inputs deposit %d, outputs deposit %d", in, out)
		}

		return validateStorageDepositReturns(ws)
	}
}

// validateStorageDepositReturns checks that every consumed output's StorageDepositReturnUnlockCondition is honored
// by BasicOutputs unlockable only by the return address whose amounts together reach at least the demanded amount.
func validateStorageDepositReturns(ws *WorkingSet) error {
	for _, utxo := range ws.UTXOInputsWithCreationTime {
		sdr := utxo.Output.UnlockConditionSet().StorageDepositReturn()
		if sdr == nil {
			continue
		}

		var refunded iotago.BaseToken
		for _, output := range ws.Tx.Essence.Outputs {
			basic, is := output.(*iotago.BasicOutput)
			if !is || len(basic.Conditions) != 1 {
				continue
			}

			addrCond := basic.UnlockConditionSet().Address()
			if addrCond == nil || !addrCond.Address.Equal(sdr.ReturnAddress) {
				continue
			}

			refunded += basic.Amount
		}

		if refunded < sdr.Amount {
			return ierrors.Wrapf(iotago.ErrStorageDepositReturnExceedsOutputAmount, "storage deposit return of %d to %s from output %s was refunded only %d", sdr.Amount, sdr.ReturnAddress, utxo.OutputID, refunded)
		}
	}

	return nil
}

// ExecFuncBalancedNativeTokens verifies that every native token ID manifested across a transaction's outputs in
// excess of what its inputs carried is backed by that ID's foundry transitioning in the same transaction; the
// minting amount itself is validated by that foundry's token scheme state transition, run as part of
// ExecFuncChainTransitions.
func ExecFuncBalancedNativeTokens() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet

		for id, outAmount := range ws.OutNativeTokens {
			inAmount := ws.InNativeTokens.ValueOrBigInt0(id)
			if outAmount.Cmp(inAmount) <= 0 {
				continue
			}

			if _, hasFoundry := ws.OutChains[id]; !hasFoundry {
				return ierrors.Wrapf(iotago.ErrTransactionSumNativeTokensMismatch, "native token %s: output sum %s exceeds input sum %s without its minting foundry transitioning", id, outAmount, inAmount)
			}
		}

		return nil
	}
}

// ExecFuncChainTransitions walks every chain-constrained output consumed or created by the transaction and, for
// Account, Foundry and NFT outputs, delegates to the VirtualMachine's ChainSTVF to validate the genesis, state
// change or destruction being performed. Delegation outputs are chain-constrained but have no STVF of their own;
// their lifecycle is governed entirely by the unlock conditions checked elsewhere in the pipeline.
func ExecFuncChainTransitions() ExecFunc {
	return func(virtualMachine VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet

		seen := make(map[iotago.ChainID]struct{}, len(ws.InChains)+len(ws.OutChains))

		for chainID, in := range ws.InChains {
			if _, is := in.Output.(*iotago.DelegationOutput); is {
				continue
			}

			seen[chainID] = struct{}{}

			next, stillExists := ws.OutChains[chainID]

			transType := iotago.ChainTransitionTypeDestroy
			var nextChainOutput iotago.ChainOutput
			if stillExists {
				transType = iotago.ChainTransitionTypeStateChange

				var is bool
				nextChainOutput, is = next.(iotago.ChainOutput)
				if !is {
					return ierrors.Errorf("chain %s transitions to an output not implementing ChainOutput", chainID)
				}
			}

			if err := virtualMachine.ChainSTVF(transType, in, nextChainOutput, vmParams); err != nil {
				return ierrors.Wrapf(err, "chain %s", chainID)
			}
		}

		for chainID, out := range ws.OutChains {
			if _, is := out.(*iotago.DelegationOutput); is {
				continue
			}

			if _, already := seen[chainID]; already {
				continue
			}

			chainOutput, is := out.(iotago.ChainOutput)
			if !is {
				return ierrors.Errorf("chain %s is created by an output not implementing ChainOutput", chainID)
			}

			if err := virtualMachine.ChainSTVF(iotago.ChainTransitionTypeGenesis, nil, chainOutput, vmParams); err != nil {
				return ierrors.Wrapf(err, "chain %s", chainID)
			}
		}

		return nil
	}
}

// ExecFuncBalancedMana verifies that the mana a transaction spends, via stored mana on its outputs and mana
// allotments, never exceeds the mana made available by its inputs, after mana decay.
func ExecFuncBalancedMana() ExecFunc {
	return func(_ VirtualMachine, vmParams *Params) error {
		ws := vmParams.WorkingSet
		manaDecayProvider := vmParams.External.ProtocolParameters.ManaDecayProvider()
		storageScoreParams := vmParams.External.ProtocolParameters.StorageScoreParameters()

		manaIn := TotalManaIn(manaDecayProvider, storageScoreParams, ws.Tx.Essence.CreationTime, ws.UTXOInputsWithCreationTime)
		manaOut := TotalManaOut(ws.Tx.Essence.Outputs, ws.Tx.Essence.Allotments)

		if manaOut > manaIn {
			return ierrors.Wrapf(iotago.ErrInputOutputSumMismatch, "mana in %d is less than mana out %d", manaIn, manaOut)
		}

		return nil
	}
}
