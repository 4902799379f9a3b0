package builder

import (
	"math/big"

	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// updateRemainders computes whatever amount, mana and native tokens the currently selected inputs supply beyond
// what the outputs demand, and returns it to remainderAddress: storage-deposit-return unlock conditions carried
// by selected inputs are refunded first, then one output per leftover native token, then a single basic output
// catching any remaining amount and mana.
func (b *TransactionBuilder) updateRemainders() error {
	address, chain, err := b.resolveRemainderAddress()
	if err != nil {
		return err
	}

	b.remainders = remaindersState{}

	if err := b.createStorageDepositReturns(address); err != nil {
		return err
	}

	inNative, err := b.inputNativeTokenSum()
	if err != nil {
		return err
	}
	outNative, err := b.outputNativeTokenSum()
	if err != nil {
		return err
	}

	leftoverNative := iotago.NativeTokens{}
	for id, inAmount := range inNative {
		outAmount := outNative.ValueOrBigInt0(id)
		if inAmount.Cmp(outAmount) <= 0 {
			continue
		}

		if b.burn.burnsNativeTokens() {
			if _, burned := b.burn.NativeTokens[id]; burned {
				continue
			}
		}

		diff := new(big.Int).Sub(inAmount, outAmount)
		leftoverNative = append(leftoverNative, &iotago.NativeToken{ID: id, Amount: diff})
	}

	storageParams := b.protocolParameters.StorageScoreParameters()

	for _, nt := range leftoverNative {
		out := &iotago.BasicOutput{
			NativeTokens: iotago.NativeTokens{nt},
			Conditions:   iotago.BasicOutputUnlockConditions{&iotago.AddressUnlockCondition{Address: address}},
		}
		out.Amount = storageParams.MinStorageDeposit(out.StorageScore(storageParams, nil))

		b.remainders.data = append(b.remainders.data, &RemainderData{Output: out, Address: address, Chain: chain})
	}

	in, out := b.inputAmountSum(), b.outputAmountSum()
	manaIn, manaOut := b.totalSelectedMana(), b.totalMana()

	var excessAmount iotago.BaseToken
	if in > out {
		excessAmount = in - out
	}

	var excessMana iotago.Mana
	if manaIn > manaOut {
		excessMana = manaIn - manaOut
	}
	if b.burn.burnsMana() {
		excessMana = 0
	}

	if excessAmount == 0 && excessMana == 0 {
		return nil
	}

	remainder := &iotago.BasicOutput{
		Amount: excessAmount,
		Mana:   excessMana,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: address},
		},
	}

	minDeposit := storageParams.MinStorageDeposit(remainder.StorageScore(storageParams, nil))
	if remainder.Amount < minDeposit {
		return ierrors.Wrapf(ErrInsufficientAmount, "remainder amount %d below minimum storage deposit %d", remainder.Amount, minDeposit)
	}

	b.remainders.data = append(b.remainders.data, &RemainderData{Output: remainder, Address: address, Chain: chain})

	return nil
}

// createStorageDepositReturns emits one basic output refunding each storage-deposit-return unlock condition
// carried by a selected input. A refund is skipped when its return address is remainderAddress (whether set by the
// caller or resolved from the inputs), in which case the deposit stays with the builder's own remainder, and when
// an output the builder already creates is a simple transfer to the return address carrying at least the amount.
func (b *TransactionBuilder) createStorageDepositReturns(remainderAddress iotago.Address) error {
	for _, in := range b.selectedInputs {
		sdr := in.Output.UnlockConditionSet().StorageDepositReturn()
		if sdr == nil {
			continue
		}

		if sdr.ReturnAddress.Equal(remainderAddress) {
			continue
		}

		if b.outputForRemainderExists(sdr.ReturnAddress, sdr.Amount) {
			continue
		}

		b.remainders.storageDepositReturns = append(b.remainders.storageDepositReturns, &iotago.BasicOutput{
			Amount:     sdr.Amount,
			Conditions: iotago.BasicOutputUnlockConditions{&iotago.AddressUnlockCondition{Address: sdr.ReturnAddress}},
		})
	}

	return nil
}

// outputForRemainderExists tells whether one of the outputs the builder already creates is a simple transfer to
// address carrying at least amount, in which case a dedicated storage-deposit-return output is unnecessary.
func (b *TransactionBuilder) outputForRemainderExists(address iotago.Address, amount iotago.BaseToken) bool {
	for _, out := range b.allOutputs() {
		basic, is := out.(*iotago.BasicOutput)
		if !is || !basic.IsSimpleTransfer() {
			continue
		}

		addrCond := basic.UnlockConditionSet().Address()
		if addrCond == nil || !addrCond.Address.Equal(address) {
			continue
		}

		if basic.Amount >= amount {
			return true
		}
	}

	return false
}

// resolveRemainderAddress returns the address any leftover amount and mana should be paid to: the caller's
// explicit choice if one was set, otherwise the first Ed25519-backed address among the already selected and
// available inputs, preserving its BIP-44 chain so the caller's wallet can still sign for it later.
func (b *TransactionBuilder) resolveRemainderAddress() (iotago.Address, *Bip44Chain, error) {
	if b.remainderAddress != nil {
		return b.remainderAddress, nil, nil
	}

	for _, in := range b.selectedInputs {
		if addr := requiredAddress(in.Output, b.creationSlot); addr.Type() == iotago.AddressEd25519 {
			return addr, in.Chain, nil
		}
	}

	for _, in := range b.availableInputs {
		if addr := requiredAddress(in.Output, b.creationSlot); addr.Type() == iotago.AddressEd25519 {
			return addr, in.Chain, nil
		}
	}

	return nil, nil, ErrMissingInputWithEd25519Address
}
