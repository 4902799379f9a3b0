package builder

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

func (b *TransactionBuilder) inputAmountSum() iotago.BaseToken {
	var sum iotago.BaseToken
	for _, in := range b.selectedInputs {
		sum += in.Output.Deposit()
	}

	return sum
}

func (b *TransactionBuilder) outputAmountSum() iotago.BaseToken {
	var sum iotago.BaseToken
	for _, out := range b.allOutputs() {
		sum += out.Deposit()
	}
	for _, out := range b.remainderOutputs() {
		sum += out.Deposit()
	}

	return sum
}

func (b *TransactionBuilder) inputNativeTokenSum() (iotago.NativeTokenSum, error) {
	var all iotago.NativeTokens
	for _, in := range b.selectedInputs {
		all = append(all, nativeTokensOf(in.Output)...)
	}

	return all.Set()
}

func (b *TransactionBuilder) outputNativeTokenSum() (iotago.NativeTokenSum, error) {
	var all iotago.NativeTokens
	for _, out := range b.allOutputs() {
		all = append(all, nativeTokensOf(out)...)
	}

	return all.Set()
}

// fulfillNativeTokensRequirement closes any native token deficit between the outputs' demand and the already
// selected inputs' supply by drawing more inputs from the available pool, one native token ID at a time.
func (b *TransactionBuilder) fulfillNativeTokensRequirement() error {
	outSum, err := b.outputNativeTokenSum()
	if err != nil {
		return ierrors.Wrap(err, "failed to sum output native tokens")
	}

	for id, wanted := range outSum {
		for {
			inSum, err := b.inputNativeTokenSum()
			if err != nil {
				return ierrors.Wrap(err, "failed to sum input native tokens")
			}

			have := inSum.ValueOrBigInt0(id)
			if have.Cmp(wanted) >= 0 {
				break
			}

			candidates := make([]*InputSigningData, 0, len(b.availableInputs))
			for _, candidate := range b.availableInputs {
				for _, nt := range nativeTokensOf(candidate.Output) {
					if nt.ID == id {
						candidates = append(candidates, candidate)
						break
					}
				}
			}

			if len(candidates) == 0 {
				return ierrors.Wrapf(ErrInsufficientNativeTokenAmount, "native token %s: required %s, available %s", id, wanted, have)
			}

			if !b.allowAdditionalInputSelection {
				return ierrors.Wrapf(ErrAdditionalInputsRequired, "native token %s deficit requires another input", id)
			}

			b.selectInput(candidates[0])
		}
	}

	return nil
}

// fulfillAmountRequirement closes any base token deficit between the outputs and the already selected inputs,
// picking additional inputs from the available pool ordered to minimize overshoot.
func (b *TransactionBuilder) fulfillAmountRequirement() error {
	for {
		in, out := b.inputAmountSum(), b.outputAmountSum()
		if in >= out {
			return nil
		}

		missing := out - in
		if len(b.availableInputs) == 0 {
			return ierrors.Wrapf(ErrInsufficientAmount, "required %d more, no inputs available", missing)
		}

		if !b.allowAdditionalInputSelection {
			return ierrors.Wrapf(ErrAdditionalInputsRequired, "amount deficit of %d requires another input", missing)
		}

		ordered := orderCandidatesForDeficit(b.availableInputs, missing, func(in *InputSigningData) iotago.BaseToken {
			return in.Output.Deposit()
		})

		b.selectInput(ordered[0])
	}
}
