package builder

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// fulfillSenderRequirement ensures r.Address is already unlocked by a selected input, selecting one more input
// with that address from the available pool if necessary.
func (b *TransactionBuilder) fulfillSenderRequirement(r *Requirement) error {
	return b.ensureAddressSelected(r.Address)
}

// fulfillIssuerRequirement ensures r.Address is already unlocked by a selected input, the same obligation a
// Sender requirement carries; Issuer features only differ from Sender in that they are immutable.
func (b *TransactionBuilder) fulfillIssuerRequirement(r *Requirement) error {
	return b.ensureAddressSelected(r.Address)
}

func (b *TransactionBuilder) ensureAddressSelected(address iotago.Address) error {
	for _, in := range b.selectedInputs {
		if requiredAddress(in.Output, b.creationSlot).Equal(address) {
			return nil
		}
	}

	if !b.allowAdditionalInputSelection {
		return ierrors.Wrapf(ErrAdditionalInputsRequired, "address %s is not unlocked by any selected input", address)
	}

	for _, candidate := range b.availableInputs {
		if requiredAddress(candidate.Output, b.creationSlot).Equal(address) {
			b.selectInput(candidate)

			return nil
		}
	}

	return ierrors.Wrapf(ErrUnfulfillableRequirement, "no available input unlockable by address %s", address)
}

// fulfillChainStateRequirement ensures the output consuming/continuing r.Chain is among the selected inputs.
func (b *TransactionBuilder) fulfillChainStateRequirement(r *Requirement) error {
	for _, in := range b.selectedInputs {
		if chainOutput, is := in.Output.(iotago.ChainOutput); is && chainOutput.Chain().Matches(r.Chain) {
			return nil
		}
	}

	if !b.allowAdditionalInputSelection {
		return ierrors.Wrapf(ErrAdditionalInputsRequired, "chain %s has no selected input", r.Chain)
	}

	for _, candidate := range b.availableInputs {
		chainOutput, is := candidate.Output.(iotago.ChainOutput)
		if !is || !chainOutput.Chain().Matches(r.Chain) {
			continue
		}

		b.selectInput(candidate)

		return nil
	}

	return ierrors.Wrapf(ErrUnfulfillableRequirement, "chain %s: no matching input available", r.Chain)
}

// fulfillFoundryRequirement ensures the foundry's own chain requirement was already raised; the foundry output
// itself is handled as any other ChainOutput by fulfillChainStateRequirement, this solver exists only so a
// Foundry requirement seeded ahead of the chain-state sweep does not get treated as unknown.
func (b *TransactionBuilder) fulfillFoundryRequirement(_ *Requirement) error {
	return nil
}

// fulfillContextInputsRequirement computes which CommitmentInput/BlockIssuanceCreditInput/RewardInput entries the
// already-selected inputs and outputs demand; the actual ContextInputs slice is built lazily by contextInputs()
// from the same state at assembly time, so this solver only needs to surface an error for state it cannot satisfy.
func (b *TransactionBuilder) fulfillContextInputsRequirement() error {
	for outputID := range b.manaRewards {
		if !b.isSelected(outputID) {
			return ierrors.Wrapf(ErrUnfulfillableRequirement, "mana reward recorded for output %s which is not selected", outputID)
		}
	}

	return nil
}

func (b *TransactionBuilder) hasSelectedAccount(accountID iotago.AccountID) bool {
	for _, in := range b.selectedInputs {
		if account, is := in.Output.(*iotago.AccountOutput); is {
			if account.Chain().Matches(accountID) {
				return true
			}
		}
	}

	return false
}

// contextInputs derives the CommitmentInput/BlockIssuanceCreditInput/RewardInput entries the assembled
// transaction needs: a CommitmentInput whenever any output carries a slot-relative unlock condition or the
// transaction allots mana, a BlockIssuanceCreditInput for every account this transaction allots mana to or that
// carries a min mana allotment, and a RewardInput for every output a mana reward was recorded against.
func (b *TransactionBuilder) contextInputs() iotago.ContextInputs {
	var inputs iotago.ContextInputs

	needsCommitment := len(b.manaAllotments) > 0 || b.minManaAllotment != nil
	for _, in := range b.selectedInputs {
		if in.Output.UnlockConditionSet().Timelock() != nil || in.Output.UnlockConditionSet().Expiration() != nil {
			needsCommitment = true
		}
	}

	if needsCommitment && !b.latestSlotCommitmentID.Empty() {
		inputs = append(inputs, &iotago.CommitmentInput{CommitmentID: b.latestSlotCommitmentID})
	}

	biAccounts := make(map[iotago.AccountID]struct{}, len(b.manaAllotments))
	for accountID := range b.manaAllotments {
		biAccounts[accountID] = struct{}{}
	}
	if b.minManaAllotment != nil {
		biAccounts[b.minManaAllotment.IssuerID] = struct{}{}
	}
	for accountID := range biAccounts {
		inputs = append(inputs, &iotago.BlockIssuanceCreditInput{AccountID: accountID})
	}

	for i, in := range b.selectedInputs {
		if _, hasReward := b.manaRewards[in.OutputID]; hasReward {
			inputs = append(inputs, &iotago.RewardInput{Index: iotago.RewardInputIndex(i)})
		}
	}

	return inputs
}

// transactionCapabilities reports the capability bits this transaction needs set, derived from the burn options
// the caller configured and from any implicit destruction (an input chain output with no corresponding output).
func (b *TransactionBuilder) transactionCapabilities() iotago.TransactionCapabilitiesBitMask {
	var opts []iotago.TransactionCapabilitiesOption

	if b.burn.burnsMana() {
		opts = append(opts, iotago.WithTransactionCanBurnMana(true))
	}
	if b.burn.burnsNativeTokens() {
		opts = append(opts, iotago.WithTransactionCanBurnNativeTokens(true))
	}

	destroysAccounts, destroysFoundries, destroysNFTs := b.detectImplicitDestructions()
	if destroysAccounts {
		opts = append(opts, iotago.WithTransactionCanDestroyAccountOutputs(true))
	}
	if destroysFoundries {
		opts = append(opts, iotago.WithTransactionCanDestroyFoundryOutputs(true))
	}
	if destroysNFTs {
		opts = append(opts, iotago.WithTransactionCanDestroyNFTOutputs(true))
	}

	if len(opts) == 0 {
		return nil
	}

	return iotago.TransactionCapabilitiesBitMaskWithCapabilities(opts...)
}

func (b *TransactionBuilder) detectImplicitDestructions() (accounts, foundries, nfts bool) {
	outChains := make(map[iotago.ChainID]struct{})
	for _, out := range b.allOutputs() {
		if chainOutput, is := out.(iotago.ChainOutput); is {
			if chainID := chainOutput.Chain(); !chainID.Empty() {
				outChains[chainID] = struct{}{}
			}
		}
	}

	for _, in := range b.selectedInputs {
		chainOutput, is := in.Output.(iotago.ChainOutput)
		if !is {
			continue
		}

		chainID := chainOutput.Chain()
		if chainID.Empty() {
			continue
		}
		if _, stillExists := outChains[chainID]; stillExists {
			continue
		}

		switch in.Output.(type) {
		case *iotago.AccountOutput:
			accounts = true
		case *iotago.FoundryOutput:
			foundries = true
		case *iotago.NFTOutput:
			nfts = true
		}
	}

	return accounts, foundries, nfts
}
