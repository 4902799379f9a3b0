package builder

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// TransactionBuilder selects inputs for and assembles a transaction from a caller-provided pool of available
// inputs and a set of desired outputs, closing whatever amount, mana, native-token and chain-state requirements
// those outputs imply by drawing further inputs from the pool, and returning unspent value as one or more
// remainder outputs.
type TransactionBuilder struct {
	protocolParameters iotago.ProtocolParameters

	availableInputs []*InputSigningData
	selectedInputs  []*InputSigningData

	providedOutputs []iotago.Output

	burn             *Burn
	minManaAllotment *MinManaAllotment
	manaAllotments   map[iotago.AccountID]iotago.Mana
	manaRewards      map[iotago.OutputID]iotago.Mana

	remainderAddress iotago.Address
	remainders       remaindersState

	payload iotago.TxEssencePayload

	creationSlot           iotago.SlotIndex
	latestSlotCommitmentID iotago.Identifier

	allowAdditionalInputSelection bool

	requirements []*Requirement
}

// remaindersState accumulates everything updateRemainders computes: synthesized storage-deposit-return outputs
// refunding inputs' StorageDepositReturnUnlockConditions, and the remainder outputs paying back leftover amount,
// mana and native tokens.
type remaindersState struct {
	storageDepositReturns []iotago.Output
	data                  []*RemainderData
}

// NewTransactionBuilder creates a new TransactionBuilder for the given protocol parameters and creation slot.
func NewTransactionBuilder(protocolParameters iotago.ProtocolParameters, creationSlot iotago.SlotIndex) *TransactionBuilder {
	return &TransactionBuilder{
		protocolParameters:            protocolParameters,
		manaAllotments:                make(map[iotago.AccountID]iotago.Mana),
		manaRewards:                   make(map[iotago.OutputID]iotago.Mana),
		creationSlot:                  creationSlot,
		allowAdditionalInputSelection: true,
	}
}

// WithAvailableInputs adds inputs to the pool the builder may draw additional selections from.
func (b *TransactionBuilder) WithAvailableInputs(inputs ...*InputSigningData) *TransactionBuilder {
	b.availableInputs = append(b.availableInputs, inputs...)

	return b
}

// WithRequiredInput marks an available input as mandatory, moving it into the selected set up front so its
// amount, mana and native tokens count toward the transaction regardless of whether any output needs them.
func (b *TransactionBuilder) WithRequiredInput(input *InputSigningData) *TransactionBuilder {
	b.selectInput(input)

	return b
}

// WithProvidedOutputs sets the outputs the resulting transaction must create.
func (b *TransactionBuilder) WithProvidedOutputs(outputs ...iotago.Output) *TransactionBuilder {
	b.providedOutputs = append(b.providedOutputs, outputs...)

	return b
}

// WithBurn configures value the builder may destroy instead of returning as a remainder.
func (b *TransactionBuilder) WithBurn(burn *Burn) *TransactionBuilder {
	b.burn = burn

	return b
}

// WithMinManaAllotment asks the builder to keep the mana allotted to the given issuer account at least at the
// work score of the resulting transaction, priced at referenceManaCost mana per work score unit.
func (b *TransactionBuilder) WithMinManaAllotment(issuerID iotago.AccountID, referenceManaCost iotago.Mana) *TransactionBuilder {
	b.minManaAllotment = &MinManaAllotment{IssuerID: issuerID, ReferenceManaCost: referenceManaCost}

	return b
}

// WithManaAllotment allots mana to accountID's block issuance credit balance.
func (b *TransactionBuilder) WithManaAllotment(accountID iotago.AccountID, mana iotago.Mana) *TransactionBuilder {
	b.manaAllotments[accountID] += mana

	return b
}

// WithManaRewards records the mana reward claimable for the given already-staked/delegated output, so that it is
// counted as available mana without needing a RewardInput to be added up front.
func (b *TransactionBuilder) WithManaRewards(outputID iotago.OutputID, mana iotago.Mana) *TransactionBuilder {
	b.manaRewards[outputID] = mana

	return b
}

// WithRemainderAddress pins the address any remainder is paid to, instead of having the builder search for one.
func (b *TransactionBuilder) WithRemainderAddress(address iotago.Address) *TransactionBuilder {
	b.remainderAddress = address

	return b
}

// WithPayload sets the transaction essence's inner payload, e.g. TaggedData.
func (b *TransactionBuilder) WithPayload(payload iotago.TxEssencePayload) *TransactionBuilder {
	b.payload = payload

	return b
}

// WithLatestSlotCommitmentID sets the slot commitment the builder resolves context inputs and slot-relative
// unlock conditions against.
func (b *TransactionBuilder) WithLatestSlotCommitmentID(id iotago.Identifier) *TransactionBuilder {
	b.latestSlotCommitmentID = id

	return b
}

// DisallowAdditionalInputSelection forbids the builder from drawing further inputs from the available pool beyond
// those already selected; any requirement it cannot otherwise close fails with ErrAdditionalInputsRequired.
func (b *TransactionBuilder) DisallowAdditionalInputSelection() *TransactionBuilder {
	b.allowAdditionalInputSelection = false

	return b
}

// Build runs the requirement-resolution fixpoint and returns the assembled, unsigned-but-referentially-complete
// transaction together with the inputs it consumes, in the same order as the transaction's inputs.
func (b *TransactionBuilder) Build() (*PreparedTransactionData, error) {
	if len(b.availableInputs) == 0 && len(b.selectedInputs) == 0 {
		return nil, ErrNoAvailableInputsProvided
	}

	if err := b.seedInitialRequirements(); err != nil {
		return nil, err
	}

	const maxPasses = 3
	for pass := 0; len(b.requirements) > 0; pass++ {
		if pass >= maxPasses*8 {
			return nil, ierrors.Wrap(ErrTransactionBuilder, "requirement queue did not converge")
		}

		requirement := b.requirements[0]
		b.requirements = b.requirements[1:]

		if err := b.fulfillRequirement(requirement); err != nil {
			return nil, err
		}
	}

	if err := b.updateRemainders(); err != nil {
		return nil, err
	}

	if b.minManaAllotment != nil {
		if err := b.fulfillMinManaAllotment(); err != nil {
			return nil, err
		}
	}

	return b.assemble()
}

// seedInitialRequirements derives the first pass of requirements from the caller's provided outputs: Issuer and
// Sender features name addresses that must be unlocked, chain-typed outputs name chains that must transition,
// Foundry outputs name the account that must control them; Amount and Mana always close the loop.
func (b *TransactionBuilder) seedInitialRequirements() error {
	seen := make(map[iotago.ChainID]struct{})

	for _, output := range b.providedOutputs {
		if issuer := output.FeatureSet().Issuer(); issuer != nil {
			b.pushRequirement(issuerRequirement(issuer.Address))
		}
		if sender := output.FeatureSet().SenderFeature(); sender != nil {
			b.pushRequirement(senderRequirement(sender.Address))
		}

		if chainOutput, is := output.(iotago.ChainOutput); is {
			if chainID := chainOutput.Chain(); !chainID.Empty() {
				if _, already := seen[chainID]; !already {
					seen[chainID] = struct{}{}
					b.pushRequirement(chainStateRequirement(chainID))
				}
			}
		}

		if foundry, is := output.(*iotago.FoundryOutput); is {
			b.pushRequirement(foundryRequirement(foundry.MustID()))

			if controller := foundry.UnlockConditionSet().ImmutableAccount(); controller != nil {
				controllerChainID := controller.Address.AccountID()
				if _, already := seen[controllerChainID]; !already {
					seen[controllerChainID] = struct{}{}
					b.pushRequirement(chainStateRequirement(controllerChainID))
				}
			}
		}
	}

	b.pushRequirement(&Requirement{Kind: RequirementContextInputs})
	b.pushRequirement(&Requirement{Kind: RequirementNativeTokens})
	b.pushRequirement(&Requirement{Kind: RequirementAmount})
	b.pushRequirement(&Requirement{Kind: RequirementMana})

	return nil
}

func (b *TransactionBuilder) pushRequirement(r *Requirement) {
	for _, existing := range b.requirements {
		if existing.equal(r) {
			return
		}
	}

	b.requirements = append(b.requirements, r)
}

func (b *TransactionBuilder) fulfillRequirement(r *Requirement) error {
	switch r.Kind {
	case RequirementSender:
		return b.fulfillSenderRequirement(r)
	case RequirementIssuer:
		return b.fulfillIssuerRequirement(r)
	case RequirementChainState:
		return b.fulfillChainStateRequirement(r)
	case RequirementFoundry:
		return b.fulfillFoundryRequirement(r)
	case RequirementNativeTokens:
		return b.fulfillNativeTokensRequirement()
	case RequirementAmount:
		return b.fulfillAmountRequirement()
	case RequirementMana:
		return b.fulfillMana()
	case RequirementContextInputs:
		return b.fulfillContextInputsRequirement()
	default:
		return ierrors.Wrapf(ErrUnfulfillableRequirement, "unknown requirement kind %d", r.Kind)
	}
}

// allOutputs returns the caller-provided outputs the transaction creates, in the order they will appear in the
// transaction (remainder and storage-deposit-return outputs are appended separately during assembly).
func (b *TransactionBuilder) allOutputs() []iotago.Output {
	return b.providedOutputs
}

func (b *TransactionBuilder) remainderOutputs() []iotago.Output {
	outputs := make([]iotago.Output, 0, len(b.remainders.data)+len(b.remainders.storageDepositReturns))
	for _, rd := range b.remainders.data {
		outputs = append(outputs, rd.Output)
	}
	outputs = append(outputs, b.remainders.storageDepositReturns...)

	return outputs
}

// selectInput moves an input from the available pool (if present there) into the selected set.
func (b *TransactionBuilder) selectInput(input *InputSigningData) iotago.Output {
	for i, available := range b.availableInputs {
		if available.OutputID == input.OutputID {
			b.availableInputs = append(b.availableInputs[:i], b.availableInputs[i+1:]...)
			break
		}
	}

	for _, already := range b.selectedInputs {
		if already.OutputID == input.OutputID {
			return nil
		}
	}

	b.selectedInputs = append(b.selectedInputs, input)

	b.onInputSelected(input)

	return input.Output
}

// onInputSelected pushes any requirements a newly selected input's own chain identity implies: since a consumed
// input already exists on the ledger, its ChainID is never empty, and the builder must decide whether that chain
// continues or is destroyed.
func (b *TransactionBuilder) onInputSelected(input *InputSigningData) {
	chainOutput, is := input.Output.(iotago.ChainOutput)
	if !is {
		return
	}

	chainID := chainOutput.Chain()
	if chainID == nil || chainID.Empty() {
		return
	}

	b.pushRequirement(chainStateRequirement(chainID))
}

func (b *TransactionBuilder) isSelected(outputID iotago.OutputID) bool {
	for _, in := range b.selectedInputs {
		if in.OutputID == outputID {
			return true
		}
	}

	return false
}

func (b *TransactionBuilder) assemble() (*PreparedTransactionData, error) {
	essence := &iotago.TransactionEssence{
		NetworkID:    b.protocolParameters.NetworkID(),
		CreationTime: b.creationSlot,
		Outputs:      b.allOutputs(),
		Payload:      b.payload,
	}

	for _, input := range b.selectedInputs {
		essence.Inputs = append(essence.Inputs, input.OutputID.UTXOInput())
	}

	essence.Outputs = append(essence.Outputs, b.remainders.storageDepositReturns...)
	for _, rd := range b.remainders.data {
		essence.Outputs = append(essence.Outputs, rd.Output)
	}

	for accountID, mana := range b.manaAllotments {
		if mana == 0 {
			continue
		}
		essence.Allotments = append(essence.Allotments, &iotago.Allotment{AccountID: accountID, Mana: mana})
	}

	essence.ContextInputs = b.contextInputs()
	essence.Capabilities = b.transactionCapabilities()

	inputSet := make(iotago.OutputSet, len(b.selectedInputs))
	for _, input := range b.selectedInputs {
		inputSet[input.OutputID] = input.Output
	}

	var inputIDs iotago.OutputIDs
	for _, input := range essence.Inputs {
		inputIDs = append(inputIDs, input.(*iotago.UTXOInput).ID())
	}

	orderedInputs := inputIDs.OrderedSet(inputSet)
	commitment, err := orderedInputs.Commitment()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to compute inputs commitment")
	}
	copy(essence.InputsCommitment[:], commitment)

	unlocks, err := b.nullTransactionUnlocks()
	if err != nil {
		return nil, err
	}

	tx := &iotago.Transaction{Essence: essence, Unlocks: unlocks}

	var remainderAddress iotago.Address
	var remainderChain *Bip44Chain
	if len(b.remainders.data) > 0 {
		remainderAddress = b.remainders.data[len(b.remainders.data)-1].Address
		remainderChain = b.remainders.data[len(b.remainders.data)-1].Chain
	}

	return &PreparedTransactionData{
		Transaction:      tx,
		InputsData:       b.selectedInputs,
		RemainderAddress: remainderAddress,
		RemainderChain:   remainderChain,
	}, nil
}

// requiredAddress returns the address an output's owner must unlock with at slot, accounting for an expiration
// unlock condition having already handed control over to its return address.
func requiredAddress(output iotago.Output, slot iotago.SlotIndex) iotago.Address {
	if expiration := output.UnlockConditionSet().Expiration(); expiration != nil {
		if expiration.ReturnIdentCanUnlock(slot) {
			return expiration.ReturnAddress
		}
	}

	return output.Ident()
}
