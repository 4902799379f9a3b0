package builder

import (
	"errors"

	iotago "github.com/iotaledger/iota.go/v4"
)

var (
	// ErrTransactionBuilder defines a generic error occurring within the TransactionBuilder.
	ErrTransactionBuilder = errors.New("transaction builder error")
	// ErrNoAvailableInputsProvided gets returned when the builder is given no inputs to select from at all.
	ErrNoAvailableInputsProvided = errors.New("no available inputs provided")
	// ErrInsufficientAmount gets returned when the available inputs do not cover the required base token amount.
	ErrInsufficientAmount = errors.New("insufficient base token amount")
	// ErrInsufficientNativeTokenAmount gets returned when the available inputs do not cover a required native token amount.
	ErrInsufficientNativeTokenAmount = errors.New("insufficient native token amount")
	// ErrInsufficientMana gets returned when the available inputs do not cover the required mana.
	ErrInsufficientMana = errors.New("insufficient mana")
	// ErrAdditionalInputsRequired gets returned when closing a requirement would need more inputs than the caller allows.
	ErrAdditionalInputsRequired = errors.New("additional inputs required but not allowed")
	// ErrUnfulfillableRequirement gets returned when a requirement's solver cannot be satisfied by any means.
	ErrUnfulfillableRequirement = errors.New("unfulfillable requirement")
	// ErrBlockIssuerAccountNotFound gets returned when a min mana allotment is requested for an account not among the selected inputs.
	ErrBlockIssuerAccountNotFound = errors.New("block issuer account not found")
	// ErrMissingInputWithEd25519Address gets returned when no Ed25519-backed remainder address can be found or derived.
	ErrMissingInputWithEd25519Address = errors.New("no input with an Ed25519 address available to hold the remainder")
	// ErrUnsupportedOutputKind gets returned when an output kind is encountered that the builder cannot reason about.
	ErrUnsupportedOutputKind = errors.New("unsupported output kind")
)

// Bip44Chain records the BIP-44 derivation path of an address, carried alongside an input so that a hardware
// signer can rederive the same address without storing it.
type Bip44Chain struct {
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// InputSigningData bundles an available or already-selected output with everything the builder needs to reason
// about spending it: the OutputID it is known by, the slot it was created in (needed for mana decay), and,
// optionally, the BIP-44 chain that derives its unlocking address.
type InputSigningData struct {
	Output       iotago.Output
	OutputID     iotago.OutputID
	CreationSlot iotago.SlotIndex
	Chain        *Bip44Chain
}

// RemainderData describes one output the builder has synthesized to return unspent value to its owner.
type RemainderData struct {
	Output  iotago.Output
	Chain   *Bip44Chain
	Address iotago.Address
}

// PreparedTransactionData is the result of a successful TransactionBuilder.Build: the assembled, unsigned
// transaction (its unlocks carry null signatures), the inputs it consumes in order, and the address any remainder
// was returned to.
type PreparedTransactionData struct {
	Transaction      *iotago.Transaction
	InputsData       []*InputSigningData
	RemainderAddress iotago.Address
	RemainderChain   *Bip44Chain
}

// Burn describes value the caller explicitly allows the builder to destroy rather than carry forward into a
// remainder: native tokens, mana, and chain outputs whose consumption has no corresponding creation.
type Burn struct {
	Mana          bool
	GeneratedMana bool
	NativeTokens  map[iotago.NativeTokenID]struct{}
	Accounts      map[iotago.AccountID]struct{}
	Foundries     map[iotago.FoundryID]struct{}
	NFTs          map[iotago.NFTID]struct{}
}

func (b *Burn) burnsMana() bool {
	return b != nil && b.Mana
}

func (b *Burn) excludesGeneratedMana() bool {
	return b != nil && b.GeneratedMana
}

func (b *Burn) burnsNativeTokens() bool {
	return b != nil && len(b.NativeTokens) > 0
}

// MinManaAllotment asks the builder to keep raising the mana allotted to issuerID until it covers the work score
// of the transaction it ends up producing, priced at referenceManaCost mana per work score unit.
type MinManaAllotment struct {
	IssuerID          iotago.AccountID
	ReferenceManaCost iotago.Mana
}

// RequirementKind tags the kind of condition a Requirement enforces.
type RequirementKind int

const (
	// RequirementSender ensures an unlocked input for a given address is selected.
	RequirementSender RequirementKind = iota
	// RequirementIssuer ensures an unlocked input for a given address is selected, for newly created chains
	// carrying an IssuerFeature.
	RequirementIssuer
	// RequirementChainState ensures a consumed chain is selected and, if not destroyed, a corresponding output exists.
	RequirementChainState
	// RequirementFoundry ensures the foundry's controlling account is selected.
	RequirementFoundry
	// RequirementNativeTokens closes any deficit in native token balance by selecting more inputs.
	RequirementNativeTokens
	// RequirementAmount closes any base token deficit.
	RequirementAmount
	// RequirementMana closes any mana deficit, including recursive recalculation of the minimum allotment.
	RequirementMana
	// RequirementContextInputs ensures BIC/Commitment/Reward context inputs are present whenever required.
	RequirementContextInputs
)

func (k RequirementKind) String() string {
	switch k {
	case RequirementSender:
		return "Sender"
	case RequirementIssuer:
		return "Issuer"
	case RequirementChainState:
		return "ChainState"
	case RequirementFoundry:
		return "Foundry"
	case RequirementNativeTokens:
		return "NativeTokens"
	case RequirementAmount:
		return "Amount"
	case RequirementMana:
		return "Mana"
	case RequirementContextInputs:
		return "ContextInputs"
	default:
		return "unknown requirement"
	}
}

// Requirement is one condition the TransactionBuilder must satisfy before it can emit a transaction.
type Requirement struct {
	Kind    RequirementKind
	Address iotago.Address
	Chain   iotago.ChainID
	Foundry iotago.FoundryID
}

func (r *Requirement) equal(other *Requirement) bool {
	if r.Kind != other.Kind {
		return false
	}

	switch r.Kind {
	case RequirementSender, RequirementIssuer:
		return r.Address != nil && other.Address != nil && r.Address.Equal(other.Address)
	case RequirementChainState:
		return r.Chain != nil && other.Chain != nil && r.Chain.Matches(other.Chain)
	case RequirementFoundry:
		return r.Foundry == other.Foundry
	default:
		return true
	}
}

func senderRequirement(address iotago.Address) *Requirement {
	return &Requirement{Kind: RequirementSender, Address: address}
}

func issuerRequirement(address iotago.Address) *Requirement {
	return &Requirement{Kind: RequirementIssuer, Address: address}
}

func chainStateRequirement(chainID iotago.ChainID) *Requirement {
	return &Requirement{Kind: RequirementChainState, Chain: chainID}
}

func foundryRequirement(foundryID iotago.FoundryID) *Requirement {
	return &Requirement{Kind: RequirementFoundry, Foundry: foundryID}
}
