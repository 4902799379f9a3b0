// Package vm defines the pluggable semantic-validation boundary a transaction is checked against once it has been
// built and signed: the VirtualMachine interface, the working state an ExecFunc pipeline accumulates while walking
// a transaction, and the resolved-input bundle a caller supplies on its behalf.
package vm

import (
	iotago "github.com/iotaledger/iota.go/v4"
)

// External carries the protocol-level configuration a transaction is validated against.
type External struct {
	ProtocolParameters iotago.ProtocolParameters
}

// Params bundles everything an ExecFunc needs to validate one transaction.
type Params struct {
	External   *External
	WorkingSet *WorkingSet
}

// UTXOInputWithCreationTime pairs a consumed output with the slot it was created in, needed to compute the decay
// of mana it carried since creation.
type UTXOInputWithCreationTime struct {
	OutputID     iotago.OutputID
	Output       iotago.Output
	CreationTime iotago.SlotIndex
}

// ChainOutputWithCreationTime pairs a consumed chain-constrained output with the slot it was created in.
type ChainOutputWithCreationTime struct {
	Output       iotago.ChainOutput
	CreationTime iotago.SlotIndex
}

// BlockIssuanceCredit is the signed balance the congestion-control engine tracks for a block-issuing account.
type BlockIssuanceCredit int64

// Negative reports whether the balance is below zero.
func (b BlockIssuanceCredit) Negative() bool {
	return b < 0
}

// ResolvedInputs carries everything the caller has looked up on behalf of the VM: the consumed outputs (with the
// slot each was created in) and the resolved context inputs (block issuance credit balances, staking/delegation
// rewards, the slot a commitment context input pins validation to).
type ResolvedInputs struct {
	InputSet                    []*UTXOInputWithCreationTime
	BlockIssuanceCreditInputSet map[iotago.AccountID]BlockIssuanceCredit
	RewardInputSet              map[iotago.ChainID]iotago.Mana
	CommitmentInputSlot         iotago.SlotIndex
}

// UnlockedIdentity records that an address was authorized by the unlock at index UnlockedAt, and, for chain
// addresses, which ChainID it resolved to.
type UnlockedIdentity struct {
	Ident      iotago.Address
	UnlockedAt uint16
	ChainID    iotago.ChainID
}

// UnlockedIdentities maps an address's Key() to the unlock that authorized it.
type UnlockedIdentities map[string]*UnlockedIdentity

// WorkingSet is the state an ExecFunc pipeline accumulates and reads while validating one transaction.
type WorkingSet struct {
	Tx *iotago.Transaction

	UTXOInputsWithCreationTime []*UTXOInputWithCreationTime
	InputSet                   map[iotago.OutputID]iotago.Output

	InChains  map[iotago.ChainID]*ChainOutputWithCreationTime
	OutChains map[iotago.ChainID]iotago.Output

	OutputsByType map[iotago.OutputType][]iotago.Output

	InNativeTokens  iotago.NativeTokenSum
	OutNativeTokens iotago.NativeTokenSum

	BIC            map[iotago.AccountID]BlockIssuanceCredit
	Rewards        map[iotago.ChainID]iotago.Mana
	CommitmentSlot iotago.SlotIndex

	UnlockedIdents UnlockedIdentities
}
