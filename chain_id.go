package iotago

// ChainID represents the identifier of a chain, which is unique to a chain-constrained output and survives state
// transitions (AccountID, NFTID, FoundryID, DelegationID, AnchorID).
type ChainID interface {
	// Matches checks whether other is the same ChainID.
	Matches(other ChainID) bool
	// Addressable tells whether this ChainID can be converted into a ChainAddress.
	Addressable() bool
	// ToAddress converts this ChainID into a ChainAddress. Only valid if Addressable returns true.
	ToAddress() ChainAddress
	// Empty tells whether the ChainID is the zero value.
	Empty() bool
	// Key returns a key to use to index this ChainID.
	Key() interface{}
	// ToHex returns the hex representation of the ChainID.
	ToHex() string
}

// UTXOIDChainID is a ChainID that is derived from the OutputID of the chain's genesis output (as opposed to being
// chosen freely, e.g. FoundryID which is derived from its controlling account and serial number).
type UTXOIDChainID interface {
	ChainID

	// FromOutputID returns the ChainID computed from a given OutputID.
	FromOutputID(OutputID) ChainID
}
