package iotago

// ChainTransitionType defines the type of transition a chain-constrained output (account, foundry, NFT,
// delegation) is undergoing between the inputs and outputs of a transaction.
type ChainTransitionType byte

const (
	// ChainTransitionTypeGenesis marks an output that has no corresponding chain input, i.e. it is being created.
	ChainTransitionTypeGenesis ChainTransitionType = iota
	// ChainTransitionTypeStateChange marks an output whose chain ID is present on both sides of the transaction.
	ChainTransitionTypeStateChange
	// ChainTransitionTypeDestroy marks a chain input that has no corresponding output, i.e. it is being destroyed.
	ChainTransitionTypeDestroy
)

func (t ChainTransitionType) String() string {
	switch t {
	case ChainTransitionTypeGenesis:
		return "ChainTransitionTypeGenesis"
	case ChainTransitionTypeStateChange:
		return "ChainTransitionTypeStateChange"
	case ChainTransitionTypeDestroy:
		return "ChainTransitionTypeDestroy"
	default:
		return "unknown chain transition type"
	}
}
