package vm

import (
	"github.com/iotaledger/hive.go/ierrors"

	iotago "github.com/iotaledger/iota.go/v4"
)

// NewVMParamsWorkingSet builds the WorkingSet for validating tx against the outputs/context inputs resolved
// beforehand in inputs: the consumed/created chain outputs, the input/output native token sums, and the set of
// addresses the transaction's unlocks authorize.
func NewVMParamsWorkingSet(tx *iotago.Transaction, inputs ResolvedInputs) (*WorkingSet, error) {
	txID, err := tx.ID()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to compute transaction ID")
	}

	workingSet := &WorkingSet{
		Tx:                         tx,
		UTXOInputsWithCreationTime: inputs.InputSet,
		InputSet:                   make(map[iotago.OutputID]iotago.Output, len(inputs.InputSet)),
		InChains:                   make(map[iotago.ChainID]*ChainOutputWithCreationTime),
		OutChains:                  make(map[iotago.ChainID]iotago.Output),
		OutputsByType:              make(map[iotago.OutputType][]iotago.Output),
		BIC:                        inputs.BlockIssuanceCreditInputSet,
		Rewards:                    inputs.RewardInputSet,
		CommitmentSlot:             inputs.CommitmentInputSlot,
		UnlockedIdents:             make(UnlockedIdentities),
	}

	var inNativeTokenSets iotago.NativeTokens
	for _, in := range inputs.InputSet {
		workingSet.InputSet[in.OutputID] = in.Output

		if chainOutput, is := in.Output.(iotago.ChainOutput); is {
			workingSet.InChains[chainOutput.Chain()] = &ChainOutputWithCreationTime{
				Output:       chainOutput,
				CreationTime: in.CreationTime,
			}
		}

		if withNativeTokens, has := in.Output.(interface{ NativeTokenList() iotago.NativeTokens }); has {
			inNativeTokenSets = append(inNativeTokenSets, withNativeTokens.NativeTokenList()...)
		}
	}

	inSums, err := inNativeTokenSets.Set()
	if err != nil {
		return nil, ierrors.Wrap(err, "invalid native tokens across transaction inputs")
	}
	workingSet.InNativeTokens = inSums

	var outNativeTokenSets iotago.NativeTokens
	for outputIndex, output := range tx.Essence.Outputs {
		workingSet.OutputsByType[output.Type()] = append(workingSet.OutputsByType[output.Type()], output)

		if withNativeTokens, has := output.(interface{ NativeTokenList() iotago.NativeTokens }); has {
			outNativeTokenSets = append(outNativeTokenSets, withNativeTokens.NativeTokenList()...)
		}

		chainOutput, is := output.(iotago.ChainOutput)
		if !is {
			continue
		}

		chainID := chainOutput.Chain()
		if chainID.Empty() {
			outputID := iotago.MustOutputIDFromTransactionIDAndIndex(txID, uint16(outputIndex))
			chainID = deriveGenesisChainID(chainOutput, outputID)
		}

		workingSet.OutChains[chainID] = output
	}

	outSums, err := outNativeTokenSets.Set()
	if err != nil {
		return nil, ierrors.Wrap(err, "invalid native tokens across transaction outputs")
	}
	workingSet.OutNativeTokens = outSums

	return workingSet, nil
}

// deriveGenesisChainID derives the ChainID a newly created chain output will carry once consumed, from the
// OutputID of the transaction output that creates it.
func deriveGenesisChainID(output iotago.ChainOutput, outputID iotago.OutputID) iotago.ChainID {
	switch o := output.(type) {
	case *iotago.AccountOutput:
		return o.ID(outputID)
	case *iotago.NFTOutput:
		return o.ID(outputID)
	case *iotago.DelegationOutput:
		return o.ID(outputID)
	case *iotago.FoundryOutput:
		return o.MustID()
	default:
		return nil
	}
}
