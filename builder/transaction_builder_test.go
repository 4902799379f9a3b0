package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iotago "github.com/iotaledger/iota.go/v4"
	"github.com/iotaledger/iota.go/v4/builder"
	"github.com/iotaledger/iota.go/v4/tpkg"
)

func randInputSigningData(output iotago.Output) *builder.InputSigningData {
	return &builder.InputSigningData{
		Output:       output,
		OutputID:     tpkg.RandOutputID(),
		CreationSlot: tpkg.RandSlotIndex(),
	}
}

func TestTransactionBuilderAmountRequirement(t *testing.T) {
	_, fundsAddr := tpkg.RandEd25519Identity()

	funding := &iotago.BasicOutput{
		Amount: 5_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: fundsAddr},
		},
	}

	target := &iotago.BasicOutput{
		Amount: 1_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: tpkg.RandEd25519Address()},
		},
	}

	tb := builder.NewTransactionBuilder(tpkg.TestProtoParams, 10).
		WithAvailableInputs(randInputSigningData(funding)).
		WithProvidedOutputs(target)

	prepared, err := tb.Build()
	require.NoError(t, err)

	assert.Len(t, prepared.InputsData, 1)
	assert.Equal(t, iotago.AddressEd25519, prepared.RemainderAddress.Type())

	var totalOut iotago.BaseToken
	for _, out := range prepared.Transaction.Essence.Outputs {
		totalOut += out.Deposit()
	}
	assert.Equal(t, funding.Amount, totalOut)
}

func TestTransactionBuilderInsufficientAmount(t *testing.T) {
	funding := &iotago.BasicOutput{
		Amount: 100,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: tpkg.RandEd25519Address()},
		},
	}

	target := &iotago.BasicOutput{
		Amount: 1_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: tpkg.RandEd25519Address()},
		},
	}

	tb := builder.NewTransactionBuilder(tpkg.TestProtoParams, 0).
		WithAvailableInputs(randInputSigningData(funding)).
		WithProvidedOutputs(target)

	_, err := tb.Build()
	assert.ErrorIs(t, err, builder.ErrInsufficientAmount)
}

func TestTransactionBuilderNoAvailableInputs(t *testing.T) {
	tb := builder.NewTransactionBuilder(tpkg.TestProtoParams, 0)

	_, err := tb.Build()
	assert.ErrorIs(t, err, builder.ErrNoAvailableInputsProvided)
}

func TestTransactionBuilderSenderRequirement(t *testing.T) {
	_, senderAddr := tpkg.RandEd25519Identity()

	senderFunds := &iotago.BasicOutput{
		Amount: 5_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: senderAddr},
		},
	}

	target := &iotago.BasicOutput{
		Amount: 1_000_000,
		Mana:   0,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: tpkg.RandEd25519Address()},
		},
		Features: iotago.BasicOutputFeatures{
			&iotago.SenderFeature{Address: senderAddr},
		},
	}

	tb := builder.NewTransactionBuilder(tpkg.TestProtoParams, 0).
		WithAvailableInputs(randInputSigningData(senderFunds)).
		WithProvidedOutputs(target)

	prepared, err := tb.Build()
	require.NoError(t, err)
	require.Len(t, prepared.InputsData, 1)
	assert.True(t, senderAddr.Equal(prepared.InputsData[0].Output.Ident()))
}

func TestTransactionBuilderRemainderAddress(t *testing.T) {
	_, fundsAddr := tpkg.RandEd25519Identity()
	explicit := tpkg.RandEd25519Address()

	funding := &iotago.BasicOutput{
		Amount: 5_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: fundsAddr},
		},
	}

	target := &iotago.BasicOutput{
		Amount: 1_000_000,
		Conditions: iotago.BasicOutputUnlockConditions{
			&iotago.AddressUnlockCondition{Address: tpkg.RandEd25519Address()},
		},
	}

	tb := builder.NewTransactionBuilder(tpkg.TestProtoParams, 0).
		WithAvailableInputs(randInputSigningData(funding)).
		WithProvidedOutputs(target).
		WithRemainderAddress(explicit)

	prepared, err := tb.Build()
	require.NoError(t, err)
	assert.True(t, explicit.Equal(prepared.RemainderAddress))
}
