package iotago

import (
	"context"
	"fmt"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
)

// ProtocolParameters defines the parameters of the protocol that are relevant for constructing and validating
// transactions: the network identity, the storage and work score structures, the mana engine configuration and
// the time layout. Concrete protocol versions implement this interface; V3ProtocolParameters is the only
// implementation currently defined.
type ProtocolParameters interface {
	Version() Version
	Bech32HRP() NetworkPrefix
	NetworkName() string
	NetworkID() NetworkID

	StorageScoreParameters() *StorageScoreParameters
	WorkScoreParameters() *WorkScoreParameters
	TokenSupply() BaseToken

	TimeProvider() *TimeProvider
	ManaDecayProvider() *ManaDecayProvider

	StakingUnbondingPeriod() EpochIndex
	EvictionAge() SlotIndex
	LivenessThreshold() SlotIndex
	EpochNearingThreshold() SlotIndex

	VersionSignaling() *VersionSignaling

	Bytes() ([]byte, error)
	Hash() (Identifier, error)
	Equals(other ProtocolParameters) bool

	String() string
}

// VersionSignaling defines the parameters used by signaling protocol version upgrades.
type VersionSignaling struct {
	WindowSize        uint8 `serix:"0,mapKey=windowSize"`
	WindowTargetRatio uint8 `serix:"1,mapKey=windowTargetRatio"`
	ActivationOffset  uint8 `serix:"2,mapKey=activationOffset"`
}

func (v VersionSignaling) Equals(other VersionSignaling) bool {
	return v.WindowSize == other.WindowSize &&
		v.WindowTargetRatio == other.WindowTargetRatio &&
		v.ActivationOffset == other.ActivationOffset
}

// V3ProtocolParameters is the version 3 implementation of ProtocolParameters.
type V3ProtocolParameters struct {
	v3ProtocolParameters `serix:"0"`
}

type v3ProtocolParameters struct {
	// Version defines the version of the protocol these protocol parameters are for.
	Version Version `serix:"0,mapKey=version"`

	// NetworkName defines the human friendly name of the network.
	NetworkName string `serix:"1,lengthPrefixType=uint8,mapKey=networkName"`
	// Bech32HRP defines the HRP prefix used for Bech32 addresses in the network.
	Bech32HRP NetworkPrefix `serix:"2,lengthPrefixType=uint8,mapKey=bech32Hrp"`

	// StorageScoreParameters defines the storage score parameters used by the given node/network.
	StorageScoreParameters StorageScoreParameters `serix:"3,mapKey=storageScoreParameters"`
	// WorkScoreParameters defines the work score structure used by the given node/network.
	WorkScoreParameters WorkScoreParameters `serix:"4,mapKey=workScoreParameters"`
	// TokenSupply defines the current token supply on the network.
	TokenSupply BaseToken `serix:"5,mapKey=tokenSupply"`

	// GenesisUnixTimestamp defines the genesis timestamp at which the slots start to count.
	GenesisUnixTimestamp int64 `serix:"6,mapKey=genesisUnixTimestamp"`
	// SlotDurationInSeconds defines the duration of each slot in seconds.
	SlotDurationInSeconds uint8 `serix:"7,mapKey=slotDurationInSeconds"`
	// SlotsPerEpochExponent is the number of slots in an epoch expressed as an exponent of 2.
	SlotsPerEpochExponent uint8 `serix:"8,mapKey=slotsPerEpochExponent"`

	// ManaGenerationRate is the amount of potential mana generated by 1 base token in 1 slot.
	ManaGenerationRate uint8 `serix:"9,mapKey=manaGenerationRate"`
	// ManaGenerationRateExponent is the scaling of ManaGenerationRate expressed as an exponent of 2.
	ManaGenerationRateExponent uint8 `serix:"10,mapKey=manaGenerationRateExponent"`
	// ManaDecayFactors is a lookup table of epoch index diff to mana decay factor (slice index 0 = 1 epoch).
	ManaDecayFactors []uint32 `serix:"11,lengthPrefixType=uint16,mapKey=manaDecayFactors"`
	// ManaDecayFactorsExponent is the scaling of ManaDecayFactors expressed as an exponent of 2.
	ManaDecayFactorsExponent uint8 `serix:"12,mapKey=manaDecayFactorsExponent"`
	// ManaDecayFactorEpochsSum is an integer approximation of the sum of decay over epochs.
	ManaDecayFactorEpochsSum uint32 `serix:"13,mapKey=manaDecayFactorEpochsSum"`
	// ManaDecayFactorEpochsSumExponent is the scaling of ManaDecayFactorEpochsSum expressed as an exponent of 2.
	ManaDecayFactorEpochsSumExponent uint8 `serix:"14,mapKey=manaDecayFactorEpochsSumExponent"`

	// StakingUnbondingPeriod defines the unbonding period in epochs before an account can stop staking.
	StakingUnbondingPeriod EpochIndex `serix:"15,mapKey=stakingUnbondingPeriod"`

	// EvictionAge defines the age in slots when a slot can be evicted by committing it, relative to the latest
	// committed slot.
	EvictionAge SlotIndex `serix:"16,mapKey=evictionAge"`
	// LivenessThreshold is used by tip-selection to determine whether a block is eligible.
	LivenessThreshold SlotIndex `serix:"17,mapKey=livenessThreshold"`
	// EpochNearingThreshold is used to detect the slot that should trigger committee selection for the next epoch.
	EpochNearingThreshold SlotIndex `serix:"18,mapKey=epochNearingThreshold"`

	VersionSignalingParameters VersionSignaling `serix:"19,mapKey=versionSignaling"`
}

func (p v3ProtocolParameters) Equals(other v3ProtocolParameters) bool {
	return p.Version == other.Version &&
		p.NetworkName == other.NetworkName &&
		p.Bech32HRP == other.Bech32HRP &&
		p.StorageScoreParameters.Equals(&other.StorageScoreParameters) &&
		p.WorkScoreParameters.Equals(other.WorkScoreParameters) &&
		p.TokenSupply == other.TokenSupply &&
		p.GenesisUnixTimestamp == other.GenesisUnixTimestamp &&
		p.SlotDurationInSeconds == other.SlotDurationInSeconds &&
		p.SlotsPerEpochExponent == other.SlotsPerEpochExponent &&
		p.ManaGenerationRate == other.ManaGenerationRate &&
		p.ManaGenerationRateExponent == other.ManaGenerationRateExponent &&
		lo.Equal(p.ManaDecayFactors, other.ManaDecayFactors) &&
		p.ManaDecayFactorsExponent == other.ManaDecayFactorsExponent &&
		p.ManaDecayFactorEpochsSum == other.ManaDecayFactorEpochsSum &&
		p.ManaDecayFactorEpochsSumExponent == other.ManaDecayFactorEpochsSumExponent &&
		p.StakingUnbondingPeriod == other.StakingUnbondingPeriod &&
		p.EvictionAge == other.EvictionAge &&
		p.LivenessThreshold == other.LivenessThreshold &&
		p.EpochNearingThreshold == other.EpochNearingThreshold &&
		p.VersionSignalingParameters.Equals(other.VersionSignalingParameters)
}

// NewV3ProtocolParameters creates a new V3ProtocolParameters applying the given options over a set of sane
// defaults for a private development network.
func NewV3ProtocolParameters(opts ...options.Option[V3ProtocolParameters]) *V3ProtocolParameters {
	return options.Apply(
		new(V3ProtocolParameters),
		append([]options.Option[V3ProtocolParameters]{
			WithNetworkOptions("testnet", PrefixTestnet),
			WithSupplyOptions(1813620509061365, 500, 1),
			WithWorkScoreOptions(1, 100, 500, 40, 20, 100, 100, 20, 20, 50, 9, 2),
			WithTimeProviderOptions(0, 10, 13),
			WithManaOptions(
				1,
				27,
				[]uint32{
					10_000_000, 9_000_000, 8_100_000, 7_290_000, 6_561_000, 5_904_900,
				},
				32,
				1_000_000,
				20,
			),
			WithLivenessOptions(10, 3, 4),
			WithStakingOptions(10),
			WithVersionSignalingOptions(7, 5, 7),
		},
			opts...,
		),
		func(p *V3ProtocolParameters) {
			p.v3ProtocolParameters.Version = apiV3Version
		},
	)
}

var _ ProtocolParameters = &V3ProtocolParameters{}

func (p *V3ProtocolParameters) Version() Version {
	return p.v3ProtocolParameters.Version
}

func (p *V3ProtocolParameters) Bech32HRP() NetworkPrefix {
	return p.v3ProtocolParameters.Bech32HRP
}

func (p *V3ProtocolParameters) NetworkName() string {
	return p.v3ProtocolParameters.NetworkName
}

func (p *V3ProtocolParameters) StorageScoreParameters() *StorageScoreParameters {
	return &p.v3ProtocolParameters.StorageScoreParameters
}

func (p *V3ProtocolParameters) WorkScoreParameters() *WorkScoreParameters {
	return &p.v3ProtocolParameters.WorkScoreParameters
}

func (p *V3ProtocolParameters) TokenSupply() BaseToken {
	return p.v3ProtocolParameters.TokenSupply
}

func (p *V3ProtocolParameters) NetworkID() NetworkID {
	return NetworkIDFromString(p.v3ProtocolParameters.NetworkName)
}

func (p *V3ProtocolParameters) TimeProvider() *TimeProvider {
	return NewTimeProvider(p.v3ProtocolParameters.GenesisUnixTimestamp, int64(p.v3ProtocolParameters.SlotDurationInSeconds), p.v3ProtocolParameters.SlotsPerEpochExponent)
}

func (p *V3ProtocolParameters) StakingUnbondingPeriod() EpochIndex {
	return p.v3ProtocolParameters.StakingUnbondingPeriod
}

func (p *V3ProtocolParameters) LivenessThreshold() SlotIndex {
	return p.v3ProtocolParameters.LivenessThreshold
}

func (p *V3ProtocolParameters) EvictionAge() SlotIndex {
	return p.v3ProtocolParameters.EvictionAge
}

func (p *V3ProtocolParameters) EpochNearingThreshold() SlotIndex {
	return p.v3ProtocolParameters.EpochNearingThreshold
}

func (p *V3ProtocolParameters) VersionSignaling() *VersionSignaling {
	return &p.v3ProtocolParameters.VersionSignalingParameters
}

func (p *V3ProtocolParameters) Bytes() ([]byte, error) {
	return commonSerixAPI().Encode(context.TODO(), p)
}

func (p *V3ProtocolParameters) Hash() (Identifier, error) {
	bytes, err := p.Bytes()
	if err != nil {
		return Identifier{}, err
	}

	return IdentifierFromData(bytes), nil
}

func (p *V3ProtocolParameters) String() string {
	return fmt.Sprintf("ProtocolParameters: {\n\tVersion: %d\n\tNetwork Name: %s\n\tBech32 HRP Prefix: %s\n\tStorage Score Parameters: %v\n\tWorkScore Parameters: %v\n\tToken Supply: %d\n\tGenesis Unix Timestamp: %d\n\tSlot Duration in Seconds: %d\n\tSlots per Epoch Exponent: %d\n\tMana Generation Rate: %d\n\tMana Generation Rate Exponent: %d\n\tMana Decay Factors: %v\n\tMana Decay Factors Exponent: %d\n\tMana Decay Factor Epochs Sum: %d\n\tMana Decay Factor Epochs Sum Exponent: %d\n\tStaking Unbonding Period: %d\n\tEviction Age: %d\n\tLiveness Threshold: %d\n}",
		p.v3ProtocolParameters.Version, p.v3ProtocolParameters.NetworkName, p.v3ProtocolParameters.Bech32HRP, p.v3ProtocolParameters.StorageScoreParameters, p.v3ProtocolParameters.WorkScoreParameters, p.v3ProtocolParameters.TokenSupply, p.v3ProtocolParameters.GenesisUnixTimestamp, p.v3ProtocolParameters.SlotDurationInSeconds, p.v3ProtocolParameters.SlotsPerEpochExponent, p.v3ProtocolParameters.ManaGenerationRate, p.v3ProtocolParameters.ManaGenerationRateExponent, p.v3ProtocolParameters.ManaDecayFactors, p.v3ProtocolParameters.ManaDecayFactorsExponent, p.v3ProtocolParameters.ManaDecayFactorEpochsSum, p.v3ProtocolParameters.ManaDecayFactorEpochsSumExponent, p.v3ProtocolParameters.StakingUnbondingPeriod, p.v3ProtocolParameters.EvictionAge, p.v3ProtocolParameters.LivenessThreshold)
}

func (p *V3ProtocolParameters) ManaDecayProvider() *ManaDecayProvider {
	return NewManaDecayProvider(
		p.TimeProvider(),
		p.v3ProtocolParameters.ManaGenerationRate,
		p.v3ProtocolParameters.ManaGenerationRateExponent,
		p.v3ProtocolParameters.ManaDecayFactors,
		p.v3ProtocolParameters.ManaDecayFactorsExponent,
		p.v3ProtocolParameters.ManaDecayFactorEpochsSum,
		p.v3ProtocolParameters.ManaDecayFactorEpochsSumExponent,
	)
}

func (p *V3ProtocolParameters) Equals(other ProtocolParameters) bool {
	otherV3, ok := other.(*V3ProtocolParameters)
	if !ok {
		return false
	}

	return p.v3ProtocolParameters.Equals(otherV3.v3ProtocolParameters)
}

func WithNetworkOptions(networkName string, bech32HRP NetworkPrefix) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.NetworkName = networkName
		p.v3ProtocolParameters.Bech32HRP = bech32HRP
	}
}

func WithSupplyOptions(totalSupply BaseToken, storageCost BaseToken, factorData StorageScoreFactor) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.TokenSupply = totalSupply
		p.v3ProtocolParameters.StorageScoreParameters = StorageScoreParameters{
			SchemaVersion:               0,
			StorageCost:                 storageCost,
			FactorData:                  factorData,
			OffsetOutputOverhead:        10,
			OffsetEd25519BlockIssuerKey: 100,
			OffsetStakingFeature:        100,
			OffsetDelegation:            100,
		}
	}
}

func WithWorkScoreOptions(dataKibibyte, block, missingParent, input, contextInput, output, nativeToken, staking, blockIssuer, allotment, signatureEd25519 WorkScore, minStrongParentsThreshold byte) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.WorkScoreParameters = WorkScoreParameters{
			DataKibibyte:              dataKibibyte,
			Block:                     block,
			MissingParent:             missingParent,
			Input:                     input,
			ContextInput:              contextInput,
			Output:                    output,
			NativeToken:               nativeToken,
			Staking:                   staking,
			BlockIssuer:               blockIssuer,
			Allotment:                 allotment,
			SignatureEd25519:          signatureEd25519,
			MinStrongParentsThreshold: minStrongParentsThreshold,
		}
	}
}

func WithTimeProviderOptions(genesisTimestamp int64, slotDuration uint8, slotsPerEpochExponent uint8) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.GenesisUnixTimestamp = genesisTimestamp
		p.v3ProtocolParameters.SlotDurationInSeconds = slotDuration
		p.v3ProtocolParameters.SlotsPerEpochExponent = slotsPerEpochExponent
	}
}

func WithManaOptions(manaGenerationRate uint8, manaGenerationRateExponent uint8, manaDecayFactors []uint32, manaDecayFactorsExponent uint8, manaDecayFactorEpochsSum uint32, manaDecayFactorEpochsSumExponent uint8) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.ManaGenerationRate = manaGenerationRate
		p.v3ProtocolParameters.ManaGenerationRateExponent = manaGenerationRateExponent
		p.v3ProtocolParameters.ManaDecayFactors = manaDecayFactors
		p.v3ProtocolParameters.ManaDecayFactorsExponent = manaDecayFactorsExponent
		p.v3ProtocolParameters.ManaDecayFactorEpochsSum = manaDecayFactorEpochsSum
		p.v3ProtocolParameters.ManaDecayFactorEpochsSumExponent = manaDecayFactorEpochsSumExponent
	}
}

func WithLivenessOptions(evictionAge SlotIndex, livenessThreshold SlotIndex, epochNearingThreshold SlotIndex) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.EvictionAge = evictionAge
		p.v3ProtocolParameters.LivenessThreshold = livenessThreshold
		p.v3ProtocolParameters.EpochNearingThreshold = epochNearingThreshold
	}
}

func WithStakingOptions(unbondingPeriod EpochIndex) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.StakingUnbondingPeriod = unbondingPeriod
	}
}

func WithVersionSignalingOptions(windowSize uint8, windowTargetRatio uint8, activationOffset uint8) options.Option[V3ProtocolParameters] {
	return func(p *V3ProtocolParameters) {
		p.v3ProtocolParameters.VersionSignalingParameters = VersionSignaling{
			WindowSize:        windowSize,
			WindowTargetRatio: windowTargetRatio,
			ActivationOffset:  activationOffset,
		}
	}
}
