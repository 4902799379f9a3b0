package iotago

import (
	"github.com/iotaledger/hive.go/core/safemath"
	"github.com/iotaledger/hive.go/ierrors"
)

// Mana is the type used for the protocol's mana token, tracked on output creation and decayed over time.
type Mana uint64

// ManaDecayProvider calculates the decay of mana and the generation of potential mana based on a fixed-point
// lookup table of decay factors, mirroring the closed-form decay/generation functions of the reference ledger.
//
// The decay factors are expressed as fixed-point numbers: decay_factors[i] approximates exp(-beta*(i+1)) scaled
// by 2^decayFactorsExponent, so that applying decay for a delta of epochs amounts to repeated fixed-point
// multiplication with lookup-table entries.
type ManaDecayProvider struct {
	timeProvider *TimeProvider

	generationRate         uint8
	generationRateExponent uint8

	decayFactors         []uint32
	decayFactorsExponent uint8

	decayFactorEpochsSum         uint32
	decayFactorEpochsSumExponent uint8
}

// NewManaDecayProvider creates a new ManaDecayProvider.
func NewManaDecayProvider(
	timeProvider *TimeProvider,
	generationRate uint8,
	generationRateExponent uint8,
	decayFactors []uint32,
	decayFactorsExponent uint8,
	decayFactorEpochsSum uint32,
	decayFactorEpochsSumExponent uint8,
) *ManaDecayProvider {
	return &ManaDecayProvider{
		timeProvider:                 timeProvider,
		generationRate:               generationRate,
		generationRateExponent:       generationRateExponent,
		decayFactors:                 decayFactors,
		decayFactorsExponent:         decayFactorsExponent,
		decayFactorEpochsSum:         decayFactorEpochsSum,
		decayFactorEpochsSumExponent: decayFactorEpochsSumExponent,
	}
}

// fixedPointMultiply computes (value * multiplicand) >> shift using 128 bit intermediate precision, matching the
// reference ledger's fixed_point_multiply.
func fixedPointMultiply(value uint64, multiplicand uint64, shift uint8) uint64 {
	hi, lo := bitsMul64(value, multiplicand)

	return bitsShiftRight128(hi, lo, shift)
}

func bitsMul64(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1

	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	hi = aHi*bHi + w2 + k
	lo = t<<32 | w0

	return hi, lo
}

func bitsShiftRight128(hi, lo uint64, shift uint8) uint64 {
	if shift == 0 {
		return lo
	}
	if shift >= 64 {
		return hi >> (shift - 64)
	}

	return (lo >> shift) | (hi << (64 - shift))
}

// decay applies the lookup-table decay factors to mana across epochDelta epochs.
func (p *ManaDecayProvider) decay(value Mana, epochDelta EpochIndex) Mana {
	if value == 0 || epochDelta == 0 || len(p.decayFactors) == 0 {
		return value
	}

	result := uint64(value)
	remaining := uint64(epochDelta)
	tableLen := uint64(len(p.decayFactors))

	for remaining > 0 {
		chunk := remaining
		if chunk > tableLen {
			chunk = tableLen
		}
		factor := uint64(p.decayFactors[chunk-1])
		result = fixedPointMultiply(result, factor, p.decayFactorsExponent)
		remaining -= chunk
	}

	return Mana(result)
}

// generateMana computes the potential mana generated by amount base tokens held over slotDelta slots.
func (p *ManaDecayProvider) generateMana(amount BaseToken, slotDelta SlotIndex) Mana {
	return Mana(fixedPointMultiply(uint64(amount), uint64(slotDelta)*uint64(p.generationRate), p.generationRateExponent))
}

// ManaWithDecay applies decay to an existing mana value held since slotCreated up to slotTarget.
func (p *ManaDecayProvider) ManaWithDecay(value Mana, slotCreated SlotIndex, slotTarget SlotIndex) (Mana, error) {
	if slotTarget < slotCreated {
		return 0, ierrors.Errorf("slotTarget %d is before slotCreated %d", slotTarget, slotCreated)
	}

	epochCreated := p.timeProvider.EpochFromSlot(slotCreated)
	epochTarget := p.timeProvider.EpochFromSlot(slotTarget)

	return p.decay(value, epochTarget-epochCreated), nil
}

// PotentialMana computes the potential mana generated by amount base tokens deposited at slotCreated and evaluated
// at slotTarget, implementing the three-case closed form (same epoch, adjacent epoch, multi-epoch) of the
// reference ledger.
func (p *ManaDecayProvider) PotentialMana(amount BaseToken, slotCreated SlotIndex, slotTarget SlotIndex) (Mana, error) {
	if slotTarget < slotCreated {
		return 0, ierrors.Errorf("slotTarget %d is before slotCreated %d", slotTarget, slotCreated)
	}

	epochCreated := p.timeProvider.EpochFromSlot(slotCreated)
	epochTarget := p.timeProvider.EpochFromSlot(slotTarget)

	switch {
	case epochCreated == epochTarget:
		return p.generateMana(amount, slotTarget-slotCreated), nil

	case epochTarget == epochCreated+1:
		slotsBeforeNextEpoch := p.timeProvider.EpochStart(epochCreated+1) - slotCreated
		slotsSinceEpochStart := slotTarget - p.timeProvider.EpochStart(epochTarget)

		manaDecayed := p.decay(p.generateMana(amount, slotsBeforeNextEpoch), 1)
		manaGenerated := p.generateMana(amount, slotsSinceEpochStart)

		sum, err := safemath.SafeAdd(uint64(manaDecayed), uint64(manaGenerated))
		if err != nil {
			return 0, ierrors.Wrap(err, "potential mana overflow")
		}

		return Mana(sum), nil

	default:
		shift := int(p.decayFactorEpochsSumExponent) + int(p.generationRateExponent) - int(p.timeProvider.SlotsPerEpochExponent())
		if shift < 0 {
			return 0, ierrors.New("invalid mana decay provider exponent configuration")
		}

		c := fixedPointMultiply(uint64(amount), uint64(p.decayFactorEpochsSum)*uint64(p.generationRate), uint8(shift))

		epochDelta := epochTarget - epochCreated
		slotsBeforeNextEpoch := p.timeProvider.EpochStart(epochCreated+1) - slotCreated
		slotsSinceEpochStart := slotTarget - p.timeProvider.EpochStart(epochTarget)

		potentialManaN := p.decay(p.generateMana(amount, slotsBeforeNextEpoch), epochDelta)
		potentialManaN1 := p.decay(Mana(c), epochDelta-1)
		potentialMana0 := c + uint64(p.generateMana(amount, slotsSinceEpochStart)) - (c >> p.decayFactorsExponent)

		result := potentialMana0 - uint64(potentialManaN1) + uint64(potentialManaN)

		return Mana(result), nil
	}
}

// StoredManaWithDecay is a convenience wrapper around ManaWithDecay for callers that have already validated the
// slot ordering and want to fold an invalid range into zero mana rather than propagate an error.
func (p *ManaDecayProvider) StoredManaWithDecay(value Mana, slotCreated SlotIndex, slotTarget SlotIndex) Mana {
	decayed, err := p.ManaWithDecay(value, slotCreated, slotTarget)
	if err != nil {
		return 0
	}

	return decayed
}

// PotentialManaWithDecay is a convenience wrapper around PotentialMana for callers that have already validated the
// slot ordering and want to fold an invalid range into zero mana rather than propagate an error.
func (p *ManaDecayProvider) PotentialManaWithDecay(amount BaseToken, slotCreated SlotIndex, slotTarget SlotIndex) Mana {
	generated, err := p.PotentialMana(amount, slotCreated, slotTarget)
	if err != nil {
		return 0
	}

	return generated
}

// RewardsWithDecay applies decay to a staking/delegation reward computed at rewardEpoch and claimed at claimedEpoch.
func (p *ManaDecayProvider) RewardsWithDecay(reward Mana, rewardEpoch EpochIndex, claimedEpoch EpochIndex) (Mana, error) {
	if claimedEpoch < rewardEpoch {
		return 0, ierrors.Errorf("claimedEpoch %d is before rewardEpoch %d", claimedEpoch, rewardEpoch)
	}

	return p.decay(reward, claimedEpoch-rewardEpoch), nil
}
