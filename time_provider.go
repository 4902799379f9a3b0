package iotago

import "time"

// SlotIndex is the index of a slot.
type SlotIndex uint32

// EpochIndex is the index of an epoch.
type EpochIndex uint32

// TimeProvider defines the slot/epoch time layout of a network: the genesis
// timestamp, the duration of a slot and the amount of slots making up an
// epoch (expressed as an exponent of two, matching the protocol parameters
// wire format).
type TimeProvider struct {
	genesisUnixTime        int64
	slotDurationSeconds    int64
	slotsPerEpochExponent  uint8
}

// NewTimeProvider creates a new TimeProvider.
func NewTimeProvider(genesisUnixTime int64, slotDurationSeconds int64, slotsPerEpochExponent uint8) *TimeProvider {
	return &TimeProvider{
		genesisUnixTime:       genesisUnixTime,
		slotDurationSeconds:   slotDurationSeconds,
		slotsPerEpochExponent: slotsPerEpochExponent,
	}
}

// GenesisUnixTime returns the genesis unix time in seconds.
func (t *TimeProvider) GenesisUnixTime() int64 {
	return t.genesisUnixTime
}

// SlotDurationSeconds returns the duration of a slot in seconds.
func (t *TimeProvider) SlotDurationSeconds() int64 {
	return t.slotDurationSeconds
}

// SlotsPerEpochExponent returns the exponent of two defining the amount of slots per epoch.
func (t *TimeProvider) SlotsPerEpochExponent() uint8 {
	return t.slotsPerEpochExponent
}

// SlotsPerEpoch returns the amount of slots contained in a single epoch.
func (t *TimeProvider) SlotsPerEpoch() SlotIndex {
	return 1 << t.slotsPerEpochExponent
}

// SlotFromTime returns the SlotIndex corresponding to the given time.
func (t *TimeProvider) SlotFromTime(ti time.Time) SlotIndex {
	elapsed := ti.Unix() - t.genesisUnixTime
	if elapsed < 0 {
		return 0
	}

	return SlotIndex(elapsed/t.slotDurationSeconds) + 1
}

// SlotStartTime returns the start time of the given slot.
func (t *TimeProvider) SlotStartTime(slot SlotIndex) time.Time {
	if slot == 0 {
		return time.Unix(t.genesisUnixTime, 0)
	}

	return time.Unix(t.genesisUnixTime+int64(slot-1)*t.slotDurationSeconds, 0)
}

// SlotEndTime returns the end time (exclusive) of the given slot.
func (t *TimeProvider) SlotEndTime(slot SlotIndex) time.Time {
	return t.SlotStartTime(slot + 1)
}

// EpochFromSlot returns the EpochIndex the given slot belongs to.
func (t *TimeProvider) EpochFromSlot(slot SlotIndex) EpochIndex {
	return EpochIndex(slot >> t.slotsPerEpochExponent)
}

// EpochStart returns the first slot of the given epoch.
func (t *TimeProvider) EpochStart(epoch EpochIndex) SlotIndex {
	return SlotIndex(epoch) << t.slotsPerEpochExponent
}

// EpochEnd returns the last slot of the given epoch.
func (t *TimeProvider) EpochEnd(epoch EpochIndex) SlotIndex {
	return t.EpochStart(epoch+1) - 1
}
