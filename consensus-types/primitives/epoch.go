package primitives

// Epoch represents a single epoch.
type Epoch uint64

// StartSlot returns the first slot of the epoch for the given epoch length.
func (e Epoch) StartSlot(slotsPerEpoch uint64) Slot {
	return Slot(uint64(e) * slotsPerEpoch)
}
