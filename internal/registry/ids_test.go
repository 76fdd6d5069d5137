package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardtable/internal/model"
)

func TestAllocator_MonotonicIndependentSequences(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, model.CardID(1), a.NextCardID())
	assert.Equal(t, model.CardID(2), a.NextCardID())

	// Slot sequence does not share values with the card sequence.
	assert.Equal(t, model.SlotID(1), a.NextSlotID())
	assert.Equal(t, model.CardID(3), a.NextCardID())
	assert.Equal(t, model.SlotID(2), a.NextSlotID())
}

func TestAllocator_CheckpointRestore(t *testing.T) {
	a := NewAllocator()
	a.NextCardID()
	a.NextCardID()
	a.NextSlotID()

	nextCard, nextSlot := a.Checkpoint()
	assert.Equal(t, model.CardID(3), nextCard)
	assert.Equal(t, model.SlotID(2), nextSlot)

	b := NewAllocator()
	b.Restore(nextCard, nextSlot)
	assert.Equal(t, model.CardID(3), b.NextCardID())
	assert.Equal(t, model.SlotID(2), b.NextSlotID())
}

func TestAllocator_RestoreNeverRewinds(t *testing.T) {
	a := NewAllocator()
	for i := 0; i < 10; i++ {
		a.NextCardID()
	}

	// Loading an older checkpoint must not re-issue identities already
	// handed out in this process.
	a.Restore(3, 1)
	assert.Equal(t, model.CardID(11), a.NextCardID())
}

func TestAllocator_ReserveRaisesFloor(t *testing.T) {
	a := NewAllocator()
	a.ReserveCardID(41)
	assert.Equal(t, model.CardID(42), a.NextCardID())

	// Reserving below the floor changes nothing.
	a.ReserveCardID(5)
	assert.Equal(t, model.CardID(43), a.NextCardID())

	a.ReserveSlotID(9)
	assert.Equal(t, model.SlotID(10), a.NextSlotID())
}
