package registry

import "cardtable/internal/model"

// Allocator issues card and slot identities from two independent,
// monotonically increasing sequences. No two live entities of the same
// identity kind ever share a value, and values are not reused after
// deletion. Wrap-around at the uint64 maximum is a documented non-goal.
type Allocator struct {
	nextCard uint64
	nextSlot uint64
}

// NewAllocator starts both sequences at 1; 0 is reserved as "none".
func NewAllocator() *Allocator {
	return &Allocator{nextCard: 1, nextSlot: 1}
}

// NextCardID returns a card identity strictly greater than every card
// identity issued before it.
func (a *Allocator) NextCardID() model.CardID {
	id := a.nextCard
	a.nextCard++
	return model.CardID(id)
}

// NextSlotID returns a slot identity strictly greater than every slot
// identity issued before it.
func (a *Allocator) NextSlotID() model.SlotID {
	id := a.nextSlot
	a.nextSlot++
	return model.SlotID(id)
}

// Checkpoint returns the next values of both sequences, for persisting.
func (a *Allocator) Checkpoint() (model.CardID, model.SlotID) {
	return model.CardID(a.nextCard), model.SlotID(a.nextSlot)
}

// Restore sets both sequences from a persisted checkpoint so that
// identities issued after a reload cannot collide with ones issued before
// the save. Sequences only ever move forward: restoring a checkpoint older
// than the current position keeps the current position, so an identity is
// never re-issued within one process lifetime.
func (a *Allocator) Restore(nextCard model.CardID, nextSlot model.SlotID) {
	if uint64(nextCard) > a.nextCard {
		a.nextCard = uint64(nextCard)
	}
	if uint64(nextSlot) > a.nextSlot {
		a.nextSlot = uint64(nextSlot)
	}
}

// ReserveCardID raises the card sequence floor past an explicitly restored
// identity. Guards against saves whose checkpoint is older than their
// records.
func (a *Allocator) ReserveCardID(id model.CardID) {
	if uint64(id) >= a.nextCard {
		a.nextCard = uint64(id) + 1
	}
}

// ReserveSlotID raises the slot sequence floor past an explicitly restored
// identity.
func (a *Allocator) ReserveSlotID(id model.SlotID) {
	if uint64(id) >= a.nextSlot {
		a.nextSlot = uint64(id) + 1
	}
}
