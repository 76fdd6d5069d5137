package registry

import (
	"fmt"

	"cardtable/internal/model"
)

// SlotRegistry owns the set of live slots and the single invariant that
// matters about them: a card identity appears in at most one slot's
// sequence, and that slot matches the card's back-reference.
type SlotRegistry struct {
	ids    *Allocator
	cards  *CardRegistry
	slots  map[model.SlotID]*model.CardSlot
	notify *listeners
}

// MoveOptions controls MoveCard. Restore suppresses the card_moved
// notification, so that rebuilding slots from a save does not re-trigger
// first-time-placement effects in listeners.
type MoveOptions struct {
	Restore bool
}

// CreateSlot creates an empty slot at the given placement.
func (s *SlotRegistry) CreateSlot(pos model.Point) *model.CardSlot {
	slot := model.NewCardSlot(s.ids.NextSlotID(), pos)
	s.slots[slot.ID] = slot
	s.notify.emit(Event{Type: EventSlotCreated, Slot: slot})
	return slot
}

// RestoreSlot materializes a slot with an explicit persisted identity,
// used only when reconstructing from a save.
func (s *SlotRegistry) RestoreSlot(id model.SlotID, pos model.Point) (*model.CardSlot, error) {
	if id == 0 {
		return nil, fmt.Errorf("restore slot: %w: id 0", ErrUnknownSlot)
	}
	if _, live := s.slots[id]; live {
		return nil, fmt.Errorf("restore slot %d: %w", id, ErrDuplicateSlot)
	}
	s.ids.ReserveSlotID(id)
	slot := model.NewCardSlot(id, pos)
	s.slots[id] = slot
	s.notify.emit(Event{Type: EventSlotCreated, Slot: slot})
	return slot, nil
}

// DeleteSlot evicts any contained cards through the same removal path as
// RemoveCard (they become slotless, never silently dropped), then
// unregisters the slot and emits slot_deleted.
func (s *SlotRegistry) DeleteSlot(id model.SlotID) error {
	slot, ok := s.slots[id]
	if !ok {
		return fmt.Errorf("delete slot %d: %w", id, ErrUnknownSlot)
	}

	evicted := make([]model.CardID, len(slot.Cards))
	copy(evicted, slot.Cards)
	for _, cardID := range evicted {
		if err := s.RemoveCard(cardID); err != nil {
			return err
		}
	}

	delete(s.slots, id)
	s.notify.emit(Event{Type: EventSlotDeleted, Slot: slot})
	return nil
}

// MoveCard places a card into a slot. If the card is recorded anywhere
// else it is detached from there first, so it is never in two slots at
// once, and its back-reference always matches the slot that lists it.
func (s *SlotRegistry) MoveCard(cardID model.CardID, to model.SlotID, opts MoveOptions) error {
	card, ok := s.cards.Card(cardID)
	if !ok {
		return fmt.Errorf("move card %d: %w", cardID, ErrUnknownCard)
	}
	target, ok := s.slots[to]
	if !ok {
		return fmt.Errorf("move card %d to slot %d: %w", cardID, to, ErrUnknownSlot)
	}

	if card.InSlot() {
		if card.Slot == to {
			return nil
		}
		s.detach(card)
	}

	target.Add(cardID)
	card.Slot = to

	if !opts.Restore {
		s.notify.emit(Event{Type: EventCardMoved, Card: card, Slot: target})
	}
	return nil
}

// RemoveCard detaches a card from whatever slot holds it; the card becomes
// slotless. A card that is already slotless is left alone.
func (s *SlotRegistry) RemoveCard(cardID model.CardID) error {
	card, ok := s.cards.Card(cardID)
	if !ok {
		return fmt.Errorf("remove card %d: %w", cardID, ErrUnknownCard)
	}
	if card.InSlot() {
		s.detach(card)
	}
	return nil
}

// detach drops the card from the slot its back-reference names. If the
// back-reference is stale it falls back to scanning, so the registry heals
// rather than double-records.
func (s *SlotRegistry) detach(card *model.Card) {
	if slot, ok := s.slots[card.Slot]; ok && slot.Remove(card.ID) {
		card.Slot = 0
		return
	}
	for _, slot := range s.slots {
		if slot.Remove(card.ID) {
			break
		}
	}
	card.Slot = 0
}

// Slot returns the live slot for an identity.
func (s *SlotRegistry) Slot(id model.SlotID) (*model.CardSlot, bool) {
	slot, ok := s.slots[id]
	return slot, ok
}

// Slots returns all live slots.
func (s *SlotRegistry) Slots() []*model.CardSlot {
	out := make([]*model.CardSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		out = append(out, slot)
	}
	return out
}

// Count returns the number of live slots.
func (s *SlotRegistry) Count() int {
	return len(s.slots)
}
