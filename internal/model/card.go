package model

// CardID is a unique identifier for a card instance. IDs are issued from a
// monotonically increasing sequence and are never reused within a session;
// 0 is the zero value and never identifies a live card.
type CardID uint64

// SlotID is a unique identifier for a card slot. Slots draw from their own
// sequence, independent of card IDs; 0 means "no slot".
type SlotID uint64

// Kind represents the type of card (e.g. "creature", "resource").
type Kind string

const (
	KindCreature  Kind = "creature"
	KindResource  Kind = "resource"
	KindEquipment Kind = "equipment"
	KindEvent     Kind = "event"
)

// Valid reports whether k is one of the closed set of card kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCreature, KindResource, KindEquipment, KindEvent:
		return true
	}
	return false
}

// Description is a stable key into the catalog (e.g. "creature.wolf",
// "resource.wood"). It identifies the static descriptor a card was created
// from, not the card instance itself.
type Description string

// Card is an instance of a card on the table.
type Card struct {
	ID   CardID      `json:"id"`
	Kind Kind        `json:"kind"`
	Desc Description `json:"desc"`

	// Slot is the slot currently containing this card, 0 if slotless.
	// Maintained by the slot registry; a card is in at most one slot.
	Slot SlotID `json:"slot,omitempty"`
}

// NewCard creates a card instance with the given identity and descriptor.
// The card starts slotless.
func NewCard(id CardID, kind Kind, desc Description) *Card {
	return &Card{
		ID:   id,
		Kind: kind,
		Desc: desc,
	}
}

// InSlot reports whether the card is currently placed in a slot.
func (c *Card) InSlot() bool {
	return c.Slot != 0
}
