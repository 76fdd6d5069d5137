// Package registry owns the live card and slot entities of one table:
// identity allocation, kind buckets, per-kind attribute stores, slot
// membership, and lifecycle notifications.
//
// All mutation happens synchronously on the game's update loop. The
// registries are not safe for concurrent use and take no locks; callers
// own the single-threaded discipline, and membership is mutated only
// through the methods here.
package registry

import (
	"fmt"

	"cardtable/internal/catalog"
	"cardtable/internal/model"
)

// CardRegistry owns the set of live cards, grouped by kind, and their
// attribute records.
type CardRegistry struct {
	ids     *Allocator
	catalog *catalog.Catalog
	cards   map[model.CardID]*model.Card
	byKind  map[model.Kind]map[model.CardID]*model.Card
	attrs   *attrStores
	slots   *SlotRegistry
	notify  *listeners
}

// CreateCard creates a fresh card from a catalog description: allocates an
// identity, clones the description's default attributes (event cards have
// none), registers the card under its kind bucket, and emits card_created.
// The card starts slotless. Returns ErrInvalidDescription if the
// description is not in the catalog.
func (r *CardRegistry) CreateCard(desc model.Description) (*model.Card, error) {
	return r.create(r.ids.NextCardID(), desc, nil)
}

// RestoreCard materializes a card with an explicit persisted identity,
// used only when reconstructing from a save. The allocator is not
// consulted for the identity, only floored past it. When attrs is non-nil
// and matches the description's kind it is cloned; otherwise the catalog
// default is used.
func (r *CardRegistry) RestoreCard(id model.CardID, desc model.Description, attrs model.Attributes) (*model.Card, error) {
	if id == 0 {
		return nil, fmt.Errorf("restore card: %w: id 0", ErrUnknownCard)
	}
	if _, live := r.cards[id]; live {
		return nil, fmt.Errorf("restore card %d: %w", id, ErrDuplicateCard)
	}
	r.ids.ReserveCardID(id)
	return r.create(id, desc, attrs)
}

func (r *CardRegistry) create(id model.CardID, desc model.Description, attrs model.Attributes) (*model.Card, error) {
	entry, ok := r.catalog.Lookup(desc)
	if !ok {
		return nil, fmt.Errorf("create card %q: %w", desc, ErrInvalidDescription)
	}

	if attrs == nil || attrs.AttrKind() != entry.Kind {
		def, err := r.catalog.DefaultAttributes(desc)
		if err != nil {
			return nil, fmt.Errorf("create card %q: %w", desc, ErrInvalidDescription)
		}
		attrs = def
	}

	card := model.NewCard(id, entry.Kind, desc)
	if err := r.attrs.attach(card.ID, attrs); err != nil {
		return nil, err
	}

	r.cards[card.ID] = card
	bucket := r.byKind[card.Kind]
	if bucket == nil {
		bucket = make(map[model.CardID]*model.Card)
		r.byKind[card.Kind] = bucket
	}
	bucket[card.ID] = card

	r.notify.emit(Event{Type: EventCardCreated, Card: card})
	return card, nil
}

// DeleteCard removes a live card: detaches it from its slot if any,
// removes it from its kind bucket and attribute store, and emits
// card_deleted. The identity is never reused. Returns ErrUnknownCard for
// an identity that is not registered.
func (r *CardRegistry) DeleteCard(id model.CardID) error {
	card, ok := r.cards[id]
	if !ok {
		return fmt.Errorf("delete card %d: %w", id, ErrUnknownCard)
	}

	if card.InSlot() {
		if err := r.slots.RemoveCard(id); err != nil {
			return err
		}
	}

	delete(r.cards, id)
	delete(r.byKind[card.Kind], id)
	r.attrs.detach(card.Kind, id)

	r.notify.emit(Event{Type: EventCardDeleted, Card: card})
	return nil
}

// DeleteAllCards deletes every live card. It iterates over a snapshot of
// the live identity set, so listener-visible deletions cannot disturb the
// iteration.
func (r *CardRegistry) DeleteAllCards() {
	ids := make([]model.CardID, 0, len(r.cards))
	for id := range r.cards {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if _, still := r.cards[id]; !still {
			continue
		}
		// Snapshot guarantees the id was live when we started; a
		// failure here would mean the registry lied about it.
		_ = r.DeleteCard(id)
	}
}

// Card returns the live card for an identity.
func (r *CardRegistry) Card(id model.CardID) (*model.Card, bool) {
	c, ok := r.cards[id]
	return c, ok
}

// Cards returns all live cards.
func (r *CardRegistry) Cards() []*model.Card {
	out := make([]*model.Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, c)
	}
	return out
}

// CardsByKind returns all live cards of one kind.
func (r *CardRegistry) CardsByKind(kind model.Kind) []*model.Card {
	out := make([]*model.Card, 0, len(r.byKind[kind]))
	for _, c := range r.byKind[kind] {
		out = append(out, c)
	}
	return out
}

// Count returns the number of live cards.
func (r *CardRegistry) Count() int {
	return len(r.cards)
}

// Attributes returns the attribute record for a card, dispatched through
// the store of the card's kind. Absent is not an error: unknown cards and
// event cards both return false.
func (r *CardRegistry) Attributes(id model.CardID) (model.Attributes, bool) {
	card, ok := r.cards[id]
	if !ok {
		return nil, false
	}
	return r.attrs.get(card.Kind, id)
}

// CreatureAttributes returns the creature record for a card, or false if
// the card has none of that type.
func (r *CardRegistry) CreatureAttributes(id model.CardID) (*model.CreatureAttributes, bool) {
	rec, ok := r.attrs.creature[id]
	return rec, ok
}

// ResourceAttributes returns the resource record for a card, or false if
// the card has none of that type.
func (r *CardRegistry) ResourceAttributes(id model.CardID) (*model.ResourceAttributes, bool) {
	rec, ok := r.attrs.resource[id]
	return rec, ok
}

// EquipmentAttributes returns the equipment record for a card, or false if
// the card has none of that type.
func (r *CardRegistry) EquipmentAttributes(id model.CardID) (*model.EquipmentAttributes, bool) {
	rec, ok := r.attrs.equipment[id]
	return rec, ok
}
