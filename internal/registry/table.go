package registry

import (
	"cardtable/internal/catalog"
	"cardtable/internal/model"
)

// Table is the explicit context object tying one game's registries
// together: a shared identity allocator, the card and slot registries, and
// one ordered listener list. Construct it once and pass it by reference;
// there is no process-wide instance.
type Table struct {
	IDs     *Allocator
	Cards   *CardRegistry
	Slots   *SlotRegistry
	Catalog *catalog.Catalog

	notify *listeners
}

// NewTable wires an empty table over the given description database.
func NewTable(cat *catalog.Catalog) *Table {
	t := &Table{
		IDs:     NewAllocator(),
		Catalog: cat,
		notify:  &listeners{},
	}
	t.Cards = &CardRegistry{
		ids:     t.IDs,
		catalog: cat,
		cards:   make(map[model.CardID]*model.Card),
		byKind:  make(map[model.Kind]map[model.CardID]*model.Card),
		attrs:   newAttrStores(),
		notify:  t.notify,
	}
	t.Slots = &SlotRegistry{
		ids:    t.IDs,
		cards:  t.Cards,
		slots:  make(map[model.SlotID]*model.CardSlot),
		notify: t.notify,
	}
	t.Cards.slots = t.Slots
	return t
}

// Subscribe registers a lifecycle listener. Listeners run synchronously in
// registration order, after each mutation commits.
func (t *Table) Subscribe(fn ListenerFunc) ListenerID {
	return t.notify.subscribe(fn)
}

// Unsubscribe removes a listener by the handle Subscribe returned.
func (t *Table) Unsubscribe(id ListenerID) {
	t.notify.unsubscribe(id)
}

// Reset deletes every card and slot, returning the table to empty while
// keeping listeners and identity sequences intact.
func (t *Table) Reset() {
	t.Cards.DeleteAllCards()
	ids := make([]model.SlotID, 0, len(t.Slots.slots))
	for id := range t.Slots.slots {
		ids = append(ids, id)
	}
	for _, id := range ids {
		_ = t.Slots.DeleteSlot(id)
	}
}
