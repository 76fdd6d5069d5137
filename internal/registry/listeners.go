package registry

import (
	"github.com/google/uuid"

	"cardtable/internal/model"
)

// EventType identifies a lifecycle notification.
type EventType string

const (
	EventCardCreated EventType = "card_created"
	EventCardDeleted EventType = "card_deleted"
	EventCardMoved   EventType = "card_moved"
	EventSlotCreated EventType = "slot_created"
	EventSlotDeleted EventType = "slot_deleted"
)

// Event is delivered to listeners synchronously, after the mutation is
// fully applied. Card is set for card events, Slot for slot events; both
// are set for card_moved.
type Event struct {
	Type EventType
	Card *model.Card
	Slot *model.CardSlot
}

// ListenerFunc receives lifecycle events. Listeners must not destructively
// re-enter the registries for the entity currently being delivered (e.g.
// deleting the card inside its own card_deleted notification).
type ListenerFunc func(Event)

// ListenerID is the handle returned by Subscribe, used to unsubscribe.
type ListenerID string

type listenerEntry struct {
	id ListenerID
	fn ListenerFunc
}

// listeners is an ordered list of registered handlers, shared by the card
// and slot registries of one table.
type listeners struct {
	entries []listenerEntry
}

func (l *listeners) subscribe(fn ListenerFunc) ListenerID {
	id := ListenerID(uuid.NewString())
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return id
}

func (l *listeners) unsubscribe(id ListenerID) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// emit invokes every listener in registration order.
func (l *listeners) emit(ev Event) {
	for _, e := range l.entries {
		e.fn(ev)
	}
}
