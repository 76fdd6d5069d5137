package telemetry

import (
	"strconv"

	"cardtable/internal/registry"
)

// Recorder turns registry lifecycle notifications into telemetry events.
// It is an ordinary listener; the registries know nothing about it.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Watch subscribes the recorder to a table. Returns the listener handle.
func (r *Recorder) Watch(tbl *registry.Table) registry.ListenerID {
	return tbl.Subscribe(r.handle)
}

func (r *Recorder) handle(ev registry.Event) {
	meta := EventMetadata{}
	if ev.Card != nil {
		meta["card"] = strconv.FormatUint(uint64(ev.Card.ID), 10)
		meta["kind"] = string(ev.Card.Kind)
		meta["desc"] = string(ev.Card.Desc)
	}
	if ev.Slot != nil {
		meta["slot"] = strconv.FormatUint(uint64(ev.Slot.ID), 10)
	}

	switch ev.Type {
	case registry.EventCardCreated:
		_ = r.repo.RecordEvent(EventCardCreated, meta)
	case registry.EventCardDeleted:
		_ = r.repo.RecordEvent(EventCardDeleted, meta)
	case registry.EventCardMoved:
		_ = r.repo.RecordEvent(EventCardMoved, meta)
	case registry.EventSlotCreated:
		_ = r.repo.RecordEvent(EventSlotCreated, meta)
	case registry.EventSlotDeleted:
		_ = r.repo.RecordEvent(EventSlotDeleted, meta)
	}
}

// RecordRecipeMatch logs a successful recipe match, with the consumed card
// count for balance stats.
func (r *Recorder) RecordRecipeMatch(recipeID string, consumed int) {
	_ = r.repo.RecordEvent(EventRecipeMatched, EventMetadata{
		"recipe_id": recipeID,
		"consumed":  consumed,
	})
}
