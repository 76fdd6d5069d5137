// Package progress tracks where multi-step event cards left off, so they
// can resume after a reload. Entries are transient: one per live event
// card at most, dropped on resume and on card deletion.
package progress

import (
	"errors"
	"fmt"

	"cardtable/internal/model"
	"cardtable/internal/registry"
)

// ErrInvalidProgress means a caller passed a fraction outside [0,1] or a
// negative step. Rejected rather than clamped; clamping would mask the
// upstream logic bug.
var ErrInvalidProgress = errors.New("invalid progress")

// Progress is how far through its steps an event card is.
type Progress struct {
	Step     int     `json:"step"`
	Fraction float64 `json:"fraction"`
}

// Tracker maps event-card identity to its progress. Like the registries it
// is single-threaded and takes no locks.
type Tracker struct {
	entries map[model.CardID]Progress
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[model.CardID]Progress)}
}

// Set records progress for a card, replacing any previous entry.
func (t *Tracker) Set(id model.CardID, step int, fraction float64) error {
	if step < 0 {
		return fmt.Errorf("%w: step %d", ErrInvalidProgress, step)
	}
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: fraction %v", ErrInvalidProgress, fraction)
	}
	t.entries[id] = Progress{Step: step, Fraction: fraction}
	return nil
}

// Resume returns the card's progress and drops the entry. The second
// return is false if nothing was recorded.
func (t *Tracker) Resume(id model.CardID) (Progress, bool) {
	p, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	return p, ok
}

// Peek returns the card's progress without dropping it.
func (t *Tracker) Peek(id model.CardID) (Progress, bool) {
	p, ok := t.entries[id]
	return p, ok
}

// Drop discards the card's entry, if any.
func (t *Tracker) Drop(id model.CardID) {
	delete(t.entries, id)
}

// Len returns the number of tracked cards.
func (t *Tracker) Len() int {
	return len(t.entries)
}

// Watch subscribes the tracker to a table so deleted cards take their
// entries with them; entries must not outlive their cards. Returns the
// listener handle for unsubscribing.
func (t *Tracker) Watch(tbl *registry.Table) registry.ListenerID {
	return tbl.Subscribe(func(ev registry.Event) {
		if ev.Type == registry.EventCardDeleted && ev.Card != nil {
			t.Drop(ev.Card.ID)
		}
	})
}
