package save

import (
	"fmt"
	"sort"

	"cardtable/internal/model"
	"cardtable/internal/registry"
)

// IssueKind classifies a per-record problem found during load.
type IssueKind string

const (
	// IssueBadCard: a card record with an unknown or malformed kind or
	// description. The record is skipped.
	IssueBadCard IssueKind = "bad_card"
	// IssueBadAttributes: a card record whose attribute payload failed
	// to decode. The record is skipped.
	IssueBadAttributes IssueKind = "bad_attributes"
	// IssueDanglingCard: a slot record lists a card identity that did
	// not materialize in pass 1. The reference is skipped.
	IssueDanglingCard IssueKind = "dangling_card_reference"
	// IssueBadSlot: a slot record that could not be restored (duplicate
	// or zero identity). The record is skipped.
	IssueBadSlot IssueKind = "bad_slot"
)

// Issue is one recovered-from problem. Loads never abort on a corrupt
// record; they skip it and report here.
type Issue struct {
	Kind IssueKind
	Card model.CardID
	Slot model.SlotID
	Err  error
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueDanglingCard:
		return fmt.Sprintf("%s: slot %d references card %d: %v", i.Kind, i.Slot, i.Card, i.Err)
	case IssueBadSlot:
		return fmt.Sprintf("%s: slot %d: %v", i.Kind, i.Slot, i.Err)
	default:
		return fmt.Sprintf("%s: card %d: %v", i.Kind, i.Card, i.Err)
	}
}

// Report collects the issues of one load.
type Report struct {
	Issues []Issue
}

// Clean reports whether the load reconstructed every record.
func (r *Report) Clean() bool {
	return len(r.Issues) == 0
}

func (r *Report) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// Coordinator rebuilds a table from save data in two passes and snapshots
// it back. Invoked at scene boundaries.
type Coordinator struct {
	table *registry.Table
}

func NewCoordinator(t *registry.Table) *Coordinator {
	return &Coordinator{table: t}
}

// Load resets the table and reconstructs it from the save structure.
//
// Pass 1 materializes every card record with its persisted identity,
// building an identity-indexed lookup. Pass 2 restores slots and resolves
// their card lists purely through that lookup, moving each resolved card
// in restore mode so no placement side effects fire. Corrupt records are
// skipped and reported; only a nil save is a hard error.
func (c *Coordinator) Load(data *SaveData) (*Report, error) {
	if data == nil {
		return nil, fmt.Errorf("load: nil save data")
	}

	c.table.Reset()
	c.table.IDs.Restore(data.NextCardID, data.NextSlotID)

	report := &Report{}

	// Pass 1: materialize cards.
	byID := make(map[model.CardID]*model.Card, len(data.Cards))
	for _, rec := range data.Cards {
		if !rec.Kind.Valid() {
			report.add(Issue{Kind: IssueBadCard, Card: rec.ID, Err: fmt.Errorf("unknown kind %q", rec.Kind)})
			continue
		}
		attrs, err := model.DecodeAttributes(rec.Kind, rec.Attributes)
		if err != nil {
			report.add(Issue{Kind: IssueBadAttributes, Card: rec.ID, Err: err})
			continue
		}
		card, err := c.table.Cards.RestoreCard(rec.ID, rec.Desc, attrs)
		if err != nil {
			report.add(Issue{Kind: IssueBadCard, Card: rec.ID, Err: err})
			continue
		}
		byID[card.ID] = card
	}

	// Pass 2: rebuild slots, resolving card references against pass 1.
	for _, rec := range data.Slots {
		slot, err := c.table.Slots.RestoreSlot(rec.ID, rec.Pos)
		if err != nil {
			report.add(Issue{Kind: IssueBadSlot, Slot: rec.ID, Err: err})
			continue
		}
		for _, cardID := range rec.Cards {
			card, ok := byID[cardID]
			if !ok {
				report.add(Issue{
					Kind: IssueDanglingCard,
					Slot: rec.ID,
					Card: cardID,
					Err:  fmt.Errorf("card did not materialize"),
				})
				continue
			}
			if err := c.table.Slots.MoveCard(card.ID, slot.ID, registry.MoveOptions{Restore: true}); err != nil {
				report.add(Issue{Kind: IssueDanglingCard, Slot: rec.ID, Card: cardID, Err: err})
			}
		}
	}

	return report, nil
}

// Snapshot is the structural inverse of Load: one record per live card
// (attribute payload re-encoded from the live store) and per live slot.
// Records are emitted in identity order; Load does not depend on it, but
// it keeps serialized saves diffable.
func (c *Coordinator) Snapshot() (*SaveData, error) {
	data := &SaveData{}
	data.NextCardID, data.NextSlotID = c.table.IDs.Checkpoint()

	cards := c.table.Cards.Cards()
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	for _, card := range cards {
		rec := CardRecord{ID: card.ID, Desc: card.Desc, Kind: card.Kind}
		if attrs, ok := c.table.Cards.Attributes(card.ID); ok {
			raw, err := model.EncodeAttributes(attrs)
			if err != nil {
				return nil, fmt.Errorf("snapshot card %d: %w", card.ID, err)
			}
			rec.Attributes = raw
		}
		data.Cards = append(data.Cards, rec)
	}

	slots := c.table.Slots.Slots()
	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	for _, slot := range slots {
		ids := make([]model.CardID, len(slot.Cards))
		copy(ids, slot.Cards)
		data.Slots = append(data.Slots, SlotRecord{ID: slot.ID, Pos: slot.Pos, Cards: ids})
	}

	return data, nil
}
