// Package save rebuilds a table from persisted save data and snapshots a
// table back into it. The coordinator works only on the decoded structure;
// the byte-level encoding lives in the stores.
package save

import (
	"encoding/json"

	"cardtable/internal/model"
)

// CardRecord is one persisted card: identity, descriptor, kind, and the
// serialized attribute payload (absent for event cards).
type CardRecord struct {
	ID         model.CardID      `json:"id"`
	Desc       model.Description `json:"desc"`
	Kind       model.Kind        `json:"kind"`
	Attributes json.RawMessage   `json:"attributes,omitempty"`
}

// SlotRecord is one persisted slot: identity, placement, and the ordered
// identities of the cards it held.
type SlotRecord struct {
	ID    model.SlotID   `json:"id"`
	Pos   model.Point    `json:"pos"`
	Cards []model.CardID `json:"cards"`
}

// SaveData is the decoded save structure: the identity checkpoint plus one
// record per live card and slot.
type SaveData struct {
	NextCardID model.CardID `json:"next_card_id"`
	NextSlotID model.SlotID `json:"next_slot_id"`
	Cards      []CardRecord `json:"cards"`
	Slots      []SlotRecord `json:"slots"`
}
