package model

import (
	"encoding/json"
	"fmt"
)

// ResourceType is the subtype tag on resource cards ("wood", "stone", ...).
// Equipment derives its base stats from the resource it was made of.
type ResourceType string

// Attributes is the kind-specific record attached to a card. One variant
// exists per card kind; event cards carry none. Records are owned by the
// attribute store of their kind and live exactly as long as their card.
type Attributes interface {
	// AttrKind returns the card kind this record belongs to.
	AttrKind() Kind
	// Clone returns a deep copy. Used when attaching defaults from the
	// catalog and when restoring persisted payloads, so stores never
	// alias caller-owned records.
	Clone() Attributes
}

// CreatureAttributes holds leveling and combat stats for creature cards.
type CreatureAttributes struct {
	Level  int `json:"level"`
	XP     int `json:"xp"`
	Health int `json:"health"`
	Attack int `json:"attack"`
}

func (a *CreatureAttributes) AttrKind() Kind { return KindCreature }

func (a *CreatureAttributes) Clone() Attributes {
	c := *a
	return &c
}

// ResourceAttributes tags a resource card with its subtype.
type ResourceAttributes struct {
	Resource ResourceType `json:"resource"`
}

func (a *ResourceAttributes) AttrKind() Kind { return KindResource }

func (a *ResourceAttributes) Clone() Attributes {
	c := *a
	return &c
}

// EquipmentAttributes holds stats for equipment cards, derived from the
// resource the equipment was crafted from.
type EquipmentAttributes struct {
	Source     ResourceType `json:"source"`
	Bonus      int          `json:"bonus"`
	Durability int          `json:"durability"`
}

func (a *EquipmentAttributes) AttrKind() Kind { return KindEquipment }

func (a *EquipmentAttributes) Clone() Attributes {
	c := *a
	return &c
}

// EncodeAttributes serializes a record for a save payload. A nil record
// (event cards) encodes to nil.
func EncodeAttributes(a Attributes) (json.RawMessage, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// DecodeAttributes parses a persisted attribute payload for the given card
// kind. Returns nil for event cards and for empty payloads; the caller
// falls back to catalog defaults when a record is required but absent.
func DecodeAttributes(kind Kind, raw json.RawMessage) (Attributes, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch kind {
	case KindCreature:
		var a CreatureAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode creature attributes: %w", err)
		}
		return &a, nil
	case KindResource:
		var a ResourceAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode resource attributes: %w", err)
		}
		return &a, nil
	case KindEquipment:
		var a EquipmentAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode equipment attributes: %w", err)
		}
		return &a, nil
	case KindEvent:
		// Event cards legitimately have no attribute record.
		return nil, nil
	}
	return nil, fmt.Errorf("unknown card kind %q", kind)
}
