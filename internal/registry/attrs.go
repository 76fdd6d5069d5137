package registry

import (
	"fmt"

	"cardtable/internal/model"
)

// attrStores holds one typed store per card kind, each mapping card
// identity to an exclusively owned attribute record. Records are cloned on
// attach so the stores never alias caller-owned values, and are dropped
// exactly when their card is deleted.
type attrStores struct {
	creature  map[model.CardID]*model.CreatureAttributes
	resource  map[model.CardID]*model.ResourceAttributes
	equipment map[model.CardID]*model.EquipmentAttributes
}

func newAttrStores() *attrStores {
	return &attrStores{
		creature:  make(map[model.CardID]*model.CreatureAttributes),
		resource:  make(map[model.CardID]*model.ResourceAttributes),
		equipment: make(map[model.CardID]*model.EquipmentAttributes),
	}
}

// attach clones the record into the store matching its kind. A nil record
// is a no-op (event cards).
func (s *attrStores) attach(id model.CardID, a model.Attributes) error {
	if a == nil {
		return nil
	}
	switch rec := a.Clone().(type) {
	case *model.CreatureAttributes:
		s.creature[id] = rec
	case *model.ResourceAttributes:
		s.resource[id] = rec
	case *model.EquipmentAttributes:
		s.equipment[id] = rec
	default:
		return fmt.Errorf("unsupported attribute record %T", a)
	}
	return nil
}

// detach removes the record for the card from the store of its kind.
func (s *attrStores) detach(kind model.Kind, id model.CardID) {
	switch kind {
	case model.KindCreature:
		delete(s.creature, id)
	case model.KindResource:
		delete(s.resource, id)
	case model.KindEquipment:
		delete(s.equipment, id)
	}
}

// get returns the record for the card from the store of its kind, or false
// if the card has none.
func (s *attrStores) get(kind model.Kind, id model.CardID) (model.Attributes, bool) {
	switch kind {
	case model.KindCreature:
		if rec, ok := s.creature[id]; ok {
			return rec, true
		}
	case model.KindResource:
		if rec, ok := s.resource[id]; ok {
			return rec, true
		}
	case model.KindEquipment:
		if rec, ok := s.equipment[id]; ok {
			return rec, true
		}
	}
	return nil, false
}
