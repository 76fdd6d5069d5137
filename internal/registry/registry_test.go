package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardtable/internal/catalog"
	"cardtable/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]catalog.Entry{
		{Desc: "creature.wolf", Kind: model.KindCreature, Title: "Wolf",
			Creature: &model.CreatureAttributes{Level: 1, Health: 8, Attack: 3}},
		{Desc: "creature.bear", Kind: model.KindCreature, Title: "Bear",
			Creature: &model.CreatureAttributes{Level: 2, Health: 14, Attack: 5}},
		{Desc: "resource.wood", Kind: model.KindResource, Title: "Wood",
			Resource: &model.ResourceAttributes{Resource: "wood"}},
		{Desc: "resource.iron", Kind: model.KindResource, Title: "Iron",
			Resource: &model.ResourceAttributes{Resource: "iron"}},
		{Desc: "equipment.sword", Kind: model.KindEquipment, Title: "Sword",
			Equipment: &catalog.EquipmentSpec{Source: "iron", Durability: 20}},
		{Desc: "event.storm", Kind: model.KindEvent, Title: "Storm"},
	}, map[model.ResourceType]catalog.Material{
		"iron": {Bonus: 5},
		"wood": {Bonus: 1},
	})
	require.NoError(t, err)
	return cat
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	return NewTable(testCatalog(t))
}
