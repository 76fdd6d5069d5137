package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/model"
)

func testEntries() []Entry {
	return []Entry{
		{Desc: "creature.wolf", Kind: model.KindCreature, Title: "Wolf",
			Creature: &model.CreatureAttributes{Level: 1, Health: 8, Attack: 3}},
		{Desc: "resource.iron", Kind: model.KindResource, Title: "Iron",
			Resource: &model.ResourceAttributes{Resource: "iron"}},
		{Desc: "equipment.sword", Kind: model.KindEquipment, Title: "Sword",
			Equipment: &EquipmentSpec{Source: "iron", Durability: 20}},
		{Desc: "event.storm", Kind: model.KindEvent, Title: "Storm"},
	}
}

func TestCatalog_Lookup(t *testing.T) {
	cat, err := New(testEntries(), nil)
	require.NoError(t, err)

	e, ok := cat.Lookup("creature.wolf")
	require.True(t, ok)
	assert.Equal(t, model.KindCreature, e.Kind)

	_, ok = cat.Lookup("creature.dragon")
	assert.False(t, ok)
	assert.True(t, cat.Contains("event.storm"))
}

func TestCatalog_DefaultAttributesAreClones(t *testing.T) {
	cat, err := New(testEntries(), nil)
	require.NoError(t, err)

	first, err := cat.DefaultAttributes("creature.wolf")
	require.NoError(t, err)
	first.(*model.CreatureAttributes).Health = 1

	second, err := cat.DefaultAttributes("creature.wolf")
	require.NoError(t, err)
	assert.Equal(t, 8, second.(*model.CreatureAttributes).Health)
}

func TestCatalog_EventHasNoDefaults(t *testing.T) {
	cat, err := New(testEntries(), nil)
	require.NoError(t, err)

	attrs, err := cat.DefaultAttributes("event.storm")
	require.NoError(t, err)
	assert.Nil(t, attrs)
}

func TestCatalog_EquipmentDerivation(t *testing.T) {
	cat, err := New(testEntries(), map[model.ResourceType]Material{
		"iron": {Bonus: 5},
	})
	require.NoError(t, err)

	attrs, err := cat.DefaultAttributes("equipment.sword")
	require.NoError(t, err)
	eq := attrs.(*model.EquipmentAttributes)
	assert.Equal(t, model.ResourceType("iron"), eq.Source)
	assert.Equal(t, 5, eq.Bonus)
	assert.Equal(t, 20, eq.Durability)
}

func TestCatalog_EquipmentUnknownMaterial(t *testing.T) {
	cat, err := New(testEntries(), nil)
	require.NoError(t, err)

	// Unlisted material still derives a record, with zero bonus.
	attrs, err := cat.DefaultAttributes("equipment.sword")
	require.NoError(t, err)
	assert.Equal(t, 0, attrs.(*model.EquipmentAttributes).Bonus)
}

func TestCatalog_RejectsBadEntries(t *testing.T) {
	_, err := New([]Entry{{Desc: "x", Kind: "mineral"}}, nil)
	assert.Error(t, err)

	_, err = New([]Entry{{Kind: model.KindEvent}}, nil)
	assert.Error(t, err)

	_, err = New([]Entry{
		{Desc: "event.storm", Kind: model.KindEvent},
		{Desc: "event.storm", Kind: model.KindEvent},
	}, nil)
	assert.Error(t, err)
}

func TestParseCatalogYAML(t *testing.T) {
	data := []byte(`
cards:
  - desc: creature.wolf
    kind: creature
    title: Wolf
    creature:
      level: 1
      health: 8
      attack: 3
  - desc: equipment.sword
    kind: equipment
    title: Sword
    equipment:
      source: iron
      durability: 20
materials:
  iron:
    bonus: 5
`)

	cat, err := Parse(data)
	require.NoError(t, err)

	attrs, err := cat.DefaultAttributes("equipment.sword")
	require.NoError(t, err)
	assert.Equal(t, 5, attrs.(*model.EquipmentAttributes).Bonus)

	wolf, err := cat.DefaultAttributes("creature.wolf")
	require.NoError(t, err)
	assert.Equal(t, 8, wolf.(*model.CreatureAttributes).Health)
}
