// Package catalog is the read-only description database: the static
// descriptor behind every card description, its default attribute record,
// and the material table equipment stats derive from. The registries
// consult it; nothing in this module mutates it.
package catalog

import (
	"fmt"

	"cardtable/internal/model"
)

// EquipmentSpec is the static part of an equipment descriptor. The bonus
// stat is not stored here; it derives from the source material.
type EquipmentSpec struct {
	Source     model.ResourceType `yaml:"source" json:"source"`
	Durability int                `yaml:"durability" json:"durability"`
}

// Entry is the static descriptor for one card description. Exactly one of
// the attribute fields is set, matching Kind; event entries set none.
type Entry struct {
	Desc  model.Description `yaml:"desc" json:"desc"`
	Kind  model.Kind        `yaml:"kind" json:"kind"`
	Title string            `yaml:"title" json:"title"`

	Creature  *model.CreatureAttributes `yaml:"creature,omitempty" json:"creature,omitempty"`
	Resource  *model.ResourceAttributes `yaml:"resource,omitempty" json:"resource,omitempty"`
	Equipment *EquipmentSpec            `yaml:"equipment,omitempty" json:"equipment,omitempty"`
}

// Material describes how a resource subtype behaves when worked into
// equipment.
type Material struct {
	Bonus int `yaml:"bonus" json:"bonus"`
}

// Catalog holds the full description database.
type Catalog struct {
	entries   map[model.Description]Entry
	materials map[model.ResourceType]Material
}

// New builds a catalog from entries and a material table. Entries with a
// missing description, an invalid kind, or a duplicate description are
// rejected.
func New(entries []Entry, materials map[model.ResourceType]Material) (*Catalog, error) {
	c := &Catalog{
		entries:   make(map[model.Description]Entry, len(entries)),
		materials: make(map[model.ResourceType]Material, len(materials)),
	}
	for _, e := range entries {
		if e.Desc == "" {
			return nil, fmt.Errorf("catalog entry with empty description")
		}
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("catalog entry %s: unknown kind %q", e.Desc, e.Kind)
		}
		if _, dup := c.entries[e.Desc]; dup {
			return nil, fmt.Errorf("duplicate catalog entry: %s", e.Desc)
		}
		c.entries[e.Desc] = e
	}
	for rt, m := range materials {
		c.materials[rt] = m
	}
	return c, nil
}

// Lookup returns the entry for a description, or false if unknown.
func (c *Catalog) Lookup(desc model.Description) (Entry, bool) {
	e, ok := c.entries[desc]
	return e, ok
}

// Contains reports whether the description is known.
func (c *Catalog) Contains(desc model.Description) bool {
	_, ok := c.entries[desc]
	return ok
}

// Descriptions returns every known description.
func (c *Catalog) Descriptions() []model.Description {
	out := make([]model.Description, 0, len(c.entries))
	for d := range c.entries {
		out = append(out, d)
	}
	return out
}

// DefaultAttributes returns a fresh attribute record for a description:
// the cataloged defaults for creatures and resources, a derived record for
// equipment, and nil for event descriptions. The returned record is a
// clone; the caller owns it.
func (c *Catalog) DefaultAttributes(desc model.Description) (model.Attributes, error) {
	e, ok := c.entries[desc]
	if !ok {
		return nil, fmt.Errorf("unknown description: %s", desc)
	}
	switch e.Kind {
	case model.KindCreature:
		if e.Creature == nil {
			return nil, fmt.Errorf("catalog entry %s has no creature attributes", desc)
		}
		return e.Creature.Clone(), nil
	case model.KindResource:
		if e.Resource == nil {
			return nil, fmt.Errorf("catalog entry %s has no resource attributes", desc)
		}
		return e.Resource.Clone(), nil
	case model.KindEquipment:
		if e.Equipment == nil {
			return nil, fmt.Errorf("catalog entry %s has no equipment spec", desc)
		}
		return c.deriveEquipment(*e.Equipment), nil
	case model.KindEvent:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown kind %q for %s", e.Kind, desc)
}

// deriveEquipment builds equipment attributes from the static spec and the
// material table. An unlisted material still yields a record, with zero
// bonus.
func (c *Catalog) deriveEquipment(spec EquipmentSpec) *model.EquipmentAttributes {
	m := c.materials[spec.Source]
	return &model.EquipmentAttributes{
		Source:     spec.Source,
		Bonus:      m.Bonus,
		Durability: spec.Durability,
	}
}
