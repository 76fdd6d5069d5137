package recipe

import (
	"time"

	"cardtable/internal/model"
)

type Status string

const (
	StatusLocked   Status = "locked"
	StatusUnlocked Status = "unlocked"
)

// Ingredient is one line of a recipe's required multiset: Count cards whose
// description equals Desc. Matching is by description, never by card
// identity.
type Ingredient struct {
	Desc  model.Description `yaml:"desc" json:"desc"`
	Count int               `yaml:"count" json:"count"`
}

type OutputType string

const (
	OutCreateCard OutputType = "create_card"
)

type Output struct {
	Type  OutputType        `yaml:"type" json:"type"`
	Desc  model.Description `yaml:"desc" json:"desc"`
	Count int               `yaml:"count" json:"count"`
}

// Recipe is a static crafting rule: a required card multiset and what it
// produces. Recipes come from an external database; only the unlock status
// changes at runtime.
type Recipe struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`

	Ingredients []Ingredient `yaml:"ingredients" json:"ingredients"`
	Outputs     []Output     `yaml:"outputs" json:"outputs"`

	Status     Status     `yaml:"status,omitempty" json:"status"`
	UnlockedAt *time.Time `yaml:"-" json:"unlocked_at,omitempty"`
}
