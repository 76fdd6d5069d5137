package recipe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of the static recipe database.
type File struct {
	Recipes []Recipe `yaml:"recipes"`
}

// LoadFile reads recipe definitions from a YAML file. Recipes without an
// explicit status start locked.
func LoadFile(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	return Parse(data)
}

// Parse builds recipe definitions from YAML bytes.
func Parse(data []byte) ([]Recipe, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}
	for i := range f.Recipes {
		if f.Recipes[i].ID == "" {
			return nil, fmt.Errorf("recipe %d has no id", i)
		}
		if f.Recipes[i].Status == "" {
			f.Recipes[i].Status = StatusLocked
		}
	}
	return f.Recipes, nil
}
