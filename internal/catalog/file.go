package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cardtable/internal/model"
)

// File is the on-disk shape of the description database.
type File struct {
	Cards     []Entry                         `yaml:"cards"`
	Materials map[model.ResourceType]Material `yaml:"materials"`
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Cards, f.Materials)
}
