package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/leeforge/resolution/json"
)

// File is the JSON document shape for externally defined catalogs.
type File struct {
	Name          string `json:"name"`
	DynamicSizing bool   `json:"dynamic_sizing"`
	Tiers         []Tier `json:"tiers"`
}

// Load reads a catalog definition from r and builds a validated Catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var opts []Option
	if file.DynamicSizing {
		opts = append(opts, WithDynamicSizing())
	}
	return New(file.Name, file.Tiers, opts...)
}

// LoadFile reads a catalog definition from the file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return Load(f)
}
