package config

import (
	"fmt"

	"github.com/leeforge/resolution/catalog"
	"github.com/leeforge/resolution/logging"
	"github.com/leeforge/resolution/resolver"
)

// Settings is the library's full file-configurable surface.
type Settings struct {
	// Catalog names the registered catalog to resolve against.
	Catalog string `mapstructure:"catalog" json:"catalog" yaml:"catalog" default:"tiered"`

	// CatalogFile optionally points at a JSON catalog definition that is
	// registered on load, in addition to the built-ins.
	CatalogFile string `mapstructure:"catalog-file" json:"catalogFile" yaml:"catalog-file"`

	Resolver resolver.Policy `mapstructure:"resolver" json:"resolver" yaml:"resolver"`
	Logging  logging.Config  `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// Validate implements Validator.
func (s Settings) Validate() error {
	if s.Catalog == "" {
		return fmt.Errorf("settings: catalog name cannot be empty")
	}
	return s.Resolver.Validate()
}

// LoadSettings loads, defaults and validates Settings, registers any
// configured catalog file, and returns the result.
func LoadSettings(optsArr ...Options) (*Settings, error) {
	cfg, err := New(optsArr...)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := cfg.BindWithDefaults(&settings); err != nil {
		return nil, err
	}

	if settings.CatalogFile != "" {
		cat, err := catalog.LoadFile(settings.CatalogFile)
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(cat); err != nil {
			return nil, err
		}
	}

	if _, err := catalog.Get(settings.Catalog); err != nil {
		return nil, err
	}

	return &settings, nil
}
