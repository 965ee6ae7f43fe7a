package catalog

import (
	"fmt"
	"sync"
)

var registry = struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
}{
	catalogs: make(map[string]*Catalog),
}

// Register adds a catalog to the registry so hosts can select it by name.
func Register(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("catalog cannot be nil")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.catalogs[c.name]; exists {
		return fmt.Errorf("catalog %s already registered", c.name)
	}

	registry.catalogs[c.name] = c
	return nil
}

// Get returns a registered catalog by name.
func Get(name string) (*Catalog, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	c, exists := registry.catalogs[name]
	if !exists {
		return nil, fmt.Errorf("catalog %s not found", name)
	}
	return c, nil
}

// MustGet returns a registered catalog by name, panicking if absent.
func MustGet(name string) *Catalog {
	c, err := Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the names of all registered catalogs.
func List() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.catalogs))
	for name := range registry.catalogs {
		names = append(names, name)
	}
	return names
}

// Clear resets the registry to the built-in catalogs. Only for tests.
func Clear() {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.catalogs = make(map[string]*Catalog)
	registry.catalogs[legacyCatalog.name] = legacyCatalog
	registry.catalogs[tieredCatalog.name] = tieredCatalog
}

// register is the init-time path for built-ins.
func register(c *Catalog) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.catalogs[c.name] = c
}
