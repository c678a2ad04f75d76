// Package catalog loads the platform catalog, a YAML file that declares the
// hardware platforms known to the inventory.
package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
)

// File represents the catalog file structure
type File struct {
	Platforms []PlatformYAML `yaml:"platforms"`
}

// PlatformYAML represents one platform entry
type PlatformYAML struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	Chipset     string `yaml:"chipset,omitempty"`
	Vendor      string `yaml:"vendor,omitempty"`
	Model       string `yaml:"model,omitempty"`
	Description string `yaml:"description,omitempty"`
	RackUnits   int    `yaml:"rack_units,omitempty"`
}

// PlatformStore stores platforms, matching entries without id by name
type PlatformStore interface {
	StorePlatform(ctx context.Context, p *model.Platform) (bool, error)
}

// Parse decodes a catalog and rejects entries without name and duplicate names.
func Parse(data []byte) ([]model.Platform, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse platform catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Platforms))
	platforms := make([]model.Platform, 0, len(f.Platforms))
	for i, p := range f.Platforms {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("platform catalog entry %d: name is required", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("platform catalog entry %d: duplicate platform %s", i+1, name)
		}
		seen[name] = true
		if p.ID != "" && !model.ValidID(p.ID) {
			return nil, fmt.Errorf("platform catalog entry %d: invalid id %q", i+1, p.ID)
		}
		platforms = append(platforms, model.Platform{
			ID:          p.ID,
			Name:        name,
			Chipset:     p.Chipset,
			VendorName:  p.Vendor,
			ModelName:   p.Model,
			Description: p.Description,
			RackUnits:   p.RackUnits,
		})
	}
	return platforms, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) ([]model.Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read platform catalog: %w", err)
	}
	return Parse(data)
}

// Catalog applies a catalog file to the platform store
type Catalog struct {
	path  string
	store PlatformStore
}

func New(path string, store PlatformStore) *Catalog {
	return &Catalog{path: path, store: store}
}

// Load reads the catalog and stores every platform. It returns the number
// of platforms created and updated.
func (c *Catalog) Load(ctx context.Context) (created, updated int, err error) {
	platforms, err := LoadFile(c.path)
	if err != nil {
		return 0, 0, err
	}
	for i := range platforms {
		isNew, err := c.store.StorePlatform(ctx, &platforms[i])
		if err != nil {
			return created, updated, fmt.Errorf("store platform %s: %w", platforms[i].Name, err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	log.Info("Platform catalog loaded", "path", c.path, "created", created, "updated", updated)
	return created, updated, nil
}
