package model

import "time"

// Facility represents a site (data center, PoP, lab) that hosts element groups
type Facility struct {
	ID          string    `json:"facility_id" yaml:"facility_id" toml:"facility_id"`
	Name        string    `json:"facility_name" yaml:"facility_name" toml:"facility_name"`
	Type        string    `json:"facility_type,omitempty" yaml:"facility_type,omitempty" toml:"facility_type,omitempty"` // e.g. "pop", "dc"
	Location    string    `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// FacilityFilter holds filter criteria for listing facilities
type FacilityFilter struct {
	Name string // Filter by name (partial match)
}
