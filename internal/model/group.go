package model

import "time"

// ElementGroup groups elements, e.g. all elements of a pod or a rack
type ElementGroup struct {
	ID          string    `json:"group_id" yaml:"group_id" toml:"group_id"`
	Type        string    `json:"group_type" yaml:"group_type" toml:"group_type"` // e.g. "pod", "rack"
	Name        string    `json:"group_name" yaml:"group_name" toml:"group_name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	FacilityID  string    `json:"facility_id,omitempty" yaml:"facility_id,omitempty" toml:"facility_id,omitempty"`
	Tags        []string  `json:"tags" yaml:"tags" toml:"tags"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// GroupFilter holds filter criteria for listing groups
type GroupFilter struct {
	Type       string // Exact match
	Name       string // Partial match
	FacilityID string
}
