package model

import "time"

// Platform describes element hardware
type Platform struct {
	ID          string    `json:"platform_id" yaml:"platform_id" toml:"platform_id"`
	Name        string    `json:"platform_name" yaml:"platform_name" toml:"platform_name"`
	Chipset     string    `json:"platform_chipset,omitempty" yaml:"platform_chipset,omitempty" toml:"platform_chipset,omitempty"`
	VendorName  string    `json:"vendor_name,omitempty" yaml:"vendor_name,omitempty" toml:"vendor_name,omitempty"`
	ModelName   string    `json:"model_name,omitempty" yaml:"model_name,omitempty" toml:"model_name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	RackUnits   int       `json:"rack_units,omitempty" yaml:"rack_units,omitempty" toml:"rack_units,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}
