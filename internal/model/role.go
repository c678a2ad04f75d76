package model

// Plane is the network plane an element role operates in
type Plane string

const (
	PlaneData       Plane = "DATA"
	PlaneControl    Plane = "CONTROL"
	PlaneManagement Plane = "MANAGEMENT"
)

// Valid reports whether p is a known plane
func (p Plane) Valid() bool {
	switch p {
	case PlaneData, PlaneControl, PlaneManagement:
		return true
	}
	return false
}

// ElementRole describes the function of an element in the network, e.g. "spine" or "leaf"
type ElementRole struct {
	Name        string `json:"role_name" yaml:"role_name" toml:"role_name"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty" toml:"display_name,omitempty"`
	Plane       Plane  `json:"plane" yaml:"plane" toml:"plane"`
	Manageable  bool   `json:"manageable" yaml:"manageable" toml:"manageable"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}
