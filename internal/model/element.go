package model

import "time"

// AdministrativeState is the lifecycle state an operator assigns to an element
type AdministrativeState string

const (
	AdmNew     AdministrativeState = "NEW"
	AdmActive  AdministrativeState = "ACTIVE"
	AdmRetired AdministrativeState = "RETIRED"
)

// Valid reports whether s is a known administrative state
func (s AdministrativeState) Valid() bool {
	switch s {
	case AdmNew, AdmActive, AdmRetired:
		return true
	}
	return false
}

// OperationalState is the observed state of an element
type OperationalState string

const (
	OpUp          OperationalState = "UP"
	OpDown        OperationalState = "DOWN"
	OpDetached    OperationalState = "DETACHED"
	OpMaintenance OperationalState = "MAINTENANCE"
	OpMalfunction OperationalState = "MALFUNCTION"
)

// Valid reports whether s is a known operational state
func (s OperationalState) Valid() bool {
	switch s {
	case OpUp, OpDown, OpDetached, OpMaintenance, OpMalfunction:
		return true
	}
	return false
}

// Element represents a managed network device (router, switch, server)
type Element struct {
	ID                   string                `json:"element_id" yaml:"element_id" toml:"element_id"`
	Name                 string                `json:"element_name" yaml:"element_name" toml:"element_name"`
	Alias                string                `json:"element_alias,omitempty" yaml:"element_alias,omitempty" toml:"element_alias,omitempty"`
	GroupID              string                `json:"group_id,omitempty" yaml:"group_id,omitempty" toml:"group_id,omitempty"`
	GroupType            string                `json:"group_type,omitempty" yaml:"group_type,omitempty" toml:"group_type,omitempty"`
	GroupName            string                `json:"group_name,omitempty" yaml:"group_name,omitempty" toml:"group_name,omitempty"`
	Role                 string                `json:"element_role" yaml:"element_role" toml:"element_role"`
	PlatformID           string                `json:"platform_id,omitempty" yaml:"platform_id,omitempty" toml:"platform_id,omitempty"`
	PlatformName         string                `json:"platform_name,omitempty" yaml:"platform_name,omitempty" toml:"platform_name,omitempty"`
	AdministrativeState  AdministrativeState   `json:"administrative_state" yaml:"administrative_state" toml:"administrative_state"`
	OperationalState     OperationalState      `json:"operational_state" yaml:"operational_state" toml:"operational_state"`
	SerialNumber         string                `json:"serial_number,omitempty" yaml:"serial_number,omitempty" toml:"serial_number,omitempty"`
	AssetID              string                `json:"asset_id,omitempty" yaml:"asset_id,omitempty" toml:"asset_id,omitempty"`
	ManagementMAC        string                `json:"mgmt_mac,omitempty" yaml:"mgmt_mac,omitempty" toml:"mgmt_mac,omitempty"`
	Description          string                `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Tags                 []string              `json:"tags" yaml:"tags" toml:"tags"`
	ManagementInterfaces []ManagementInterface `json:"mgmt_interfaces" yaml:"mgmt_interfaces" toml:"mgmt_interfaces"`
	CreatedAt            time.Time             `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// ManagementInterface describes how to reach the element's management plane
type ManagementInterface struct {
	Name     string `json:"mgmt_name" yaml:"mgmt_name" toml:"mgmt_name"`                                           // e.g. "SSH", "REST"
	Protocol string `json:"mgmt_protocol,omitempty" yaml:"mgmt_protocol,omitempty" toml:"mgmt_protocol,omitempty"` // e.g. "ssh", "http"
	Hostname string `json:"mgmt_hostname,omitempty" yaml:"mgmt_hostname,omitempty" toml:"mgmt_hostname,omitempty"`
	Port     int    `json:"mgmt_port,omitempty" yaml:"mgmt_port,omitempty" toml:"mgmt_port,omitempty"`
	Path     string `json:"mgmt_path,omitempty" yaml:"mgmt_path,omitempty" toml:"mgmt_path,omitempty"`
}

// ManagementInterface returns the management interface with the given name, or nil
func (e *Element) ManagementInterface(name string) *ManagementInterface {
	for i := range e.ManagementInterfaces {
		if e.ManagementInterfaces[i].Name == name {
			return &e.ManagementInterfaces[i]
		}
	}
	return nil
}

// ElementFilter holds filter criteria for listing elements
type ElementFilter struct {
	GroupID             string
	Role                string
	PlatformID          string
	Name                string // Partial match on name or alias
	Tag                 string
	AdministrativeState AdministrativeState
}
