package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InterfaceState is the administrative or operational state of an interface
type InterfaceState string

const (
	IfUp   InterfaceState = "UP"
	IfDown InterfaceState = "DOWN"
)

// Valid reports whether s is a known interface state
func (s InterfaceState) Valid() bool {
	return s == IfUp || s == IfDown
}

// BandwidthUnit is the unit of a bandwidth value
type BandwidthUnit string

const (
	Kbps BandwidthUnit = "Kbps"
	Mbps BandwidthUnit = "Mbps"
	Gbps BandwidthUnit = "Gbps"
	Tbps BandwidthUnit = "Tbps"
)

var unitFactors = map[BandwidthUnit]float64{
	Kbps: 1e3,
	Mbps: 1e6,
	Gbps: 1e9,
	Tbps: 1e12,
}

// Bandwidth is a bandwidth value with unit, rendered as "10.000 Gbps"
type Bandwidth struct {
	Value float64       `json:"value" yaml:"value" toml:"value"`
	Unit  BandwidthUnit `json:"unit" yaml:"unit" toml:"unit"`
}

// ParseBandwidth parses strings like "10 Gbps" or "100.000 Mbps"
func ParseBandwidth(s string) (Bandwidth, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return Bandwidth{}, fmt.Errorf("invalid bandwidth %q", s)
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || value < 0 {
		return Bandwidth{}, fmt.Errorf("invalid bandwidth value %q", fields[0])
	}
	for unit := range unitFactors {
		if strings.EqualFold(string(unit), fields[1]) {
			return Bandwidth{Value: value, Unit: unit}, nil
		}
	}
	return Bandwidth{}, fmt.Errorf("invalid bandwidth unit %q", fields[1])
}

// String renders the bandwidth with three decimal places
func (b Bandwidth) String() string {
	if b.Unit == "" {
		return ""
	}
	return fmt.Sprintf("%.3f %s", b.Value, b.Unit)
}

// BitsPerSecond converts the bandwidth to bit/s
func (b Bandwidth) BitsPerSecond() float64 {
	return b.Value * unitFactors[b.Unit]
}

// Valid reports whether the bandwidth is unset or carries a known unit
func (b Bandwidth) Valid() bool {
	if b.Unit == "" {
		return b.Value == 0
	}
	_, ok := unitFactors[b.Unit]
	return ok && b.Value >= 0
}

// InterfaceNeighbor is the far end of a physical link
type InterfaceNeighbor struct {
	ElementID     string `json:"element_id" yaml:"element_id" toml:"element_id"`
	ElementName   string `json:"element_name,omitempty" yaml:"element_name,omitempty" toml:"element_name,omitempty"`
	InterfaceName string `json:"ifp_name" yaml:"ifp_name" toml:"ifp_name"`
}

// PhysicalInterface is a port of an element
type PhysicalInterface struct {
	ElementID           string             `json:"element_id" yaml:"element_id" toml:"element_id"`
	Name                string             `json:"ifp_name" yaml:"ifp_name" toml:"ifp_name"` // e.g. "ifp-0/0/1"
	Alias               string             `json:"ifp_alias,omitempty" yaml:"ifp_alias,omitempty" toml:"ifp_alias,omitempty"`
	Category            string             `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Bandwidth           Bandwidth          `json:"bandwidth" yaml:"bandwidth" toml:"bandwidth"`
	MACAddress          string             `json:"mac_address,omitempty" yaml:"mac_address,omitempty" toml:"mac_address,omitempty"`
	AdministrativeState InterfaceState     `json:"administrative_state" yaml:"administrative_state" toml:"administrative_state"`
	OperationalState    InterfaceState     `json:"operational_state" yaml:"operational_state" toml:"operational_state"`
	ContainerInterface  string             `json:"ifc_name,omitempty" yaml:"ifc_name,omitempty" toml:"ifc_name,omitempty"`
	Neighbor            *InterfaceNeighbor `json:"neighbor,omitempty" yaml:"neighbor,omitempty" toml:"neighbor,omitempty"`
	CreatedAt           time.Time          `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// LinkTo points the interface at a neighbor. It reports false when the link is unchanged.
func (p *PhysicalInterface) LinkTo(elementID, ifpName string) bool {
	if p.Neighbor != nil && p.Neighbor.ElementID == elementID && p.Neighbor.InterfaceName == ifpName {
		return false
	}
	p.Neighbor = &InterfaceNeighbor{ElementID: elementID, InterfaceName: ifpName}
	return true
}

// LinkedTo reports whether the interface points at the given neighbor interface
func (p *PhysicalInterface) LinkedTo(elementID, ifpName string) bool {
	return p.Neighbor != nil && p.Neighbor.ElementID == elementID && p.Neighbor.InterfaceName == ifpName
}

// LogicalInterface is a layer-3 interface on top of a container interface
type LogicalInterface struct {
	ElementID           string         `json:"element_id" yaml:"element_id" toml:"element_id"`
	Name                string         `json:"ifl_name" yaml:"ifl_name" toml:"ifl_name"`
	ContainerInterface  string         `json:"ifc_name" yaml:"ifc_name" toml:"ifc_name"`
	RoutingInstance     string         `json:"routing_instance,omitempty" yaml:"routing_instance,omitempty" toml:"routing_instance,omitempty"`
	VlanID              int            `json:"vlan_id,omitempty" yaml:"vlan_id,omitempty" toml:"vlan_id,omitempty"`
	Addresses           []string       `json:"addresses" yaml:"addresses" toml:"addresses"` // CIDR notation
	AdministrativeState InterfaceState `json:"administrative_state" yaml:"administrative_state" toml:"administrative_state"`
	OperationalState    InterfaceState `json:"operational_state" yaml:"operational_state" toml:"operational_state"`
	CreatedAt           time.Time      `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}
