package model

import (
	"regexp"
	"strings"
	"time"
)

// DnsRecordType is the DNS resource record type
type DnsRecordType string

const (
	DnsA     DnsRecordType = "A"
	DnsAAAA  DnsRecordType = "AAAA"
	DnsCNAME DnsRecordType = "CNAME"
	DnsPTR   DnsRecordType = "PTR"
	DnsTXT   DnsRecordType = "TXT"
	DnsSRV   DnsRecordType = "SRV"
	DnsMX    DnsRecordType = "MX"
	DnsNS    DnsRecordType = "NS"
)

// Valid reports whether t is a supported record type
func (t DnsRecordType) Valid() bool {
	switch t {
	case DnsA, DnsAAAA, DnsCNAME, DnsPTR, DnsTXT, DnsSRV, DnsMX, DnsNS:
		return true
	}
	return false
}

// DefaultDnsTTL is the TTL applied when a record set does not specify one
const DefaultDnsTTL = 3600

var dnsNamePattern = regexp.MustCompile(`^([a-zA-Z0-9_]([a-zA-Z0-9_-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9_]([a-zA-Z0-9_-]{0,61}[a-zA-Z0-9])?$`)

// NormalizeDnsName lowercases a DNS name and strips the trailing dot
func NormalizeDnsName(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
}

// ValidDnsName reports whether name is a syntactically valid DNS name
func ValidDnsName(name string) bool {
	name = NormalizeDnsName(name)
	return name != "" && len(name) <= 253 && dnsNamePattern.MatchString(name)
}

// InZone reports whether name equals zone or is a subdomain of it
func InZone(name, zone string) bool {
	name, zone = NormalizeDnsName(name), NormalizeDnsName(zone)
	return name == zone || strings.HasSuffix(name, "."+zone)
}

// DnsZone is a DNS zone records are published in
type DnsZone struct {
	ID          string    `json:"dns_zone_id" yaml:"dns_zone_id" toml:"dns_zone_id"`
	Name        string    `json:"dns_zone_name" yaml:"dns_zone_name" toml:"dns_zone_name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// DnsRecord is a single value of a record set
type DnsRecord struct {
	Value    string `json:"dns_value" yaml:"dns_value" toml:"dns_value"`
	Disabled bool   `json:"disabled" yaml:"disabled" toml:"disabled"`
	SetPTR   bool   `json:"setptr" yaml:"setptr" toml:"setptr"`
}

// DnsRecordSet is all records of one name and type that belong to an element
type DnsRecordSet struct {
	ID          string        `json:"dns_recordset_id" yaml:"dns_recordset_id" toml:"dns_recordset_id"`
	ElementID   string        `json:"element_id" yaml:"element_id" toml:"element_id"`
	ZoneID      string        `json:"dns_zone_id,omitempty" yaml:"dns_zone_id,omitempty" toml:"dns_zone_id,omitempty"`
	ZoneName    string        `json:"dns_zone_name,omitempty" yaml:"dns_zone_name,omitempty" toml:"dns_zone_name,omitempty"`
	Name        string        `json:"dns_name" yaml:"dns_name" toml:"dns_name"`
	Type        DnsRecordType `json:"dns_type" yaml:"dns_type" toml:"dns_type"`
	TTL         int           `json:"dns_ttl" yaml:"dns_ttl" toml:"dns_ttl"`
	Records     []DnsRecord   `json:"dns_records" yaml:"dns_records" toml:"dns_records"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}
