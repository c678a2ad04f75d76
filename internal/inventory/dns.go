package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type DnsManager struct {
	tx Transactor
}

func (m *DnsManager) StoreZone(ctx context.Context, z *model.DnsZone) (bool, error) {
	z.Name = model.NormalizeDnsName(z.Name)
	if !model.ValidDnsName(z.Name) {
		return false, invalid("invalid DNS zone name %q", z.Name)
	}

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		if z.ID == "" {
			z.ID = model.NewID()
			created = true
		} else if _, err := r.GetZone(ctx, z.ID); isNotFound(err) {
			created = true
		} else if err != nil {
			return err
		}

		other, err := r.GetZoneByName(ctx, z.Name)
		if err == nil && other.ID != z.ID {
			return fault.UniqueViolation(fault.IVT0951E_DNS_ZONE_ALREADY_EXISTS, "DNS zone %s already exists", z.Name)
		} else if err != nil && !isNotFound(err) {
			return err
		}

		if created {
			return r.InsertZone(ctx, z)
		}
		return r.UpdateZone(ctx, z)
	})
	if err != nil {
		return false, err
	}
	log.Info("DNS zone stored", "dns_zone_id", z.ID, "dns_zone_name", z.Name, "created", created)
	return created, nil
}

// GetZone looks a zone up by id or name.
func (m *DnsManager) GetZone(ctx context.Context, idOrName string) (*model.DnsZone, error) {
	var z *model.DnsZone
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		z, err = requireZone(ctx, r, idOrName)
		return err
	})
	return z, err
}

func (m *DnsManager) ListZones(ctx context.Context) ([]model.DnsZone, error) {
	var zones []model.DnsZone
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		zones, err = r.ListZones(ctx)
		return err
	})
	return zones, err
}

// RemoveZone deletes a zone without record sets.
func (m *DnsManager) RemoveZone(ctx context.Context, id string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		z, err := requireZone(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.CountZoneRecordSets(ctx, z.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0952E_DNS_ZONE_NOT_EMPTY, "DNS zone %s has %d record sets", z.Name, n)
		}
		return r.DeleteZone(ctx, z.ID)
	})
	if err != nil {
		return err
	}
	log.Info("DNS zone removed", "dns_zone_id", id)
	return nil
}

func requireZone(ctx context.Context, r storage.Repo, idOrName string) (*model.DnsZone, error) {
	z, err := r.GetZone(ctx, idOrName)
	if isNotFound(err) {
		z, err = r.GetZoneByName(ctx, model.NormalizeDnsName(idOrName))
	}
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0950E_DNS_ZONE_NOT_FOUND, "DNS zone %s not found", idOrName)
	}
	return z, err
}

// StoreRecordSet creates or updates a DNS record set of an element. The
// zone is referenced by id or name and must contain the record set name.
func (m *DnsManager) StoreRecordSet(ctx context.Context, elementRef string, rs *model.DnsRecordSet) (bool, error) {
	rs.Name = model.NormalizeDnsName(rs.Name)
	if !model.ValidDnsName(rs.Name) {
		return false, invalid("invalid DNS name %q", rs.Name)
	}
	rs.Type = model.DnsRecordType(strings.ToUpper(string(rs.Type)))
	if !rs.Type.Valid() {
		return false, invalid("invalid DNS record type %q", rs.Type)
	}
	if rs.TTL == 0 {
		rs.TTL = model.DefaultDnsTTL
	}
	if rs.TTL < 0 {
		return false, invalid("DNS TTL must be positive, got %d", rs.TTL)
	}
	for _, rec := range rs.Records {
		if strings.TrimSpace(rec.Value) == "" {
			return false, invalid("DNS record value is required")
		}
	}

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		rs.ElementID = e.ID

		zoneRef := rs.ZoneID
		if zoneRef == "" {
			zoneRef = rs.ZoneName
		}
		if zoneRef == "" {
			return invalid("DNS zone is required")
		}
		z, err := requireZone(ctx, r, zoneRef)
		if err != nil {
			return err
		}
		rs.ZoneID, rs.ZoneName = z.ID, z.Name
		if !model.InZone(rs.Name, z.Name) {
			return fault.Invalid(fault.IVT0954E_DNS_NAME_OUTSIDE_ZONE, "DNS name %s is not in zone %s", rs.Name, z.Name)
		}

		if rs.ID == "" {
			rs.ID = model.NewID()
			created = true
		} else if existing, err := r.GetRecordSet(ctx, rs.ID); isNotFound(err) {
			created = true
		} else if err != nil {
			return err
		} else if existing.ElementID != e.ID {
			return fault.Conflict(fault.IVT0956E_DNS_RECORDSET_OTHER_ELEMENT,
				"DNS record set %s belongs to another element", rs.ID)
		}

		other, err := r.FindRecordSet(ctx, z.ID, rs.Name, rs.Type)
		if err == nil && other.ID != rs.ID {
			return fault.UniqueViolation(fault.IVT0955E_DNS_RECORDSET_ALREADY_EXISTS,
				"DNS record set %s %s already exists", rs.Name, rs.Type)
		} else if err != nil && !isNotFound(err) {
			return err
		}

		if created {
			return r.InsertRecordSet(ctx, rs)
		}
		return r.UpdateRecordSet(ctx, rs)
	})
	if err != nil {
		return false, err
	}
	log.Info("DNS record set stored", "dns_recordset_id", rs.ID, "dns_name", rs.Name, "dns_type", rs.Type, "created", created)
	return created, nil
}

func (m *DnsManager) GetRecordSet(ctx context.Context, id string) (*model.DnsRecordSet, error) {
	var rs *model.DnsRecordSet
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		rs, err = r.GetRecordSet(ctx, id)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0953E_DNS_RECORDSET_NOT_FOUND, "DNS record set %s not found", id)
		}
		return err
	})
	return rs, err
}

func (m *DnsManager) ListRecordSets(ctx context.Context, elementRef string) ([]model.DnsRecordSet, error) {
	var sets []model.DnsRecordSet
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		sets, err = r.ListRecordSets(ctx, e.ID)
		return err
	})
	return sets, err
}

func (m *DnsManager) RemoveRecordSet(ctx context.Context, id string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		err := r.DeleteRecordSet(ctx, id)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0953E_DNS_RECORDSET_NOT_FOUND, "DNS record set %s not found", id)
		}
		return err
	})
	if err != nil {
		return err
	}
	log.Info("DNS record set removed", "dns_recordset_id", id)
	return nil
}
