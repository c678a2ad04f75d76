package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/model"
)

const zoneColumns = `id, name, description, created_at, updated_at`

func scanZone(row scanner) (*model.DnsZone, error) {
	var z model.DnsZone
	var description sql.NullString
	if err := row.Scan(&z.ID, &z.Name, &description, &z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}
	z.Description = nullToString(description)
	return &z, nil
}

func (q *queries) InsertZone(ctx context.Context, z *model.DnsZone) error {
	z.CreatedAt = now()
	z.UpdatedAt = z.CreatedAt
	_, err := q.db.ExecContext(ctx, `INSERT INTO dns_zones (`+zoneColumns+`) VALUES (?, ?, ?, ?, ?)`,
		z.ID, z.Name, stringToNull(z.Description), z.CreatedAt, z.UpdatedAt)
	return err
}

func (q *queries) UpdateZone(ctx context.Context, z *model.DnsZone) error {
	z.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `UPDATE dns_zones SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		z.Name, stringToNull(z.Description), z.UpdatedAt, z.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetZone(ctx context.Context, id string) (*model.DnsZone, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+zoneColumns+` FROM dns_zones WHERE id = ?`, id)
	z, err := scanZone(row)
	return z, notFound(err)
}

func (q *queries) GetZoneByName(ctx context.Context, name string) (*model.DnsZone, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+zoneColumns+` FROM dns_zones WHERE name = ?`, name)
	z, err := scanZone(row)
	return z, notFound(err)
}

func (q *queries) ListZones(ctx context.Context) ([]model.DnsZone, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+zoneColumns+` FROM dns_zones ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying dns zones: %w", err)
	}
	defer rows.Close()

	var zones []model.DnsZone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dns zone: %w", err)
		}
		zones = append(zones, *z)
	}
	return zones, rows.Err()
}

func (q *queries) DeleteZone(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM dns_zones WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountZoneRecordSets(ctx context.Context, id string) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM dns_recordsets WHERE zone_id = ?`, id)
}

const recordSetSelect = `
	SELECT rs.id, rs.element_id, rs.zone_id, z.name, rs.name, rs.type, rs.ttl, rs.records,
	       rs.description, rs.created_at, rs.updated_at
	FROM dns_recordsets rs
	JOIN dns_zones z ON z.id = rs.zone_id`

func scanRecordSet(row scanner) (*model.DnsRecordSet, error) {
	var rs model.DnsRecordSet
	var records, description sql.NullString
	err := row.Scan(&rs.ID, &rs.ElementID, &rs.ZoneID, &rs.ZoneName, &rs.Name, &rs.Type, &rs.TTL,
		&records, &description, &rs.CreatedAt, &rs.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rs.Description = nullToString(description)
	if err := unmarshalJSON(records, &rs.Records); err != nil {
		return nil, err
	}
	return &rs, nil
}

func (q *queries) InsertRecordSet(ctx context.Context, rs *model.DnsRecordSet) error {
	records, err := marshalJSON(rs.Records)
	if err != nil {
		return err
	}
	rs.CreatedAt = now()
	rs.UpdatedAt = rs.CreatedAt
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO dns_recordsets (id, element_id, zone_id, name, type, ttl, records, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rs.ID, rs.ElementID, rs.ZoneID, rs.Name, rs.Type, rs.TTL, records, stringToNull(rs.Description),
		rs.CreatedAt, rs.UpdatedAt)
	return err
}

func (q *queries) UpdateRecordSet(ctx context.Context, rs *model.DnsRecordSet) error {
	records, err := marshalJSON(rs.Records)
	if err != nil {
		return err
	}
	rs.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE dns_recordsets
		SET element_id = ?, zone_id = ?, name = ?, type = ?, ttl = ?, records = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, rs.ElementID, rs.ZoneID, rs.Name, rs.Type, rs.TTL, records, stringToNull(rs.Description), rs.UpdatedAt, rs.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetRecordSet(ctx context.Context, id string) (*model.DnsRecordSet, error) {
	row := q.db.QueryRowContext(ctx, recordSetSelect+` WHERE rs.id = ?`, id)
	rs, err := scanRecordSet(row)
	return rs, notFound(err)
}

func (q *queries) FindRecordSet(ctx context.Context, zoneID, name string, recordType model.DnsRecordType) (*model.DnsRecordSet, error) {
	row := q.db.QueryRowContext(ctx, recordSetSelect+` WHERE rs.zone_id = ? AND rs.name = ? AND rs.type = ?`,
		zoneID, name, recordType)
	rs, err := scanRecordSet(row)
	return rs, notFound(err)
}

func (q *queries) ListRecordSets(ctx context.Context, elementID string) ([]model.DnsRecordSet, error) {
	rows, err := q.db.QueryContext(ctx, recordSetSelect+` WHERE rs.element_id = ? ORDER BY rs.name, rs.type`, elementID)
	if err != nil {
		return nil, fmt.Errorf("querying dns record sets: %w", err)
	}
	defer rows.Close()

	var sets []model.DnsRecordSet
	for rows.Next() {
		rs, err := scanRecordSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dns record set: %w", err)
		}
		sets = append(sets, *rs)
	}
	return sets, rows.Err()
}

func (q *queries) DeleteRecordSet(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM dns_recordsets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
