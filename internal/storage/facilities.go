package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/model"
)

const facilityColumns = `id, name, type, location, description, created_at, updated_at`

func scanFacility(row scanner) (*model.Facility, error) {
	var f model.Facility
	var typ, location, description sql.NullString
	if err := row.Scan(&f.ID, &f.Name, &typ, &location, &description, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.Type = nullToString(typ)
	f.Location = nullToString(location)
	f.Description = nullToString(description)
	return &f, nil
}

func (q *queries) InsertFacility(ctx context.Context, f *model.Facility) error {
	f.CreatedAt = now()
	f.UpdatedAt = f.CreatedAt
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO facilities (`+facilityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.ID, f.Name, stringToNull(f.Type), stringToNull(f.Location), stringToNull(f.Description), f.CreatedAt, f.UpdatedAt)
	return err
}

func (q *queries) UpdateFacility(ctx context.Context, f *model.Facility) error {
	f.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE facilities SET name = ?, type = ?, location = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, f.Name, stringToNull(f.Type), stringToNull(f.Location), stringToNull(f.Description), f.UpdatedAt, f.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetFacility(ctx context.Context, id string) (*model.Facility, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE id = ?`, id)
	f, err := scanFacility(row)
	return f, notFound(err)
}

func (q *queries) GetFacilityByName(ctx context.Context, name string) (*model.Facility, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE name = ?`, name)
	f, err := scanFacility(row)
	return f, notFound(err)
}

func (q *queries) ListFacilities(ctx context.Context, filter *model.FacilityFilter) ([]model.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities`
	var args []any
	if filter != nil && filter.Name != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+filter.Name+"%")
	}
	query += ` ORDER BY name`

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying facilities: %w", err)
	}
	defer rows.Close()

	var facilities []model.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning facility: %w", err)
		}
		facilities = append(facilities, *f)
	}
	return facilities, rows.Err()
}

func (q *queries) DeleteFacility(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM facilities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountFacilityGroups(ctx context.Context, id string) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM element_groups WHERE facility_id = ?`, id)
}

func (q *queries) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
