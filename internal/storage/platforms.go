package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/model"
)

const platformColumns = `id, name, chipset, vendor_name, model_name, description, rack_units, created_at, updated_at`

func scanPlatform(row scanner) (*model.Platform, error) {
	var p model.Platform
	var chipset, vendor, modelName, description sql.NullString
	err := row.Scan(&p.ID, &p.Name, &chipset, &vendor, &modelName, &description, &p.RackUnits, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Chipset = nullToString(chipset)
	p.VendorName = nullToString(vendor)
	p.ModelName = nullToString(modelName)
	p.Description = nullToString(description)
	return &p, nil
}

func (q *queries) InsertPlatform(ctx context.Context, p *model.Platform) error {
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO platforms (`+platformColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, stringToNull(p.Chipset), stringToNull(p.VendorName), stringToNull(p.ModelName),
		stringToNull(p.Description), p.RackUnits, p.CreatedAt, p.UpdatedAt)
	return err
}

func (q *queries) UpdatePlatform(ctx context.Context, p *model.Platform) error {
	p.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE platforms
		SET name = ?, chipset = ?, vendor_name = ?, model_name = ?, description = ?, rack_units = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, stringToNull(p.Chipset), stringToNull(p.VendorName), stringToNull(p.ModelName),
		stringToNull(p.Description), p.RackUnits, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetPlatform(ctx context.Context, id string) (*model.Platform, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+platformColumns+` FROM platforms WHERE id = ?`, id)
	p, err := scanPlatform(row)
	return p, notFound(err)
}

func (q *queries) GetPlatformByName(ctx context.Context, name string) (*model.Platform, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+platformColumns+` FROM platforms WHERE name = ?`, name)
	p, err := scanPlatform(row)
	return p, notFound(err)
}

func (q *queries) ListPlatforms(ctx context.Context) ([]model.Platform, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+platformColumns+` FROM platforms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying platforms: %w", err)
	}
	defer rows.Close()

	var platforms []model.Platform
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		platforms = append(platforms, *p)
	}
	return platforms, rows.Err()
}

func (q *queries) DeletePlatform(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM platforms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountPlatformElements(ctx context.Context, id string) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM elements WHERE platform_id = ?`, id)
}
