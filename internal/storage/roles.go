package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/model"
)

const roleColumns = `name, display_name, plane, manageable, description`

func scanRole(row scanner) (*model.ElementRole, error) {
	var r model.ElementRole
	var displayName, description sql.NullString
	if err := row.Scan(&r.Name, &displayName, &r.Plane, &r.Manageable, &description); err != nil {
		return nil, err
	}
	r.DisplayName = nullToString(displayName)
	r.Description = nullToString(description)
	return &r, nil
}

func (q *queries) InsertRole(ctx context.Context, r *model.ElementRole) error {
	ts := now()
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO element_roles (`+roleColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.Name, stringToNull(r.DisplayName), r.Plane, r.Manageable, stringToNull(r.Description), ts, ts)
	return err
}

func (q *queries) UpdateRole(ctx context.Context, r *model.ElementRole) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE element_roles
		SET display_name = ?, plane = ?, manageable = ?, description = ?, updated_at = ?
		WHERE name = ?
	`, stringToNull(r.DisplayName), r.Plane, r.Manageable, stringToNull(r.Description), now(), r.Name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetRole(ctx context.Context, name string) (*model.ElementRole, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM element_roles WHERE name = ?`, name)
	r, err := scanRole(row)
	return r, notFound(err)
}

func (q *queries) ListRoles(ctx context.Context) ([]model.ElementRole, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM element_roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	var roles []model.ElementRole
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, *r)
	}
	return roles, rows.Err()
}

func (q *queries) DeleteRole(ctx context.Context, name string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM element_roles WHERE name = ?`, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountRoleUsage(ctx context.Context, name string) (int, error) {
	return q.count(ctx, `
		SELECT (SELECT COUNT(*) FROM elements WHERE role = ?)
		     + (SELECT COUNT(*) FROM image_roles WHERE role = ?)
	`, name, name)
}
