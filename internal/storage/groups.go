package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/martinsuchenak/netinv/internal/model"
)

const groupColumns = `id, type, name, description, facility_id, tags, created_at, updated_at`

func scanGroup(row scanner) (*model.ElementGroup, error) {
	var g model.ElementGroup
	var description, facilityID, tags sql.NullString
	if err := row.Scan(&g.ID, &g.Type, &g.Name, &description, &facilityID, &tags, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Description = nullToString(description)
	g.FacilityID = nullToString(facilityID)
	if err := unmarshalJSON(tags, &g.Tags); err != nil {
		return nil, err
	}
	return &g, nil
}

func (q *queries) InsertGroup(ctx context.Context, g *model.ElementGroup) error {
	tags, err := marshalJSON(g.Tags)
	if err != nil {
		return err
	}
	g.CreatedAt = now()
	g.UpdatedAt = g.CreatedAt
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO element_groups (`+groupColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Type, g.Name, stringToNull(g.Description), stringToNull(g.FacilityID), tags, g.CreatedAt, g.UpdatedAt)
	return err
}

func (q *queries) UpdateGroup(ctx context.Context, g *model.ElementGroup) error {
	tags, err := marshalJSON(g.Tags)
	if err != nil {
		return err
	}
	g.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE element_groups
		SET type = ?, name = ?, description = ?, facility_id = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, g.Type, g.Name, stringToNull(g.Description), stringToNull(g.FacilityID), tags, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetGroup(ctx context.Context, id string) (*model.ElementGroup, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM element_groups WHERE id = ?`, id)
	g, err := scanGroup(row)
	return g, notFound(err)
}

func (q *queries) GetGroupByName(ctx context.Context, groupType, name string) (*model.ElementGroup, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+groupColumns+` FROM element_groups WHERE type = ? AND name = ?`, groupType, name)
	g, err := scanGroup(row)
	return g, notFound(err)
}

func (q *queries) ListGroups(ctx context.Context, filter *model.GroupFilter) ([]model.ElementGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM element_groups`
	var where []string
	var args []any
	if filter != nil {
		if filter.Type != "" {
			where = append(where, "type = ?")
			args = append(args, filter.Type)
		}
		if filter.Name != "" {
			where = append(where, "name LIKE ?")
			args = append(args, "%"+filter.Name+"%")
		}
		if filter.FacilityID != "" {
			where = append(where, "facility_id = ?")
			args = append(args, filter.FacilityID)
		}
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY type, name"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying groups: %w", err)
	}
	defer rows.Close()

	var groups []model.ElementGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

func (q *queries) DeleteGroup(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM element_groups WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountGroupElements(ctx context.Context, id string) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM elements WHERE group_id = ?`, id)
}
