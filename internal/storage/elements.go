package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/martinsuchenak/netinv/internal/model"
)

const elementSelect = `
	SELECT e.id, e.name, e.alias, e.group_id, g.type, g.name, e.role,
	       e.platform_id, p.name, e.adm_state, e.op_state, e.serial_number,
	       e.asset_id, e.mgmt_mac, e.description, e.tags, e.mgmt_interfaces,
	       e.created_at, e.updated_at
	FROM elements e
	JOIN element_groups g ON g.id = e.group_id
	LEFT JOIN platforms p ON p.id = e.platform_id`

func scanElement(row scanner) (*model.Element, error) {
	var e model.Element
	var alias, platformID, platformName, serial, assetID, mac, description, tags, mgmt sql.NullString
	err := row.Scan(&e.ID, &e.Name, &alias, &e.GroupID, &e.GroupType, &e.GroupName, &e.Role,
		&platformID, &platformName, &e.AdministrativeState, &e.OperationalState, &serial,
		&assetID, &mac, &description, &tags, &mgmt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Alias = nullToString(alias)
	e.PlatformID = nullToString(platformID)
	e.PlatformName = nullToString(platformName)
	e.SerialNumber = nullToString(serial)
	e.AssetID = nullToString(assetID)
	e.ManagementMAC = nullToString(mac)
	e.Description = nullToString(description)
	if err := unmarshalJSON(tags, &e.Tags); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(mgmt, &e.ManagementInterfaces); err != nil {
		return nil, err
	}
	return &e, nil
}

func (q *queries) InsertElement(ctx context.Context, e *model.Element) error {
	tags, err := marshalJSON(e.Tags)
	if err != nil {
		return err
	}
	mgmt, err := marshalJSON(e.ManagementInterfaces)
	if err != nil {
		return err
	}
	e.CreatedAt = now()
	e.UpdatedAt = e.CreatedAt
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO elements (id, name, alias, group_id, role, platform_id, adm_state, op_state,
			serial_number, asset_id, mgmt_mac, description, tags, mgmt_interfaces, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Name, stringToNull(e.Alias), e.GroupID, e.Role, stringToNull(e.PlatformID),
		e.AdministrativeState, e.OperationalState, stringToNull(e.SerialNumber), stringToNull(e.AssetID),
		stringToNull(e.ManagementMAC), stringToNull(e.Description), tags, mgmt, e.CreatedAt, e.UpdatedAt)
	return err
}

func (q *queries) UpdateElement(ctx context.Context, e *model.Element) error {
	tags, err := marshalJSON(e.Tags)
	if err != nil {
		return err
	}
	mgmt, err := marshalJSON(e.ManagementInterfaces)
	if err != nil {
		return err
	}
	e.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE elements
		SET name = ?, alias = ?, group_id = ?, role = ?, platform_id = ?, adm_state = ?, op_state = ?,
			serial_number = ?, asset_id = ?, mgmt_mac = ?, description = ?, tags = ?, mgmt_interfaces = ?,
			updated_at = ?
		WHERE id = ?
	`, e.Name, stringToNull(e.Alias), e.GroupID, e.Role, stringToNull(e.PlatformID),
		e.AdministrativeState, e.OperationalState, stringToNull(e.SerialNumber), stringToNull(e.AssetID),
		stringToNull(e.ManagementMAC), stringToNull(e.Description), tags, mgmt, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetElement(ctx context.Context, id string) (*model.Element, error) {
	row := q.db.QueryRowContext(ctx, elementSelect+` WHERE e.id = ?`, id)
	e, err := scanElement(row)
	return e, notFound(err)
}

func (q *queries) GetElementByName(ctx context.Context, nameOrAlias string) (*model.Element, error) {
	row := q.db.QueryRowContext(ctx, elementSelect+` WHERE e.name = ? OR e.alias = ? ORDER BY e.name = ? DESC LIMIT 1`,
		nameOrAlias, nameOrAlias, nameOrAlias)
	e, err := scanElement(row)
	return e, notFound(err)
}

func (q *queries) FindElementsByNames(ctx context.Context, names ...string) ([]model.Element, error) {
	var args []any
	for _, n := range names {
		if n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return nil, nil
	}
	in := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")
	args = append(args, args...)
	return q.queryElements(ctx, elementSelect+` WHERE e.name IN (`+in+`) OR e.alias IN (`+in+`) ORDER BY e.name`, args...)
}

func (q *queries) ListElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error) {
	query := elementSelect
	var where []string
	var args []any
	if filter != nil {
		if filter.GroupID != "" {
			where = append(where, "e.group_id = ?")
			args = append(args, filter.GroupID)
		}
		if filter.Role != "" {
			where = append(where, "e.role = ?")
			args = append(args, filter.Role)
		}
		if filter.PlatformID != "" {
			where = append(where, "e.platform_id = ?")
			args = append(args, filter.PlatformID)
		}
		if filter.Name != "" {
			where = append(where, "(e.name LIKE ? OR e.alias LIKE ?)")
			args = append(args, "%"+filter.Name+"%", "%"+filter.Name+"%")
		}
		if filter.Tag != "" {
			where = append(where, "EXISTS (SELECT 1 FROM json_each(e.tags) WHERE json_each.value = ?)")
			args = append(args, filter.Tag)
		}
		if filter.AdministrativeState != "" {
			where = append(where, "e.adm_state = ?")
			args = append(args, filter.AdministrativeState)
		}
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.name"
	return q.queryElements(ctx, query, args...)
}

func (q *queries) queryElements(ctx context.Context, query string, args ...any) ([]model.Element, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	var elements []model.Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning element: %w", err)
		}
		elements = append(elements, *e)
	}
	return elements, rows.Err()
}

func (q *queries) DeleteElement(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM elements WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) SetElementAdministrativeState(ctx context.Context, id string, state model.AdministrativeState) error {
	return q.updateElementColumn(ctx, id, "adm_state", state)
}

func (q *queries) SetElementOperationalState(ctx context.Context, id string, state model.OperationalState) error {
	return q.updateElementColumn(ctx, id, "op_state", state)
}

func (q *queries) SetElementManagementMAC(ctx context.Context, id, mac string) error {
	return q.updateElementColumn(ctx, id, "mgmt_mac", stringToNull(mac))
}

// updateElementColumn sets a single column; column is never user input.
func (q *queries) updateElementColumn(ctx context.Context, id, column string, value any) error {
	res, err := q.db.ExecContext(ctx, `UPDATE elements SET `+column+` = ?, updated_at = ? WHERE id = ?`, value, now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
