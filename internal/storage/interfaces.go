package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/model"
)

const physicalInterfaceSelect = `
	SELECT i.element_id, i.name, i.alias, i.category, i.bandwidth, i.mac_address,
	       i.adm_state, i.op_state, i.ifc_name, i.neighbor_element_id, n.name,
	       i.neighbor_ifp_name, i.created_at, i.updated_at
	FROM physical_interfaces i
	LEFT JOIN elements n ON n.id = i.neighbor_element_id`

func scanPhysicalInterface(row scanner) (*model.PhysicalInterface, error) {
	var ifp model.PhysicalInterface
	var alias, category, bandwidth, mac, ifc, neighborID, neighborName, neighborIfp sql.NullString
	err := row.Scan(&ifp.ElementID, &ifp.Name, &alias, &category, &bandwidth, &mac,
		&ifp.AdministrativeState, &ifp.OperationalState, &ifc, &neighborID, &neighborName,
		&neighborIfp, &ifp.CreatedAt, &ifp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ifp.Alias = nullToString(alias)
	ifp.Category = nullToString(category)
	ifp.MACAddress = nullToString(mac)
	ifp.ContainerInterface = nullToString(ifc)
	if bandwidth.Valid && bandwidth.String != "" {
		bw, err := model.ParseBandwidth(bandwidth.String)
		if err != nil {
			return nil, err
		}
		ifp.Bandwidth = bw
	}
	if neighborID.Valid {
		ifp.Neighbor = &model.InterfaceNeighbor{
			ElementID:     neighborID.String,
			ElementName:   nullToString(neighborName),
			InterfaceName: nullToString(neighborIfp),
		}
	}
	return &ifp, nil
}

func neighborColumns(n *model.InterfaceNeighbor) (sql.NullString, sql.NullString) {
	if n == nil {
		return sql.NullString{}, sql.NullString{}
	}
	return stringToNull(n.ElementID), stringToNull(n.InterfaceName)
}

func (q *queries) InsertPhysicalInterface(ctx context.Context, ifp *model.PhysicalInterface) error {
	neighborID, neighborIfp := neighborColumns(ifp.Neighbor)
	ifp.CreatedAt = now()
	ifp.UpdatedAt = ifp.CreatedAt
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO physical_interfaces (element_id, name, alias, category, bandwidth, mac_address,
			adm_state, op_state, ifc_name, neighbor_element_id, neighbor_ifp_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ifp.ElementID, ifp.Name, stringToNull(ifp.Alias), stringToNull(ifp.Category),
		stringToNull(ifp.Bandwidth.String()), stringToNull(ifp.MACAddress), ifp.AdministrativeState,
		ifp.OperationalState, stringToNull(ifp.ContainerInterface), neighborID, neighborIfp,
		ifp.CreatedAt, ifp.UpdatedAt)
	return err
}

// UpdatePhysicalInterface writes an interface's settings. The neighbor
// columns are left alone; links change only through SetNeighbor.
func (q *queries) UpdatePhysicalInterface(ctx context.Context, ifp *model.PhysicalInterface) error {
	ifp.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE physical_interfaces
		SET alias = ?, category = ?, bandwidth = ?, mac_address = ?, adm_state = ?, op_state = ?,
			ifc_name = ?, updated_at = ?
		WHERE element_id = ? AND name = ?
	`, stringToNull(ifp.Alias), stringToNull(ifp.Category), stringToNull(ifp.Bandwidth.String()),
		stringToNull(ifp.MACAddress), ifp.AdministrativeState, ifp.OperationalState,
		stringToNull(ifp.ContainerInterface), ifp.UpdatedAt,
		ifp.ElementID, ifp.Name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetPhysicalInterface(ctx context.Context, elementID, name string) (*model.PhysicalInterface, error) {
	row := q.db.QueryRowContext(ctx, physicalInterfaceSelect+` WHERE i.element_id = ? AND i.name = ?`, elementID, name)
	ifp, err := scanPhysicalInterface(row)
	return ifp, notFound(err)
}

func (q *queries) ListPhysicalInterfaces(ctx context.Context, elementID string) ([]model.PhysicalInterface, error) {
	rows, err := q.db.QueryContext(ctx, physicalInterfaceSelect+` WHERE i.element_id = ? ORDER BY i.name`, elementID)
	if err != nil {
		return nil, fmt.Errorf("querying physical interfaces: %w", err)
	}
	defer rows.Close()

	var ifps []model.PhysicalInterface
	for rows.Next() {
		ifp, err := scanPhysicalInterface(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning physical interface: %w", err)
		}
		ifps = append(ifps, *ifp)
	}
	return ifps, rows.Err()
}

func (q *queries) DeletePhysicalInterface(ctx context.Context, elementID, name string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM physical_interfaces WHERE element_id = ? AND name = ?`, elementID, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) SetNeighbor(ctx context.Context, elementID, name string, neighbor *model.InterfaceNeighbor) error {
	neighborID, neighborIfp := neighborColumns(neighbor)
	res, err := q.db.ExecContext(ctx, `
		UPDATE physical_interfaces SET neighbor_element_id = ?, neighbor_ifp_name = ?, updated_at = ?
		WHERE element_id = ? AND name = ?
	`, neighborID, neighborIfp, now(), elementID, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) ClearNeighborReferences(ctx context.Context, elementID string) (int, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE physical_interfaces SET neighbor_element_id = NULL, neighbor_ifp_name = NULL, updated_at = ?
		WHERE neighbor_element_id = ? AND element_id != ?
	`, now(), elementID, elementID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (q *queries) SetInterfacesOperationalState(ctx context.Context, elementID string, state model.InterfaceState) (int, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE physical_interfaces SET op_state = ?, updated_at = ?
		WHERE element_id = ? AND op_state != ?
	`, state, now(), elementID, state)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

const logicalInterfaceColumns = `element_id, name, ifc_name, routing_instance, vlan_id, addresses, adm_state, op_state, created_at, updated_at`

func scanLogicalInterface(row scanner) (*model.LogicalInterface, error) {
	var ifl model.LogicalInterface
	var routing, addresses sql.NullString
	err := row.Scan(&ifl.ElementID, &ifl.Name, &ifl.ContainerInterface, &routing, &ifl.VlanID,
		&addresses, &ifl.AdministrativeState, &ifl.OperationalState, &ifl.CreatedAt, &ifl.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ifl.RoutingInstance = nullToString(routing)
	if err := unmarshalJSON(addresses, &ifl.Addresses); err != nil {
		return nil, err
	}
	return &ifl, nil
}

func (q *queries) InsertLogicalInterface(ctx context.Context, ifl *model.LogicalInterface) error {
	addresses, err := marshalJSON(ifl.Addresses)
	if err != nil {
		return err
	}
	ifl.CreatedAt = now()
	ifl.UpdatedAt = ifl.CreatedAt
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO logical_interfaces (`+logicalInterfaceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ifl.ElementID, ifl.Name, ifl.ContainerInterface, stringToNull(ifl.RoutingInstance), ifl.VlanID,
		addresses, ifl.AdministrativeState, ifl.OperationalState, ifl.CreatedAt, ifl.UpdatedAt)
	return err
}

func (q *queries) UpdateLogicalInterface(ctx context.Context, ifl *model.LogicalInterface) error {
	addresses, err := marshalJSON(ifl.Addresses)
	if err != nil {
		return err
	}
	ifl.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE logical_interfaces
		SET ifc_name = ?, routing_instance = ?, vlan_id = ?, addresses = ?, adm_state = ?, op_state = ?, updated_at = ?
		WHERE element_id = ? AND name = ?
	`, ifl.ContainerInterface, stringToNull(ifl.RoutingInstance), ifl.VlanID, addresses,
		ifl.AdministrativeState, ifl.OperationalState, ifl.UpdatedAt, ifl.ElementID, ifl.Name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) GetLogicalInterface(ctx context.Context, elementID, name string) (*model.LogicalInterface, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+logicalInterfaceColumns+` FROM logical_interfaces WHERE element_id = ? AND name = ?`, elementID, name)
	ifl, err := scanLogicalInterface(row)
	return ifl, notFound(err)
}

func (q *queries) ListLogicalInterfaces(ctx context.Context, elementID string) ([]model.LogicalInterface, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+logicalInterfaceColumns+` FROM logical_interfaces WHERE element_id = ? ORDER BY name`, elementID)
	if err != nil {
		return nil, fmt.Errorf("querying logical interfaces: %w", err)
	}
	defer rows.Close()

	var ifls []model.LogicalInterface
	for rows.Next() {
		ifl, err := scanLogicalInterface(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning logical interface: %w", err)
		}
		ifls = append(ifls, *ifl)
	}
	return ifls, rows.Err()
}

func (q *queries) DeleteLogicalInterface(ctx context.Context, elementID, name string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM logical_interfaces WHERE element_id = ? AND name = ?`, elementID, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
