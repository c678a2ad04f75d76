package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type RoleManager struct {
	tx Transactor
}

func (m *RoleManager) StoreRole(ctx context.Context, role *model.ElementRole) (bool, error) {
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return false, invalid("role name is required")
	}
	if !role.Plane.Valid() {
		return false, invalid("invalid plane %q", role.Plane)
	}

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		_, err := r.GetRole(ctx, role.Name)
		if isNotFound(err) {
			created = true
			return r.InsertRole(ctx, role)
		}
		if err != nil {
			return err
		}
		return r.UpdateRole(ctx, role)
	})
	if err != nil {
		return false, err
	}
	log.Info("Element role stored", "role", role.Name, "created", created)
	return created, nil
}

func (m *RoleManager) GetRole(ctx context.Context, name string) (*model.ElementRole, error) {
	var role *model.ElementRole
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		role, err = requireRole(ctx, r, name)
		return err
	})
	return role, err
}

func (m *RoleManager) ListRoles(ctx context.Context) ([]model.ElementRole, error) {
	var roles []model.ElementRole
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		roles, err = r.ListRoles(ctx)
		return err
	})
	return roles, err
}

// RemoveRole deletes a role no element or image refers to.
func (m *RoleManager) RemoveRole(ctx context.Context, name string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		if _, err := requireRole(ctx, r, name); err != nil {
			return err
		}
		n, err := r.CountRoleUsage(ctx, name)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0402E_ROLE_IN_USE, "element role %s is in use", name)
		}
		return r.DeleteRole(ctx, name)
	})
	if err != nil {
		return err
	}
	log.Info("Element role removed", "role", name)
	return nil
}
