package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type PlatformManager struct {
	tx Transactor
}

// StorePlatform creates or updates a platform. A platform without an id is
// matched by name.
func (m *PlatformManager) StorePlatform(ctx context.Context, p *model.Platform) (bool, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return false, invalid("platform name is required")
	}
	if p.RackUnits < 0 {
		return false, invalid("rack units must not be negative")
	}
	log.Debug("Storing platform", "platform_id", p.ID, "platform_name", p.Name)

	var created bool
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		created, err = storePlatform(ctx, r, p)
		return err
	})
	if err != nil {
		return false, err
	}
	log.Info("Platform stored", "platform_id", p.ID, "platform_name", p.Name, "created", created)
	return created, nil
}

func storePlatform(ctx context.Context, r storage.Repo, p *model.Platform) (bool, error) {
	other, err := r.GetPlatformByName(ctx, p.Name)
	if err != nil && !isNotFound(err) {
		return false, err
	}
	created := false
	if p.ID == "" {
		if other != nil {
			p.ID = other.ID
		} else {
			p.ID = model.NewID()
			created = true
		}
	} else {
		if other != nil && other.ID != p.ID {
			return false, fault.UniqueViolation(fault.IVT0902E_PLATFORM_NAME_ALREADY_IN_USE,
				"platform name %s is already in use", p.Name)
		}
		if _, err := r.GetPlatform(ctx, p.ID); isNotFound(err) {
			created = true
		} else if err != nil {
			return false, err
		}
	}
	if created {
		return true, r.InsertPlatform(ctx, p)
	}
	return false, r.UpdatePlatform(ctx, p)
}

// GetPlatform looks a platform up by id or name.
func (m *PlatformManager) GetPlatform(ctx context.Context, idOrName string) (*model.Platform, error) {
	var p *model.Platform
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		p, err = requirePlatform(ctx, r, idOrName)
		return err
	})
	return p, err
}

func (m *PlatformManager) ListPlatforms(ctx context.Context) ([]model.Platform, error) {
	var platforms []model.Platform
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		platforms, err = r.ListPlatforms(ctx)
		return err
	})
	return platforms, err
}

// RemovePlatform deletes a platform no element runs on.
func (m *PlatformManager) RemovePlatform(ctx context.Context, id string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		p, err := requirePlatform(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.CountPlatformElements(ctx, p.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0903E_PLATFORM_IN_USE, "platform %s is used by %d elements", p.Name, n)
		}
		return r.DeletePlatform(ctx, p.ID)
	})
	if err != nil {
		return err
	}
	log.Info("Platform removed", "platform_id", id)
	return nil
}

func requirePlatform(ctx context.Context, r storage.Repo, idOrName string) (*model.Platform, error) {
	p, err := r.GetPlatform(ctx, idOrName)
	if isNotFound(err) {
		p, err = r.GetPlatformByName(ctx, idOrName)
	}
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0900E_PLATFORM_NOT_FOUND, "platform %s not found", idOrName)
	}
	return p, err
}
