package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type FacilityManager struct {
	tx Transactor
}

// StoreFacility creates or updates a facility and reports whether it was created.
func (m *FacilityManager) StoreFacility(ctx context.Context, f *model.Facility) (bool, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return false, invalid("facility name is required")
	}
	log.Debug("Storing facility", "facility_id", f.ID, "facility_name", f.Name)

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		if f.ID == "" {
			f.ID = model.NewID()
			created = true
		} else if _, err := r.GetFacility(ctx, f.ID); isNotFound(err) {
			created = true
		} else if err != nil {
			return err
		}

		other, err := r.GetFacilityByName(ctx, f.Name)
		if err == nil && other.ID != f.ID {
			return fault.UniqueViolation(fault.IVT0601E_FACILITY_NAME_ALREADY_IN_USE, "facility name %s is already in use", f.Name)
		} else if err != nil && !isNotFound(err) {
			return err
		}

		if created {
			return r.InsertFacility(ctx, f)
		}
		return r.UpdateFacility(ctx, f)
	})
	if err != nil {
		return false, err
	}
	log.Info("Facility stored", "facility_id", f.ID, "facility_name", f.Name, "created", created)
	return created, nil
}

// GetFacility looks a facility up by id or name.
func (m *FacilityManager) GetFacility(ctx context.Context, idOrName string) (*model.Facility, error) {
	var f *model.Facility
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		f, err = requireFacility(ctx, r, idOrName)
		return err
	})
	return f, err
}

func (m *FacilityManager) ListFacilities(ctx context.Context, filter *model.FacilityFilter) ([]model.Facility, error) {
	var facilities []model.Facility
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		facilities, err = r.ListFacilities(ctx, filter)
		return err
	})
	return facilities, err
}

// RemoveFacility deletes a facility no group refers to.
func (m *FacilityManager) RemoveFacility(ctx context.Context, id string) error {
	log.Debug("Removing facility", "facility_id", id)
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		f, err := requireFacility(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.CountFacilityGroups(ctx, f.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0602E_FACILITY_NOT_EMPTY, "facility %s is referenced by %d groups", f.Name, n)
		}
		return r.DeleteFacility(ctx, f.ID)
	})
	if err != nil {
		return err
	}
	log.Info("Facility removed", "facility_id", id)
	return nil
}

func requireFacility(ctx context.Context, r storage.Repo, idOrName string) (*model.Facility, error) {
	f, err := r.GetFacility(ctx, idOrName)
	if isNotFound(err) {
		f, err = r.GetFacilityByName(ctx, idOrName)
	}
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0600E_FACILITY_NOT_FOUND, "facility %s not found", idOrName)
	}
	return f, err
}
