package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type GroupManager struct {
	tx Transactor
}

// StoreGroup creates or updates an element group. A group without an id is
// matched by type and name, so storing the same settings twice is an update.
func (m *GroupManager) StoreGroup(ctx context.Context, g *model.ElementGroup) (bool, error) {
	g.Type = strings.TrimSpace(g.Type)
	g.Name = strings.TrimSpace(g.Name)
	if g.Type == "" || g.Name == "" {
		return false, invalid("group type and name are required")
	}
	g.Tags = uniqueStrings(g.Tags)
	log.Debug("Storing element group", "group_id", g.ID, "group_type", g.Type, "group_name", g.Name)

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		if g.FacilityID != "" {
			f, err := requireFacility(ctx, r, g.FacilityID)
			if err != nil {
				return err
			}
			g.FacilityID = f.ID
		}

		other, err := r.GetGroupByName(ctx, g.Type, g.Name)
		if err != nil && !isNotFound(err) {
			return err
		}
		if g.ID == "" {
			if other != nil {
				g.ID = other.ID
			} else {
				g.ID = model.NewID()
				created = true
			}
		} else {
			if other != nil && other.ID != g.ID {
				return fault.UniqueViolation(fault.IVT0103E_GROUP_NAME_ALREADY_IN_USE,
					"group name %s/%s is already in use", g.Type, g.Name)
			}
			if _, err := r.GetGroup(ctx, g.ID); isNotFound(err) {
				created = true
			} else if err != nil {
				return err
			}
		}

		if created {
			return r.InsertGroup(ctx, g)
		}
		return r.UpdateGroup(ctx, g)
	})
	if err != nil {
		return false, err
	}
	log.Info("Element group stored", "group_id", g.ID, "group_type", g.Type, "group_name", g.Name, "created", created)
	return created, nil
}

func (m *GroupManager) GetGroup(ctx context.Context, id string) (*model.ElementGroup, error) {
	var g *model.ElementGroup
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		g, err = requireGroup(ctx, r, id)
		return err
	})
	return g, err
}

func (m *GroupManager) GetGroupByName(ctx context.Context, groupType, name string) (*model.ElementGroup, error) {
	var g *model.ElementGroup
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		g, err = r.GetGroupByName(ctx, groupType, name)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0100E_GROUP_NOT_FOUND, "element group %s/%s not found", groupType, name)
		}
		return err
	})
	return g, err
}

func (m *GroupManager) ListGroups(ctx context.Context, filter *model.GroupFilter) ([]model.ElementGroup, error) {
	var groups []model.ElementGroup
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		groups, err = r.ListGroups(ctx, filter)
		return err
	})
	return groups, err
}

// ListGroupElements returns the elements that are members of a group.
func (m *GroupManager) ListGroupElements(ctx context.Context, id string) ([]model.Element, error) {
	var elements []model.Element
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		g, err := requireGroup(ctx, r, id)
		if err != nil {
			return err
		}
		elements, err = r.ListElements(ctx, &model.ElementFilter{GroupID: g.ID})
		return err
	})
	return elements, err
}

// RemoveGroup deletes an empty group.
func (m *GroupManager) RemoveGroup(ctx context.Context, id string) error {
	log.Debug("Removing element group", "group_id", id)
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		g, err := requireGroup(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.CountGroupElements(ctx, g.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0104E_GROUP_NOT_EMPTY, "element group %s/%s has %d members", g.Type, g.Name, n)
		}
		return r.DeleteGroup(ctx, g.ID)
	})
	if err != nil {
		return err
	}
	log.Info("Element group removed", "group_id", id)
	return nil
}
