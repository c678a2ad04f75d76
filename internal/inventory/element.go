package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type ElementManager struct {
	tx Transactor
}

// StoreElement creates or updates an element's settings and reports whether
// the element was created.
//
// The group is resolved by id, else by type and name. The role must exist.
// The platform is resolved by id, else by name, and registered when unknown.
// Neither the name nor the alias may collide with another element's name or alias.
func (m *ElementManager) StoreElement(ctx context.Context, e *model.Element) (bool, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Alias = strings.TrimSpace(e.Alias)
	if e.Name == "" {
		return false, invalid("element name is required")
	}
	if e.ID != "" && !model.ValidID(e.ID) {
		return false, invalid("invalid element id %q", e.ID)
	}
	if e.AdministrativeState != "" && !e.AdministrativeState.Valid() {
		return false, invalid("invalid administrative state %q", e.AdministrativeState)
	}
	if e.OperationalState != "" && !e.OperationalState.Valid() {
		return false, invalid("invalid operational state %q", e.OperationalState)
	}
	mgmt, err := normalizeManagementInterfaces(e.ManagementInterfaces)
	if err != nil {
		return false, err
	}
	e.ManagementInterfaces = mgmt
	e.Tags = uniqueStrings(e.Tags)
	log.Debug("Storing element", "element_id", e.ID, "element_name", e.Name)

	created := false
	err = m.tx.InTx(ctx, func(r storage.Repo) error {
		var existing *model.Element
		if e.ID == "" {
			e.ID = model.NewID()
		} else {
			var err error
			existing, err = r.GetElement(ctx, e.ID)
			if err != nil && !isNotFound(err) {
				return err
			}
		}
		created = existing == nil

		if err := resolveGroup(ctx, r, e, existing); err != nil {
			return err
		}
		if e.Role == "" && existing != nil {
			e.Role = existing.Role
		}
		if _, err := requireRole(ctx, r, e.Role); err != nil {
			return err
		}
		if e.PlatformID == "" && e.PlatformName == "" && existing != nil {
			e.PlatformID = existing.PlatformID
		}
		if err := resolvePlatform(ctx, r, e); err != nil {
			return err
		}
		if err := checkElementNames(ctx, r, e); err != nil {
			return err
		}

		if existing != nil {
			if e.AdministrativeState == "" {
				e.AdministrativeState = existing.AdministrativeState
			}
			if e.OperationalState == "" {
				e.OperationalState = existing.OperationalState
			}
			if e.ManagementMAC == "" {
				e.ManagementMAC = existing.ManagementMAC
			}
			e.CreatedAt = existing.CreatedAt
			return uniqueName(r.UpdateElement(ctx, e), e)
		}
		if e.AdministrativeState == "" {
			e.AdministrativeState = model.AdmNew
		}
		if e.OperationalState == "" {
			e.OperationalState = model.OpDown
		}
		return uniqueName(r.InsertElement(ctx, e), e)
	})
	if err != nil {
		return false, err
	}
	log.Info("Element stored", "element_id", e.ID, "element_name", e.Name, "created", created)
	return created, nil
}

func resolveGroup(ctx context.Context, r storage.Repo, e *model.Element, existing *model.Element) error {
	var g *model.ElementGroup
	var err error
	switch {
	case e.GroupID != "":
		g, err = requireGroup(ctx, r, e.GroupID)
	case e.GroupType != "" && e.GroupName != "":
		g, err = r.GetGroupByName(ctx, e.GroupType, e.GroupName)
		if isNotFound(err) {
			err = fault.NotFound(fault.IVT0100E_GROUP_NOT_FOUND, "element group %s/%s not found", e.GroupType, e.GroupName)
		}
	case existing != nil:
		g, err = requireGroup(ctx, r, existing.GroupID)
	default:
		return fault.NotFound(fault.IVT0100E_GROUP_NOT_FOUND, "element %s has no element group", e.Name)
	}
	if err != nil {
		return err
	}
	e.GroupID, e.GroupType, e.GroupName = g.ID, g.Type, g.Name
	return nil
}

func resolvePlatform(ctx context.Context, r storage.Repo, e *model.Element) error {
	if e.PlatformID == "" && e.PlatformName == "" {
		return nil
	}
	var p *model.Platform
	var err error
	if e.PlatformID != "" {
		p, err = r.GetPlatform(ctx, e.PlatformID)
	}
	if (e.PlatformID == "" || isNotFound(err)) && e.PlatformName != "" {
		p, err = r.GetPlatformByName(ctx, e.PlatformName)
	}
	if isNotFound(err) {
		p = &model.Platform{ID: e.PlatformID, Name: e.PlatformName}
		if p.Name == "" {
			p.Name = p.ID
		}
		if p.ID == "" {
			p.ID = model.NewID()
		}
		if err := r.InsertPlatform(ctx, p); err != nil {
			if storage.IsUniqueViolation(err) {
				return fault.UniqueViolation(fault.IVT0902E_PLATFORM_NAME_ALREADY_IN_USE,
					"platform name %s is already in use", p.Name)
			}
			return err
		}
		log.Info("Platform registered", "platform_id", p.ID, "platform_name", p.Name, "element_name", e.Name)
	} else if err != nil {
		return err
	}
	e.PlatformID, e.PlatformName = p.ID, p.Name
	return nil
}

func checkElementNames(ctx context.Context, r storage.Repo, e *model.Element) error {
	others, err := r.FindElementsByNames(ctx, e.Name, e.Alias)
	if err != nil {
		return err
	}
	for _, other := range others {
		if other.ID != e.ID {
			return elementNameInUse(e, other.Name)
		}
	}
	return nil
}

func elementNameInUse(e *model.Element, owner string) *fault.Fault {
	return fault.UniqueViolation(fault.IVT0307E_ELEMENT_NAME_ALREADY_IN_USE,
		"element name %s or alias %s is already in use by %s", e.Name, e.Alias, owner)
}

func uniqueName(err error, e *model.Element) error {
	if storage.IsUniqueViolation(err) {
		f := elementNameInUse(e, "another element")
		f.Cause = err
		return f
	}
	return err
}

// normalizeManagementInterfaces merges entries by name, later entries
// replacing earlier ones, and sorts the result by name.
func normalizeManagementInterfaces(in []model.ManagementInterface) ([]model.ManagementInterface, error) {
	byName := make(map[string]model.ManagementInterface, len(in))
	for _, mi := range in {
		mi.Name = strings.TrimSpace(mi.Name)
		if mi.Name == "" {
			return nil, invalid("management interface name is required")
		}
		if mi.Port < 0 || mi.Port > 65535 {
			return nil, invalid("management interface %s: invalid port %d", mi.Name, mi.Port)
		}
		byName[mi.Name] = mi
	}
	out := make([]model.ManagementInterface, 0, len(byName))
	for _, mi := range byName {
		out = append(out, mi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetElement looks an element up by id, name or alias.
func (m *ElementManager) GetElement(ctx context.Context, ref string) (*model.Element, error) {
	var e *model.Element
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		e, err = requireElement(ctx, r, ref)
		return err
	})
	return e, err
}

// GetElementByName looks an element up by name or alias only.
func (m *ElementManager) GetElementByName(ctx context.Context, nameOrAlias string) (*model.Element, error) {
	var e *model.Element
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		e, err = r.GetElementByName(ctx, nameOrAlias)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0300E_ELEMENT_NOT_FOUND, "element %s not found", nameOrAlias)
		}
		return err
	})
	return e, err
}

func (m *ElementManager) ListElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error) {
	if filter != nil && filter.AdministrativeState != "" && !filter.AdministrativeState.Valid() {
		return nil, invalid("invalid administrative state %q", filter.AdministrativeState)
	}
	var elements []model.Element
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		elements, err = r.ListElements(ctx, filter)
		return err
	})
	return elements, err
}

func (m *ElementManager) UpdateAdministrativeState(ctx context.Context, ref string, state model.AdministrativeState) error {
	if !state.Valid() {
		return invalid("invalid administrative state %q", state)
	}
	var e *model.Element
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		e, err = requireElement(ctx, r, ref)
		if err != nil {
			return err
		}
		return r.SetElementAdministrativeState(ctx, e.ID, state)
	})
	if err != nil {
		return err
	}
	log.Info("Element administrative state updated", "element_id", e.ID, "state", state)
	return nil
}

// UpdateOperationalState sets the element's operational state. An element
// going DOWN or DETACHED takes all its physical interfaces DOWN.
func (m *ElementManager) UpdateOperationalState(ctx context.Context, ref string, state model.OperationalState) error {
	if !state.Valid() {
		return invalid("invalid operational state %q", state)
	}
	var e *model.Element
	var ifpsDown int
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		e, err = requireElement(ctx, r, ref)
		if err != nil {
			return err
		}
		if e.OperationalState == state {
			return nil
		}
		if err := r.SetElementOperationalState(ctx, e.ID, state); err != nil {
			return err
		}
		if state == model.OpDown || state == model.OpDetached {
			ifpsDown, err = r.SetInterfacesOperationalState(ctx, e.ID, model.IfDown)
		}
		return err
	})
	if err != nil {
		return err
	}
	if e.OperationalState != state {
		log.Info("Element operational state updated", "element_id", e.ID, "from", e.OperationalState, "to", state, "interfaces_down", ifpsDown)
	}
	return nil
}

// FillManagementMAC records a learned MAC address if the element has none.
func (m *ElementManager) FillManagementMAC(ctx context.Context, id, mac string) (bool, error) {
	filled := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, id)
		if err != nil {
			return err
		}
		if e.ManagementMAC != "" || mac == "" {
			return nil
		}
		filled = true
		return r.SetElementManagementMAC(ctx, e.ID, mac)
	})
	if err != nil {
		return false, err
	}
	if filled {
		log.Info("Element management MAC learned", "element_id", id, "mgmt_mac", mac)
	}
	return filled, nil
}

// RemoveElement deletes an element that is not ACTIVE. Links from other
// elements' interfaces are cleared first; interfaces, installed images and
// DNS record sets go with the element.
func (m *ElementManager) RemoveElement(ctx context.Context, ref string) error {
	log.Debug("Removing element", "element", ref)
	var e *model.Element
	var cleared int
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		e, err = requireElement(ctx, r, ref)
		if err != nil {
			return err
		}
		if e.AdministrativeState == model.AdmActive {
			return fault.Conflict(fault.IVT0303E_ELEMENT_ACTIVE, "element %s is ACTIVE and cannot be removed", e.Name)
		}
		cleared, err = r.ClearNeighborReferences(ctx, e.ID)
		if err != nil {
			return err
		}
		return r.DeleteElement(ctx, e.ID)
	})
	if err != nil {
		return err
	}
	log.Info("Element removed", "element_id", e.ID, "element_name", e.Name, "neighbor_links_cleared", cleared)
	return nil
}
