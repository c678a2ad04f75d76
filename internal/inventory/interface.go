package inventory

import (
	"context"
	"net/netip"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type InterfaceManager struct {
	tx Transactor
}

func normalizePhysicalInterface(ifp *model.PhysicalInterface) error {
	ifp.Name = strings.TrimSpace(ifp.Name)
	if ifp.Name == "" {
		return invalid("physical interface name is required")
	}
	if !ifp.Bandwidth.Valid() {
		return invalid("physical interface %s: invalid bandwidth", ifp.Name)
	}
	if ifp.AdministrativeState == "" {
		ifp.AdministrativeState = model.IfUp
	}
	if ifp.OperationalState == "" {
		ifp.OperationalState = model.IfDown
	}
	if !ifp.AdministrativeState.Valid() || !ifp.OperationalState.Valid() {
		return invalid("physical interface %s: invalid state", ifp.Name)
	}
	return nil
}

func samePhysicalSettings(a, b *model.PhysicalInterface) bool {
	return a.Alias == b.Alias &&
		a.Category == b.Category &&
		a.Bandwidth == b.Bandwidth &&
		a.MACAddress == b.MACAddress &&
		a.AdministrativeState == b.AdministrativeState &&
		a.OperationalState == b.OperationalState &&
		a.ContainerInterface == b.ContainerInterface
}

// StorePhysicalInterfaces reconciles an element's physical interfaces with
// ifps by name: new interfaces are added, changed ones updated and absent
// ones removed. Existing neighbor links are kept unless ifps names a neighbor.
func (m *InterfaceManager) StorePhysicalInterfaces(ctx context.Context, elementRef string, ifps []model.PhysicalInterface) error {
	seen := make(map[string]bool, len(ifps))
	for i := range ifps {
		if err := normalizePhysicalInterface(&ifps[i]); err != nil {
			return err
		}
		if seen[ifps[i].Name] {
			return invalid("duplicate physical interface %s", ifps[i].Name)
		}
		seen[ifps[i].Name] = true
	}

	var added, updated, removed int
	var elementID string
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		elementID = e.ID

		current, err := r.ListPhysicalInterfaces(ctx, e.ID)
		if err != nil {
			return err
		}
		byName := make(map[string]*model.PhysicalInterface, len(current))
		for i := range current {
			byName[current[i].Name] = &current[i]
			if !seen[current[i].Name] {
				if err := removePhysicalInterface(ctx, r, &current[i]); err != nil {
					return err
				}
				removed++
			}
		}

		for i := range ifps {
			ifp := &ifps[i]
			ifp.ElementID = e.ID
			neighbor := ifp.Neighbor
			old, exists := byName[ifp.Name]
			switch {
			case !exists:
				ifp.Neighbor = nil
				if err := r.InsertPhysicalInterface(ctx, ifp); err != nil {
					return err
				}
				added++
			case !samePhysicalSettings(old, ifp):
				// Links are only written through SetNeighbor; an earlier
				// entry may already have moved this interface's link.
				if err := r.UpdatePhysicalInterface(ctx, ifp); err != nil {
					return err
				}
				updated++
			}
			if neighbor != nil && neighbor.ElementID != "" {
				if _, err := linkNeighbor(ctx, r, e.ID, ifp.Name, neighbor.ElementID, neighbor.InterfaceName); err != nil {
					return err
				}
			}
		}
		for i := range ifps {
			stored, err := r.GetPhysicalInterface(ctx, e.ID, ifps[i].Name)
			if err != nil {
				return err
			}
			ifps[i].Neighbor = stored.Neighbor
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Physical interfaces stored", "element_id", elementID, "added", added, "updated", updated, "removed", removed)
	return nil
}

// StorePhysicalInterface adds or updates a single physical interface.
func (m *InterfaceManager) StorePhysicalInterface(ctx context.Context, elementRef string, ifp *model.PhysicalInterface) (bool, error) {
	if err := normalizePhysicalInterface(ifp); err != nil {
		return false, err
	}
	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifp.ElementID = e.ID
		neighbor := ifp.Neighbor
		old, err := r.GetPhysicalInterface(ctx, e.ID, ifp.Name)
		switch {
		case isNotFound(err):
			created = true
			ifp.Neighbor = nil
			err = r.InsertPhysicalInterface(ctx, ifp)
		case err == nil && !samePhysicalSettings(old, ifp):
			err = r.UpdatePhysicalInterface(ctx, ifp)
		}
		if err != nil {
			return err
		}
		if neighbor != nil && neighbor.ElementID != "" {
			if _, err := linkNeighbor(ctx, r, e.ID, ifp.Name, neighbor.ElementID, neighbor.InterfaceName); err != nil {
				return err
			}
		}
		stored, err := r.GetPhysicalInterface(ctx, e.ID, ifp.Name)
		if err != nil {
			return err
		}
		*ifp = *stored
		return nil
	})
	if err != nil {
		return false, err
	}
	log.Info("Physical interface stored", "element_id", ifp.ElementID, "ifp_name", ifp.Name, "created", created)
	return created, nil
}

func (m *InterfaceManager) GetPhysicalInterface(ctx context.Context, elementRef, name string) (*model.PhysicalInterface, error) {
	var ifp *model.PhysicalInterface
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifp, err = requirePhysicalInterface(ctx, r, e, name)
		return err
	})
	return ifp, err
}

func (m *InterfaceManager) ListPhysicalInterfaces(ctx context.Context, elementRef string) ([]model.PhysicalInterface, error) {
	var ifps []model.PhysicalInterface
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifps, err = r.ListPhysicalInterfaces(ctx, e.ID)
		return err
	})
	return ifps, err
}

// RemovePhysicalInterface deletes an interface and clears its partner's back-link.
func (m *InterfaceManager) RemovePhysicalInterface(ctx context.Context, elementRef, name string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifp, err := requirePhysicalInterface(ctx, r, e, name)
		if err != nil {
			return err
		}
		return removePhysicalInterface(ctx, r, ifp)
	})
	if err != nil {
		return err
	}
	log.Info("Physical interface removed", "element", elementRef, "ifp_name", name)
	return nil
}

func removePhysicalInterface(ctx context.Context, r storage.Repo, ifp *model.PhysicalInterface) error {
	if err := clearBackLink(ctx, r, ifp); err != nil {
		return err
	}
	return r.DeletePhysicalInterface(ctx, ifp.ElementID, ifp.Name)
}

func requirePhysicalInterface(ctx context.Context, r storage.Repo, e *model.Element, name string) (*model.PhysicalInterface, error) {
	ifp, err := r.GetPhysicalInterface(ctx, e.ID, name)
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0350E_IFP_NOT_FOUND, "physical interface %s not found on element %s", name, e.Name)
	}
	return ifp, err
}

// LinkNeighbor links a physical interface to a neighbor's interface and
// reports whether any link changed. The neighbor element is referenced by
// id or name. Both directions are set when the neighbor interface exists;
// otherwise only the local side carries the reference. Links that
// previously pointed elsewhere are cleared on the old partner.
func (m *InterfaceManager) LinkNeighbor(ctx context.Context, elementRef, ifpName, neighborRef, neighborIfp string) (bool, error) {
	if strings.TrimSpace(neighborIfp) == "" {
		return false, invalid("neighbor interface name is required")
	}
	changed := false
	var elementID, neighborID string
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		n, err := requireElement(ctx, r, neighborRef)
		if err != nil {
			return err
		}
		elementID, neighborID = e.ID, n.ID
		if _, err := requirePhysicalInterface(ctx, r, e, ifpName); err != nil {
			return err
		}
		changed, err = linkNeighbor(ctx, r, e.ID, ifpName, n.ID, neighborIfp)
		return err
	})
	if err != nil {
		return false, err
	}
	if changed {
		log.Info("Neighbor linked", "element_id", elementID, "ifp_name", ifpName, "neighbor_id", neighborID, "neighbor_ifp_name", neighborIfp)
	}
	return changed, nil
}

func linkNeighbor(ctx context.Context, r storage.Repo, elementID, ifpName, neighborID, neighborIfp string) (bool, error) {
	if elementID == neighborID && ifpName == neighborIfp {
		return false, invalid("interface %s cannot be linked to itself", ifpName)
	}
	local, err := r.GetPhysicalInterface(ctx, elementID, ifpName)
	if err != nil {
		return false, err
	}
	if _, err := r.GetElement(ctx, neighborID); isNotFound(err) {
		return false, fault.NotFound(fault.IVT0300E_ELEMENT_NOT_FOUND, "neighbor element %s not found", neighborID)
	} else if err != nil {
		return false, err
	}

	changed := false
	if local.Neighbor != nil && !local.LinkedTo(neighborID, neighborIfp) {
		if err := clearBackLink(ctx, r, local); err != nil {
			return false, err
		}
	}
	if local.LinkTo(neighborID, neighborIfp) {
		if err := r.SetNeighbor(ctx, elementID, ifpName, local.Neighbor); err != nil {
			return false, err
		}
		changed = true
	}

	remote, err := r.GetPhysicalInterface(ctx, neighborID, neighborIfp)
	if isNotFound(err) {
		return changed, nil
	}
	if err != nil {
		return false, err
	}
	if remote.Neighbor != nil && !remote.LinkedTo(elementID, ifpName) {
		if err := clearBackLink(ctx, r, remote); err != nil {
			return false, err
		}
	}
	if remote.LinkTo(elementID, ifpName) {
		if err := r.SetNeighbor(ctx, neighborID, neighborIfp, remote.Neighbor); err != nil {
			return false, err
		}
		changed = true
	}
	return changed, nil
}

// clearBackLink clears the link on ifp's partner if it still points at ifp.
func clearBackLink(ctx context.Context, r storage.Repo, ifp *model.PhysicalInterface) error {
	if ifp.Neighbor == nil {
		return nil
	}
	partner, err := r.GetPhysicalInterface(ctx, ifp.Neighbor.ElementID, ifp.Neighbor.InterfaceName)
	if isNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !partner.LinkedTo(ifp.ElementID, ifp.Name) {
		return nil
	}
	return r.SetNeighbor(ctx, partner.ElementID, partner.Name, nil)
}

// UnlinkNeighbor clears both directions of an interface's link and reports
// whether a link existed.
func (m *InterfaceManager) UnlinkNeighbor(ctx context.Context, elementRef, ifpName string) (bool, error) {
	changed := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifp, err := requirePhysicalInterface(ctx, r, e, ifpName)
		if err != nil {
			return err
		}
		if ifp.Neighbor == nil {
			return nil
		}
		if err := clearBackLink(ctx, r, ifp); err != nil {
			return err
		}
		changed = true
		return r.SetNeighbor(ctx, e.ID, ifp.Name, nil)
	})
	if err != nil {
		return false, err
	}
	if changed {
		log.Info("Neighbor unlinked", "element", elementRef, "ifp_name", ifpName)
	}
	return changed, nil
}

// StoreLogicalInterface adds or updates a logical interface. Its container
// interface must be referenced by one of the element's physical interfaces.
func (m *InterfaceManager) StoreLogicalInterface(ctx context.Context, elementRef string, ifl *model.LogicalInterface) (bool, error) {
	ifl.Name = strings.TrimSpace(ifl.Name)
	ifl.ContainerInterface = strings.TrimSpace(ifl.ContainerInterface)
	if ifl.Name == "" || ifl.ContainerInterface == "" {
		return false, invalid("logical interface and container interface names are required")
	}
	if ifl.VlanID < 0 || ifl.VlanID > 4094 {
		return false, invalid("logical interface %s: invalid VLAN id %d", ifl.Name, ifl.VlanID)
	}
	for i, addr := range ifl.Addresses {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(addr))
		if err != nil {
			return false, invalid("logical interface %s: invalid address %q", ifl.Name, addr)
		}
		ifl.Addresses[i] = prefix.String()
	}
	if ifl.AdministrativeState == "" {
		ifl.AdministrativeState = model.IfUp
	}
	if ifl.OperationalState == "" {
		ifl.OperationalState = model.IfUp
	}
	if !ifl.AdministrativeState.Valid() || !ifl.OperationalState.Valid() {
		return false, invalid("logical interface %s: invalid state", ifl.Name)
	}

	created := false
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifl.ElementID = e.ID

		ifps, err := r.ListPhysicalInterfaces(ctx, e.ID)
		if err != nil {
			return err
		}
		containerFound := false
		for _, ifp := range ifps {
			if ifp.ContainerInterface == ifl.ContainerInterface {
				containerFound = true
				break
			}
		}
		if !containerFound {
			return fault.NotFound(fault.IVT0351E_IFC_NOT_FOUND, "container interface %s not found on element %s", ifl.ContainerInterface, e.Name)
		}

		_, err = r.GetLogicalInterface(ctx, e.ID, ifl.Name)
		if isNotFound(err) {
			created = true
			return r.InsertLogicalInterface(ctx, ifl)
		}
		if err != nil {
			return err
		}
		return r.UpdateLogicalInterface(ctx, ifl)
	})
	if err != nil {
		return false, err
	}
	log.Info("Logical interface stored", "element_id", ifl.ElementID, "ifl_name", ifl.Name, "created", created)
	return created, nil
}

func (m *InterfaceManager) GetLogicalInterface(ctx context.Context, elementRef, name string) (*model.LogicalInterface, error) {
	var ifl *model.LogicalInterface
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifl, err = r.GetLogicalInterface(ctx, e.ID, name)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0360E_IFL_NOT_FOUND, "logical interface %s not found on element %s", name, e.Name)
		}
		return err
	})
	return ifl, err
}

func (m *InterfaceManager) ListLogicalInterfaces(ctx context.Context, elementRef string) ([]model.LogicalInterface, error) {
	var ifls []model.LogicalInterface
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		ifls, err = r.ListLogicalInterfaces(ctx, e.ID)
		return err
	})
	return ifls, err
}

func (m *InterfaceManager) RemoveLogicalInterface(ctx context.Context, elementRef, name string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		err = r.DeleteLogicalInterface(ctx, e.ID, name)
		if isNotFound(err) {
			return fault.NotFound(fault.IVT0360E_IFL_NOT_FOUND, "logical interface %s not found on element %s", name, e.Name)
		}
		return err
	})
	if err != nil {
		return err
	}
	log.Info("Logical interface removed", "element", elementRef, "ifl_name", name)
	return nil
}
