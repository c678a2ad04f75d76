// Package inventory implements the transactional managers that enforce the
// inventory rules on top of the storage layer.
package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

// Transactor runs a closure inside one storage transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(storage.Repo) error) error
}

// Inventory bundles every manager over one store.
type Inventory struct {
	Facilities    *FacilityManager
	Groups        *GroupManager
	Roles         *RoleManager
	Platforms     *PlatformManager
	Elements      *ElementManager
	Interfaces    *InterfaceManager
	Images        *ImageManager
	ElementImages *ElementImageManager
	Dns           *DnsManager
}

func New(tx Transactor) *Inventory {
	return &Inventory{
		Facilities:    &FacilityManager{tx: tx},
		Groups:        &GroupManager{tx: tx},
		Roles:         &RoleManager{tx: tx},
		Platforms:     &PlatformManager{tx: tx},
		Elements:      &ElementManager{tx: tx},
		Interfaces:    &InterfaceManager{tx: tx},
		Images:        &ImageManager{tx: tx},
		ElementImages: &ElementImageManager{tx: tx},
		Dns:           &DnsManager{tx: tx},
	}
}

func invalid(format string, args ...any) error {
	return fault.Invalid(fault.VAL0001E_INVALID_VALUE, format, args...)
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

// requireElement loads an element by id, then by name or alias.
func requireElement(ctx context.Context, r storage.Repo, ref string) (*model.Element, error) {
	if model.ValidID(ref) {
		e, err := r.GetElement(ctx, ref)
		if err == nil || !isNotFound(err) {
			return e, err
		}
	}
	e, err := r.GetElementByName(ctx, ref)
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0300E_ELEMENT_NOT_FOUND, "element %s not found", ref)
	}
	return e, err
}

func requireRole(ctx context.Context, r storage.Repo, name string) (*model.ElementRole, error) {
	role, err := r.GetRole(ctx, name)
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0400E_ELEMENT_ROLE_NOT_FOUND, "element role %s not found", name)
	}
	return role, err
}

func requireGroup(ctx context.Context, r storage.Repo, id string) (*model.ElementGroup, error) {
	g, err := r.GetGroup(ctx, id)
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0100E_GROUP_NOT_FOUND, "element group %s not found", id)
	}
	return g, err
}

func requireImage(ctx context.Context, r storage.Repo, id string) (*model.Image, error) {
	img, err := r.GetImage(ctx, id)
	if isNotFound(err) {
		return nil, fault.NotFound(fault.IVT0200E_IMAGE_NOT_FOUND, "image %s not found", id)
	}
	return img, err
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
