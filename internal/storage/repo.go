package storage

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/model"
)

// Repo holds the row-level queries available inside a transaction.
// Lookups return ErrNotFound when no row matches.
type Repo interface {
	FacilityRepo
	GroupRepo
	RoleRepo
	PlatformRepo
	ElementRepo
	InterfaceRepo
	ImageRepo
	ElementImageRepo
	DnsRepo
}

type FacilityRepo interface {
	InsertFacility(ctx context.Context, f *model.Facility) error
	UpdateFacility(ctx context.Context, f *model.Facility) error
	GetFacility(ctx context.Context, id string) (*model.Facility, error)
	GetFacilityByName(ctx context.Context, name string) (*model.Facility, error)
	ListFacilities(ctx context.Context, filter *model.FacilityFilter) ([]model.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
	CountFacilityGroups(ctx context.Context, id string) (int, error)
}

type GroupRepo interface {
	InsertGroup(ctx context.Context, g *model.ElementGroup) error
	UpdateGroup(ctx context.Context, g *model.ElementGroup) error
	GetGroup(ctx context.Context, id string) (*model.ElementGroup, error)
	GetGroupByName(ctx context.Context, groupType, name string) (*model.ElementGroup, error)
	ListGroups(ctx context.Context, filter *model.GroupFilter) ([]model.ElementGroup, error)
	DeleteGroup(ctx context.Context, id string) error
	CountGroupElements(ctx context.Context, id string) (int, error)
}

type RoleRepo interface {
	InsertRole(ctx context.Context, r *model.ElementRole) error
	UpdateRole(ctx context.Context, r *model.ElementRole) error
	GetRole(ctx context.Context, name string) (*model.ElementRole, error)
	ListRoles(ctx context.Context) ([]model.ElementRole, error)
	DeleteRole(ctx context.Context, name string) error
	// CountRoleUsage counts elements and images referencing the role.
	CountRoleUsage(ctx context.Context, name string) (int, error)
}

type PlatformRepo interface {
	InsertPlatform(ctx context.Context, p *model.Platform) error
	UpdatePlatform(ctx context.Context, p *model.Platform) error
	GetPlatform(ctx context.Context, id string) (*model.Platform, error)
	GetPlatformByName(ctx context.Context, name string) (*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]model.Platform, error)
	DeletePlatform(ctx context.Context, id string) error
	CountPlatformElements(ctx context.Context, id string) (int, error)
}

type ElementRepo interface {
	InsertElement(ctx context.Context, e *model.Element) error
	UpdateElement(ctx context.Context, e *model.Element) error
	GetElement(ctx context.Context, id string) (*model.Element, error)
	// GetElementByName matches either the name or the alias.
	GetElementByName(ctx context.Context, nameOrAlias string) (*model.Element, error)
	// FindElementsByNames returns elements whose name or alias is in names.
	FindElementsByNames(ctx context.Context, names ...string) ([]model.Element, error)
	ListElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error)
	DeleteElement(ctx context.Context, id string) error
	SetElementAdministrativeState(ctx context.Context, id string, state model.AdministrativeState) error
	SetElementOperationalState(ctx context.Context, id string, state model.OperationalState) error
	SetElementManagementMAC(ctx context.Context, id, mac string) error
}

type InterfaceRepo interface {
	InsertPhysicalInterface(ctx context.Context, ifp *model.PhysicalInterface) error
	UpdatePhysicalInterface(ctx context.Context, ifp *model.PhysicalInterface) error
	GetPhysicalInterface(ctx context.Context, elementID, name string) (*model.PhysicalInterface, error)
	ListPhysicalInterfaces(ctx context.Context, elementID string) ([]model.PhysicalInterface, error)
	DeletePhysicalInterface(ctx context.Context, elementID, name string) error
	// SetNeighbor points an interface at a neighbor; nil clears the link.
	SetNeighbor(ctx context.Context, elementID, name string, neighbor *model.InterfaceNeighbor) error
	// ClearNeighborReferences clears every link pointing at the element
	// and returns how many interfaces were updated.
	ClearNeighborReferences(ctx context.Context, elementID string) (int, error)
	SetInterfacesOperationalState(ctx context.Context, elementID string, state model.InterfaceState) (int, error)

	InsertLogicalInterface(ctx context.Context, ifl *model.LogicalInterface) error
	UpdateLogicalInterface(ctx context.Context, ifl *model.LogicalInterface) error
	GetLogicalInterface(ctx context.Context, elementID, name string) (*model.LogicalInterface, error)
	ListLogicalInterfaces(ctx context.Context, elementID string) ([]model.LogicalInterface, error)
	DeleteLogicalInterface(ctx context.Context, elementID, name string) error
}

type ImageRepo interface {
	InsertImage(ctx context.Context, img *model.Image) error
	UpdateImage(ctx context.Context, img *model.Image) error
	GetImage(ctx context.Context, id string) (*model.Image, error)
	FindImage(ctx context.Context, imageType, name, version, chipset string) (*model.Image, error)
	// FindImagesByVersion returns every chipset variant of an image version.
	FindImagesByVersion(ctx context.Context, imageType, name, version string) ([]model.Image, error)
	ListImages(ctx context.Context, query *model.ImageQuery) ([]model.Image, error)
	SetImageState(ctx context.Context, id string, state model.ImageState) error
	DeleteImage(ctx context.Context, id string) error
	CountImageInstallations(ctx context.Context, id string) (int, error)
}

type ElementImageRepo interface {
	ListElementImages(ctx context.Context, elementID string) ([]model.ElementImage, error)
	GetElementImage(ctx context.Context, elementID, imageID string) (*model.ElementImage, error)
	InsertElementImage(ctx context.Context, ei *model.ElementImage) error
	SetElementImageState(ctx context.Context, elementID, imageID string, state model.ElementImageState) error
	DeleteElementImage(ctx context.Context, elementID, imageID string) error
}

type DnsRepo interface {
	InsertZone(ctx context.Context, z *model.DnsZone) error
	UpdateZone(ctx context.Context, z *model.DnsZone) error
	GetZone(ctx context.Context, id string) (*model.DnsZone, error)
	GetZoneByName(ctx context.Context, name string) (*model.DnsZone, error)
	ListZones(ctx context.Context) ([]model.DnsZone, error)
	DeleteZone(ctx context.Context, id string) error
	CountZoneRecordSets(ctx context.Context, id string) (int, error)

	InsertRecordSet(ctx context.Context, rs *model.DnsRecordSet) error
	UpdateRecordSet(ctx context.Context, rs *model.DnsRecordSet) error
	GetRecordSet(ctx context.Context, id string) (*model.DnsRecordSet, error)
	FindRecordSet(ctx context.Context, zoneID, name string, recordType model.DnsRecordType) (*model.DnsRecordSet, error)
	ListRecordSets(ctx context.Context, elementID string) ([]model.DnsRecordSet, error)
	DeleteRecordSet(ctx context.Context, id string) error
}

var _ Repo = (*queries)(nil)
