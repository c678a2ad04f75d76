package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
)

func TestStoreElementCreatesThenUpdates(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	e := storeElement(t, inv, g, "leaf1", "")
	assert.Equal(t, model.AdmNew, e.AdministrativeState)
	assert.Equal(t, model.OpDown, e.OperationalState)

	e.Description = "first leaf"
	created, err := inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := inv.Elements.GetElement(ctx, "leaf1")
	require.NoError(t, err)
	assert.Equal(t, "first leaf", got.Description)
	assert.Equal(t, "pod1", got.GroupName)
}

func TestStoreElementResolvesGroupByName(t *testing.T) {
	inv := newTestInventory(t)
	fixture(t, inv)

	e := &model.Element{Name: "leaf1", GroupType: "pod", GroupName: "pod1", Role: "LEAF"}
	_, err := inv.Elements.StoreElement(context.Background(), e)
	require.NoError(t, err)
	assert.NotEmpty(t, e.GroupID)
}

func TestStoreElementUnknownGroupOrRole(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	_, err := inv.Elements.StoreElement(ctx, &model.Element{Name: "leaf1", GroupType: "pod", GroupName: "nope", Role: "LEAF"})
	requireReason(t, err, fault.IVT0100E_GROUP_NOT_FOUND)

	_, err = inv.Elements.StoreElement(ctx, &model.Element{Name: "leaf1", GroupID: g.ID, Role: "BORDER"})
	requireReason(t, err, fault.IVT0400E_ELEMENT_ROLE_NOT_FOUND)
}

func TestStoreElementRejectsMalformedID(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	_, err := inv.Elements.StoreElement(ctx, &model.Element{ID: "leaf-1", Name: "leaf1", GroupID: g.ID, Role: "LEAF"})
	requireReason(t, err, fault.VAL0001E_INVALID_VALUE)
	_, err = inv.Elements.GetElement(ctx, "leaf1")
	requireReason(t, err, fault.IVT0300E_ELEMENT_NOT_FOUND)

	id := model.NewID()
	created, err := inv.Elements.StoreElement(ctx, &model.Element{ID: id, Name: "leaf1", GroupID: g.ID, Role: "LEAF"})
	require.NoError(t, err)
	assert.True(t, created)
	got, err := inv.Elements.GetElement(ctx, "leaf1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestStoreElementRegistersUnknownPlatform(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	e := &model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF", PlatformName: "AS7712"}
	_, err := inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)
	require.NotEmpty(t, e.PlatformID)

	p, err := inv.Platforms.GetPlatform(ctx, "AS7712")
	require.NoError(t, err)
	assert.Equal(t, e.PlatformID, p.ID)

	e2 := &model.Element{Name: "leaf2", GroupID: g.ID, Role: "LEAF", PlatformName: "AS7712"}
	_, err = inv.Elements.StoreElement(ctx, e2)
	require.NoError(t, err)
	assert.Equal(t, p.ID, e2.PlatformID)

	platforms, err := inv.Platforms.ListPlatforms(ctx)
	require.NoError(t, err)
	assert.Len(t, platforms, 1)
}

func TestElementNamesAndAliasesAreUnique(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	storeElement(t, inv, g, "leaf1", "alpha")

	tests := []struct {
		name  string
		alias string
	}{
		{"leaf1", ""},
		{"alpha", ""},
		{"leaf2", "leaf1"},
		{"leaf2", "alpha"},
	}
	for _, tt := range tests {
		_, err := inv.Elements.StoreElement(ctx, &model.Element{Name: tt.name, Alias: tt.alias, GroupID: g.ID, Role: "LEAF"})
		requireReason(t, err, fault.IVT0307E_ELEMENT_NAME_ALREADY_IN_USE)
	}

	// Name and alias may be equal on the same element.
	storeElement(t, inv, g, "leaf3", "leaf3")
}

func TestManagementInterfacesReplacedByName(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	e := &model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF", ManagementInterfaces: []model.ManagementInterface{
		{Name: "SSH", Protocol: "ssh", Hostname: "10.0.0.1", Port: 22},
		{Name: "REST", Protocol: "https", Hostname: "10.0.0.1", Port: 443},
	}}
	_, err := inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)

	e.ManagementInterfaces = []model.ManagementInterface{
		{Name: "SSH", Protocol: "ssh", Hostname: "10.0.0.2", Port: 2222},
	}
	_, err = inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)

	got, err := inv.Elements.GetElement(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.ManagementInterfaces, 1)
	assert.Equal(t, "10.0.0.2", got.ManagementInterface("SSH").Hostname)
	assert.Nil(t, got.ManagementInterface("REST"))
}

func TestOperationalStateDownTakesInterfacesDown(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	require.NoError(t, inv.Interfaces.StorePhysicalInterfaces(ctx, e.ID, []model.PhysicalInterface{
		{Name: "ifp-0/0/1", OperationalState: model.IfUp},
		{Name: "ifp-0/0/2", OperationalState: model.IfUp},
	}))
	require.NoError(t, inv.Elements.UpdateOperationalState(ctx, e.ID, model.OpUp))
	require.NoError(t, inv.Elements.UpdateOperationalState(ctx, e.ID, model.OpDetached))

	ifps, err := inv.Interfaces.ListPhysicalInterfaces(ctx, e.ID)
	require.NoError(t, err)
	for _, ifp := range ifps {
		assert.Equal(t, model.IfDown, ifp.OperationalState)
	}

	err = inv.Elements.UpdateOperationalState(ctx, e.ID, "SLEEPING")
	requireReason(t, err, fault.VAL0001E_INVALID_VALUE)
}

func TestRemoveActiveElementIsConflict(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	require.NoError(t, inv.Elements.UpdateAdministrativeState(ctx, e.ID, model.AdmActive))
	requireReason(t, inv.Elements.RemoveElement(ctx, e.ID), fault.IVT0303E_ELEMENT_ACTIVE)

	require.NoError(t, inv.Elements.UpdateAdministrativeState(ctx, e.ID, model.AdmRetired))
	require.NoError(t, inv.Elements.RemoveElement(ctx, e.ID))

	_, err := inv.Elements.GetElement(ctx, e.ID)
	requireReason(t, err, fault.IVT0300E_ELEMENT_NOT_FOUND)
}

func TestRemoveElementClearsNeighborLinks(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	leaf := storeElement(t, inv, g, "leaf1", "")
	spine := storeElement(t, inv, g, "spine1", "")

	require.NoError(t, inv.Interfaces.StorePhysicalInterfaces(ctx, leaf.ID, []model.PhysicalInterface{{Name: "ifp-0/0/1"}}))
	require.NoError(t, inv.Interfaces.StorePhysicalInterfaces(ctx, spine.ID, []model.PhysicalInterface{{Name: "ifp-0/0/49"}}))
	changed, err := inv.Interfaces.LinkNeighbor(ctx, leaf.ID, "ifp-0/0/1", "spine1", "ifp-0/0/49")
	require.NoError(t, err)
	require.True(t, changed)

	require.NoError(t, inv.Elements.RemoveElement(ctx, leaf.ID))

	ifp, err := inv.Interfaces.GetPhysicalInterface(ctx, spine.ID, "ifp-0/0/49")
	require.NoError(t, err)
	assert.Nil(t, ifp.Neighbor)
}

func TestFillManagementMAC(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	filled, err := inv.Elements.FillManagementMAC(ctx, e.ID, "aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	assert.True(t, filled)

	filled, err = inv.Elements.FillManagementMAC(ctx, e.ID, "11:22:33:44:55:66")
	require.NoError(t, err)
	assert.False(t, filled)

	// Settings without a MAC keep the learned one.
	e.ManagementMAC = ""
	_, err = inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)
	got, err := inv.Elements.GetElement(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", got.ManagementMAC)
}

func TestListElementsFilters(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	storeElement(t, inv, g, "leaf1", "")
	storeElement(t, inv, g, "leaf2", "")
	require.NoError(t, inv.Elements.UpdateAdministrativeState(ctx, "leaf2", model.AdmActive))

	active, err := inv.Elements.ListElements(ctx, &model.ElementFilter{AdministrativeState: model.AdmActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "leaf2", active[0].Name)

	members, err := inv.Groups.ListGroupElements(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
