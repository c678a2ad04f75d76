package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
)

func TestStoreGroupIsRepeatable(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	g := &model.ElementGroup{Type: "pod", Name: "pod1", Description: "first pod"}
	created, err := inv.Groups.StoreGroup(ctx, g)
	require.NoError(t, err)
	assert.True(t, created)

	again := &model.ElementGroup{Type: "pod", Name: "pod1", Description: "first pod"}
	created, err = inv.Groups.StoreGroup(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, g.ID, again.ID)

	groups, err := inv.Groups.ListGroups(ctx, &model.GroupFilter{Type: "pod"})
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestRenameGroupToTakenNameFails(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	_, err := inv.Groups.StoreGroup(ctx, &model.ElementGroup{Type: "pod", Name: "pod1"})
	require.NoError(t, err)
	pod2 := &model.ElementGroup{Type: "pod", Name: "pod2"}
	_, err = inv.Groups.StoreGroup(ctx, pod2)
	require.NoError(t, err)

	pod2.Name = "pod1"
	_, err = inv.Groups.StoreGroup(ctx, pod2)
	requireReason(t, err, fault.IVT0103E_GROUP_NAME_ALREADY_IN_USE)

	// Same name with another type is fine.
	_, err = inv.Groups.StoreGroup(ctx, &model.ElementGroup{Type: "rack", Name: "pod1"})
	require.NoError(t, err)
}

func TestGroupFacilityReference(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	_, err := inv.Groups.StoreGroup(ctx, &model.ElementGroup{Type: "pod", Name: "pod1", FacilityID: "fra1"})
	requireReason(t, err, fault.IVT0600E_FACILITY_NOT_FOUND)

	f := &model.Facility{Name: "fra1", Location: "Frankfurt"}
	_, err = inv.Facilities.StoreFacility(ctx, f)
	require.NoError(t, err)

	g := &model.ElementGroup{Type: "pod", Name: "pod1", FacilityID: "fra1"}
	_, err = inv.Groups.StoreGroup(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, f.ID, g.FacilityID)

	requireReason(t, inv.Facilities.RemoveFacility(ctx, f.ID), fault.IVT0602E_FACILITY_NOT_EMPTY)
	require.NoError(t, inv.Groups.RemoveGroup(ctx, g.ID))
	require.NoError(t, inv.Facilities.RemoveFacility(ctx, f.ID))
}

func TestFacilityNameUnique(t *testing.T) {
	inv := newTestInventory(t)
	ctx := context.Background()

	_, err := inv.Facilities.StoreFacility(ctx, &model.Facility{Name: "fra1"})
	require.NoError(t, err)
	_, err = inv.Facilities.StoreFacility(ctx, &model.Facility{Name: "fra1"})
	requireReason(t, err, fault.IVT0601E_FACILITY_NAME_ALREADY_IN_USE)
}

func TestRemoveGroupWithMembersIsConflict(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	storeElement(t, inv, g, "leaf1", "")

	requireReason(t, inv.Groups.RemoveGroup(ctx, g.ID), fault.IVT0104E_GROUP_NOT_EMPTY)
}

func TestRoles(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	_, err := inv.Roles.StoreRole(ctx, &model.ElementRole{Name: "BORDER", Plane: "SIDEWAYS"})
	requireReason(t, err, fault.VAL0001E_INVALID_VALUE)

	created, err := inv.Roles.StoreRole(ctx, &model.ElementRole{Name: "LEAF", Plane: model.PlaneData, DisplayName: "Leaf switch"})
	require.NoError(t, err)
	assert.False(t, created)

	role, err := inv.Roles.GetRole(ctx, "LEAF")
	require.NoError(t, err)
	assert.Equal(t, "Leaf switch", role.DisplayName)

	storeElement(t, inv, g, "leaf1", "")
	requireReason(t, inv.Roles.RemoveRole(ctx, "LEAF"), fault.IVT0402E_ROLE_IN_USE)
	require.NoError(t, inv.Roles.RemoveRole(ctx, "SPINE"))
	requireReason(t, inv.Roles.RemoveRole(ctx, "SPINE"), fault.IVT0400E_ELEMENT_ROLE_NOT_FOUND)
}

func TestPlatforms(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	p := &model.Platform{Name: "AS7712", Chipset: "tomahawk", VendorName: "Edgecore", RackUnits: 1}
	created, err := inv.Platforms.StorePlatform(ctx, p)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = inv.Platforms.StorePlatform(ctx, &model.Platform{ID: model.NewID(), Name: "AS7712"})
	requireReason(t, err, fault.IVT0902E_PLATFORM_NAME_ALREADY_IN_USE)

	_, err = inv.Platforms.StorePlatform(ctx, &model.Platform{Name: "bad", RackUnits: -1})
	requireReason(t, err, fault.VAL0001E_INVALID_VALUE)

	_, err = inv.Elements.StoreElement(ctx, &model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF", PlatformID: p.ID})
	require.NoError(t, err)
	requireReason(t, inv.Platforms.RemovePlatform(ctx, p.ID), fault.IVT0903E_PLATFORM_IN_USE)

	_, err = inv.Platforms.GetPlatform(ctx, "missing")
	requireReason(t, err, fault.IVT0900E_PLATFORM_NOT_FOUND)
}
