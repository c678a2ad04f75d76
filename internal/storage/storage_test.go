package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/model"
)

// newTestStore creates an in-memory store for testing.
func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()
	ss, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })
	return ss
}

func inTx(t *testing.T, ss *SQLiteStorage, fn func(Repo) error) {
	t.Helper()
	require.NoError(t, ss.InTx(context.Background(), fn))
}

// seedElement stores a role, group, platform and element and returns the element.
func seedElement(t *testing.T, ss *SQLiteStorage, name string) *model.Element {
	t.Helper()
	ctx := context.Background()
	e := &model.Element{
		ID:                  model.NewID(),
		Name:                name,
		Role:                "LEAF",
		AdministrativeState: model.AdmNew,
		OperationalState:    model.OpDown,
	}
	inTx(t, ss, func(r Repo) error {
		if _, err := r.GetRole(ctx, "LEAF"); errors.Is(err, ErrNotFound) {
			if err := r.InsertRole(ctx, &model.ElementRole{Name: "LEAF", Plane: model.PlaneData}); err != nil {
				return err
			}
		}
		g, err := r.GetGroupByName(ctx, "pod", "pod1")
		if errors.Is(err, ErrNotFound) {
			g = &model.ElementGroup{ID: model.NewID(), Type: "pod", Name: "pod1"}
			err = r.InsertGroup(ctx, g)
		}
		if err != nil {
			return err
		}
		e.GroupID = g.ID
		return r.InsertElement(ctx, e)
	})
	return e
}

func TestInTxRollsBackOnError(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := ss.InTx(ctx, func(r Repo) error {
		if err := r.InsertFacility(ctx, &model.Facility{ID: model.NewID(), Name: "fra1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	inTx(t, ss, func(r Repo) error {
		_, err := r.GetFacilityByName(ctx, "fra1")
		assert.ErrorIs(t, err, ErrNotFound)
		return nil
	})
}

func TestFacilityUniqueName(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()

	inTx(t, ss, func(r Repo) error {
		return r.InsertFacility(ctx, &model.Facility{ID: model.NewID(), Name: "fra1", Location: "Frankfurt"})
	})
	err := ss.InTx(ctx, func(r Repo) error {
		return r.InsertFacility(ctx, &model.Facility{ID: model.NewID(), Name: "fra1"})
	})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	inTx(t, ss, func(r Repo) error {
		list, err := r.ListFacilities(ctx, &model.FacilityFilter{Name: "fra"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Frankfurt", list[0].Location)
		assert.False(t, list[0].CreatedAt.IsZero())
		return nil
	})
}

func TestElementRoundTrip(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	e := seedElement(t, ss, "leaf1")

	inTx(t, ss, func(r Repo) error {
		e.Alias = "leaf-one"
		e.Tags = []string{"edge", "lab"}
		e.ManagementInterfaces = []model.ManagementInterface{{Name: "SSH", Protocol: "ssh", Hostname: "10.0.0.1", Port: 22}}
		return r.UpdateElement(ctx, e)
	})

	inTx(t, ss, func(r Repo) error {
		got, err := r.GetElementByName(ctx, "leaf-one")
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, "pod", got.GroupType)
		assert.Equal(t, "pod1", got.GroupName)
		assert.Equal(t, []string{"edge", "lab"}, got.Tags)
		require.NotNil(t, got.ManagementInterface("SSH"))
		assert.Equal(t, 22, got.ManagementInterface("SSH").Port)

		tagged, err := r.ListElements(ctx, &model.ElementFilter{Tag: "lab"})
		require.NoError(t, err)
		assert.Len(t, tagged, 1)

		byNames, err := r.FindElementsByNames(ctx, "nothing", "leaf-one")
		require.NoError(t, err)
		assert.Len(t, byNames, 1)
		return nil
	})
}

func TestDeleteElementCascades(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	leaf := seedElement(t, ss, "leaf1")
	spine := seedElement(t, ss, "spine1")

	inTx(t, ss, func(r Repo) error {
		require.NoError(t, r.InsertPhysicalInterface(ctx, &model.PhysicalInterface{
			ElementID: leaf.ID, Name: "ifp-0/0/1",
			AdministrativeState: model.IfUp, OperationalState: model.IfUp,
			Bandwidth: model.Bandwidth{Value: 10, Unit: model.Gbps},
		}))
		return r.InsertPhysicalInterface(ctx, &model.PhysicalInterface{
			ElementID: spine.ID, Name: "ifp-0/0/1",
			AdministrativeState: model.IfUp, OperationalState: model.IfUp,
			Neighbor: &model.InterfaceNeighbor{ElementID: leaf.ID, InterfaceName: "ifp-0/0/1"},
		})
	})

	inTx(t, ss, func(r Repo) error {
		ifp, err := r.GetPhysicalInterface(ctx, spine.ID, "ifp-0/0/1")
		require.NoError(t, err)
		require.NotNil(t, ifp.Neighbor)
		assert.Equal(t, "leaf1", ifp.Neighbor.ElementName)

		leafIfp, err := r.GetPhysicalInterface(ctx, leaf.ID, "ifp-0/0/1")
		require.NoError(t, err)
		assert.Equal(t, "10.000 Gbps", leafIfp.Bandwidth.String())

		n, err := r.ClearNeighborReferences(ctx, leaf.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		return r.DeleteElement(ctx, leaf.ID)
	})

	inTx(t, ss, func(r Repo) error {
		ifps, err := r.ListPhysicalInterfaces(ctx, leaf.ID)
		require.NoError(t, err)
		assert.Empty(t, ifps)

		ifp, err := r.GetPhysicalInterface(ctx, spine.ID, "ifp-0/0/1")
		require.NoError(t, err)
		assert.Nil(t, ifp.Neighbor)
		return nil
	})
}

func TestImageRolesAndOrdering(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()

	inTx(t, ss, func(r Repo) error {
		require.NoError(t, r.InsertRole(ctx, &model.ElementRole{Name: "LEAF", Plane: model.PlaneData}))
		require.NoError(t, r.InsertRole(ctx, &model.ElementRole{Name: "SPINE", Plane: model.PlaneData}))
		for _, v := range []string{"1.0.0", "1.10.0", "1.2.0"} {
			err := r.InsertImage(ctx, &model.Image{
				ID: model.NewID(), Type: "lxc", Name: "router", Version: v,
				State: model.ImageCandidate, ElementRoles: []string{"SPINE", "LEAF"},
			})
			require.NoError(t, err)
		}
		return nil
	})

	inTx(t, ss, func(r Repo) error {
		images, err := r.ListImages(ctx, &model.ImageQuery{Role: "LEAF"})
		require.NoError(t, err)
		require.Len(t, images, 3)
		assert.Equal(t, "1.10.0", images[0].Version)
		assert.Equal(t, "1.2.0", images[1].Version)
		assert.Equal(t, "1.0.0", images[2].Version)
		assert.Equal(t, []string{"LEAF", "SPINE"}, images[0].ElementRoles)

		limited, err := r.ListImages(ctx, &model.ImageQuery{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)

		n, err := r.CountRoleUsage(ctx, "SPINE")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		return nil
	})

	err := ss.InTx(ctx, func(r Repo) error {
		return r.InsertImage(ctx, &model.Image{ID: model.NewID(), Type: "lxc", Name: "router", Version: "1.0.0", State: model.ImageCandidate})
	})
	assert.True(t, IsUniqueViolation(err))
}

func TestElementImages(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	e := seedElement(t, ss, "leaf1")
	img := &model.Image{ID: model.NewID(), Type: "lxc", Name: "router", Version: "2.0.0", State: model.ImageRelease}

	inTx(t, ss, func(r Repo) error {
		require.NoError(t, r.InsertImage(ctx, img))
		return r.InsertElementImage(ctx, &model.ElementImage{ElementID: e.ID, ImageID: img.ID, State: model.ElementImageActive})
	})

	inTx(t, ss, func(r Repo) error {
		list, err := r.ListElementImages(ctx, e.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "router", list[0].ImageName)
		assert.Equal(t, model.ImageRelease, list[0].ImageState)
		assert.True(t, list[0].Active())
		assert.False(t, list[0].InstallDate.IsZero())

		n, err := r.CountImageInstallations(ctx, img.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.NoError(t, r.SetElementImageState(ctx, e.ID, img.ID, model.ElementImageCached))
		require.NoError(t, r.DeleteElementImage(ctx, e.ID, img.ID))
		assert.ErrorIs(t, r.DeleteElementImage(ctx, e.ID, img.ID), ErrNotFound)
		return nil
	})
}

func TestDnsRecordSets(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	e := seedElement(t, ss, "leaf1")
	zone := &model.DnsZone{ID: model.NewID(), Name: "example.com"}

	inTx(t, ss, func(r Repo) error {
		require.NoError(t, r.InsertZone(ctx, zone))
		return r.InsertRecordSet(ctx, &model.DnsRecordSet{
			ID: model.NewID(), ElementID: e.ID, ZoneID: zone.ID, Name: "leaf1.example.com",
			Type: model.DnsA, TTL: 3600, Records: []model.DnsRecord{{Value: "10.0.0.1", SetPTR: true}},
		})
	})

	inTx(t, ss, func(r Repo) error {
		rs, err := r.FindRecordSet(ctx, zone.ID, "leaf1.example.com", model.DnsA)
		require.NoError(t, err)
		assert.Equal(t, "example.com", rs.ZoneName)
		require.Len(t, rs.Records, 1)
		assert.True(t, rs.Records[0].SetPTR)

		n, err := r.CountZoneRecordSets(ctx, zone.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		return nil
	})
}

func TestNotFoundSentinels(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()

	inTx(t, ss, func(r Repo) error {
		_, err := r.GetElement(ctx, model.NewID())
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = r.GetImage(ctx, model.NewID())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, r.DeleteGroup(ctx, model.NewID()), ErrNotFound)
		assert.ErrorIs(t, r.SetElementOperationalState(ctx, model.NewID(), model.OpUp), ErrNotFound)
		return nil
	})
}

func TestUpdatePhysicalInterfaceKeepsNeighbor(t *testing.T) {
	ss := newTestStore(t)
	ctx := context.Background()
	leaf := seedElement(t, ss, "leaf1")
	spine := seedElement(t, ss, "spine1")

	inTx(t, ss, func(r Repo) error {
		return r.InsertPhysicalInterface(ctx, &model.PhysicalInterface{
			ElementID: leaf.ID, Name: "ifp-0/0/1",
			AdministrativeState: model.IfUp, OperationalState: model.IfUp,
			Neighbor: &model.InterfaceNeighbor{ElementID: spine.ID, InterfaceName: "ifp-0/0/49"},
		})
	})

	inTx(t, ss, func(r Repo) error {
		return r.UpdatePhysicalInterface(ctx, &model.PhysicalInterface{
			ElementID: leaf.ID, Name: "ifp-0/0/1", Alias: "uplink",
			AdministrativeState: model.IfUp, OperationalState: model.IfDown,
		})
	})

	inTx(t, ss, func(r Repo) error {
		ifp, err := r.GetPhysicalInterface(ctx, leaf.ID, "ifp-0/0/1")
		require.NoError(t, err)
		assert.Equal(t, "uplink", ifp.Alias)
		assert.Equal(t, model.IfDown, ifp.OperationalState)
		require.NotNil(t, ifp.Neighbor)
		assert.Equal(t, spine.ID, ifp.Neighbor.ElementID)
		assert.Equal(t, "ifp-0/0/49", ifp.Neighbor.InterfaceName)
		return nil
	})
}
