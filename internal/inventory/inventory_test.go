package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

// newTestInventory creates managers over an in-memory store.
func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	ss, err := storage.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })
	return New(ss)
}

// fixture stores the LEAF and SPINE roles and a pod group.
func fixture(t *testing.T, inv *Inventory) *model.ElementGroup {
	t.Helper()
	ctx := context.Background()
	for _, name := range []string{"LEAF", "SPINE"} {
		_, err := inv.Roles.StoreRole(ctx, &model.ElementRole{Name: name, Plane: model.PlaneData})
		require.NoError(t, err)
	}
	g := &model.ElementGroup{Type: "pod", Name: "pod1"}
	_, err := inv.Groups.StoreGroup(ctx, g)
	require.NoError(t, err)
	return g
}

func storeElement(t *testing.T, inv *Inventory, g *model.ElementGroup, name, alias string) *model.Element {
	t.Helper()
	e := &model.Element{Name: name, Alias: alias, GroupID: g.ID, Role: "LEAF"}
	created, err := inv.Elements.StoreElement(context.Background(), e)
	require.NoError(t, err)
	require.True(t, created)
	return e
}

func requireReason(t *testing.T, err error, reason fault.Reason) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, &fault.Fault{Reason: reason}), "expected %s, got %v", reason, err)
}
