package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/inventory"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

func newTestServer(t *testing.T, token string) (*Server, *inventory.Inventory) {
	t.Helper()
	ss, err := storage.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })
	inv := inventory.New(ss)
	return NewServer(inv, token), inv
}

func TestTools(t *testing.T) {
	s, inv := newTestServer(t, "")
	ctx := context.Background()

	_, err := inv.Roles.StoreRole(ctx, &model.ElementRole{Name: "LEAF", Plane: model.PlaneData})
	require.NoError(t, err)
	g := &model.ElementGroup{Type: "pod", Name: "pod1"}
	_, err = inv.Groups.StoreGroup(ctx, g)
	require.NoError(t, err)
	e := &model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF"}
	_, err = inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)
	require.NoError(t, inv.Interfaces.StorePhysicalInterfaces(ctx, e.ID, []model.PhysicalInterface{{Name: "ifp-0/0/1"}}))

	elements, err := s.listElements(ctx, &model.ElementFilter{Role: "LEAF"})
	require.NoError(t, err)
	assert.Len(t, elements, 1)

	got, err := s.getElement(ctx, "leaf1")
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	ifs, err := s.listElementInterfaces(ctx, "leaf1")
	require.NoError(t, err)
	assert.Len(t, ifs.Physical, 1)
	assert.Empty(t, ifs.Logical)

	old := &model.Image{Type: "lxc", Name: "router", Version: "1.0.0", State: model.ImageRelease, ElementRoles: []string{"LEAF"}}
	_, err = inv.Images.StoreImage(ctx, old)
	require.NoError(t, err)
	img := &model.Image{Type: "lxc", Name: "router", Version: "2.0.0", ElementRoles: []string{"LEAF"}}
	_, err = inv.Images.StoreImage(ctx, img)
	require.NoError(t, err)

	change, err := s.setImageState(ctx, img.ID, model.ImageRelease)
	require.NoError(t, err)
	assert.Equal(t, []string{old.ID}, change.Superseded)

	change, err = s.setImageState(ctx, img.ID, model.ImageRevoked)
	require.NoError(t, err)
	assert.Empty(t, change.Superseded)

	images, err := s.listImages(ctx, &model.ImageQuery{State: model.ImageRevoked})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, img.ID, images[0].ID)

	installed, err := s.listElementImages(ctx, "leaf1")
	require.NoError(t, err)
	assert.Empty(t, installed)

	_, err = s.getElement(ctx, "nobody")
	assert.Error(t, err)
}

func TestRespondEncodesJSON(t *testing.T) {
	resp, err := respond(map[string]int{"a": 1}, nil)
	require.NoError(t, err)
	assert.NotNil(t, resp)

	_, err = respond(nil, assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestHandlerRequiresToken(t *testing.T) {
	s, _ := newTestServer(t, "s3cret")
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	rec := httptest.NewRecorder()
	s.GetHTTPHandler()(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Authorization", "Bearer s3cret")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.GetHTTPHandler()(rec, req)
	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
