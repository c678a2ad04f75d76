package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/inventory"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/probe"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type fakeProbes struct {
	results []probe.Result
}

func (f fakeProbes) Results(reachable *bool) ([]probe.Result, error) {
	var out []probe.Result
	for _, r := range f.results {
		if reachable == nil || r.Reachable == *reachable {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T, probes ProbeResults) *httptest.Server {
	t.Helper()
	ss, err := storage.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	mux := http.NewServeMux()
	NewHandler(inventory.New(ss), probes).RegisterRoutes(mux)
	srv := httptest.NewServer(SecurityHeadersMiddleware(mux))
	t.Cleanup(srv.Close)
	return srv
}

// call sends body as JSON and decodes the response into out when out is not nil.
func call(t *testing.T, srv *httptest.Server, method, path string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func seed(t *testing.T, srv *httptest.Server) (model.ElementGroup, model.Element) {
	t.Helper()
	for _, name := range []string{"LEAF", "SPINE"} {
		require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/roles", model.ElementRole{Name: name, Plane: model.PlaneData}, nil))
	}
	var g model.ElementGroup
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/groups", model.ElementGroup{Type: "pod", Name: "pod1"}, &g))
	var e model.Element
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/elements", model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF"}, &e))
	return g, e
}

func TestElementLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)
	_, e := seed(t, srv)
	assert.Equal(t, model.AdmNew, e.AdministrativeState)

	var got model.Element
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/elements/leaf1", nil, &got))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "pod1", got.GroupName)

	got.Description = "first leaf"
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/elements/"+e.ID, got, &got))
	assert.Equal(t, "first leaf", got.Description)

	var list []model.Element
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/elements?role=LEAF", nil, &list))
	assert.Len(t, list, 1)

	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/elements/leaf1/state",
		ElementStateRequest{AdministrativeState: model.AdmActive, OperationalState: model.OpUp}, &got))
	assert.Equal(t, model.AdmActive, got.AdministrativeState)
	assert.Equal(t, model.OpUp, got.OperationalState)

	var errResp ErrorResponse
	require.Equal(t, http.StatusConflict, call(t, srv, "DELETE", "/api/elements/leaf1", nil, &errResp))
	assert.Equal(t, "IVT0303E_ELEMENT_ACTIVE", errResp.Reason)

	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/elements/leaf1/state", ElementStateRequest{AdministrativeState: model.AdmRetired}, nil))
	require.Equal(t, http.StatusNoContent, call(t, srv, "DELETE", "/api/elements/leaf1", nil, nil))
	require.Equal(t, http.StatusNotFound, call(t, srv, "GET", "/api/elements/leaf1", nil, &errResp))
	assert.Equal(t, "IVT0300E_ELEMENT_NOT_FOUND", errResp.Reason)
}

func TestErrorResponses(t *testing.T) {
	srv := newTestServer(t, nil)
	g, _ := seed(t, srv)

	var errResp ErrorResponse
	assert.Equal(t, http.StatusConflict, call(t, srv, "POST", "/api/elements",
		model.Element{Name: "leaf1", Alias: "x", GroupID: g.ID, Role: "LEAF"}, &errResp))
	assert.Equal(t, "IVT0307E_ELEMENT_NAME_ALREADY_IN_USE", errResp.Reason)

	assert.Equal(t, http.StatusNotFound, call(t, srv, "POST", "/api/elements",
		model.Element{Name: "leaf2", GroupID: g.ID, Role: "BORDER"}, &errResp))
	assert.Equal(t, "IVT0400E_ELEMENT_ROLE_NOT_FOUND", errResp.Reason)

	assert.Equal(t, http.StatusBadRequest, call(t, srv, "PUT", "/api/elements/leaf1", model.Element{Name: "leaf1"}, &errResp))
	assert.Equal(t, "VAL0001E_INVALID_VALUE", errResp.Reason)

	req, err := http.NewRequest("POST", srv.URL+"/api/roles", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestInterfacesAndNeighbors(t *testing.T) {
	srv := newTestServer(t, nil)
	g, _ := seed(t, srv)
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/elements", model.Element{Name: "spine1", GroupID: g.ID, Role: "SPINE"}, nil))

	ifps := []model.PhysicalInterface{{Name: "ifp-0/0/1"}, {Name: "ifp-0/0/2"}}
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/elements/leaf1/interfaces/physical", ifps, &ifps))
	require.Len(t, ifps, 2)
	require.Equal(t, http.StatusCreated, call(t, srv, "PUT", "/api/elements/spine1/interfaces/physical/"+url.PathEscape("ifp-0/0/49"),
		model.PhysicalInterface{}, nil))

	var changed ChangedResponse
	path := "/api/elements/leaf1/interfaces/physical/" + url.PathEscape("ifp-0/0/1") + "/neighbor"
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", path, NeighborRequest{Element: "spine1", Interface: "ifp-0/0/49"}, &changed))
	assert.True(t, changed.Changed)
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", path, NeighborRequest{Element: "spine1", Interface: "ifp-0/0/49"}, &changed))
	assert.False(t, changed.Changed)

	var remote model.PhysicalInterface
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/elements/spine1/interfaces/physical/"+url.PathEscape("ifp-0/0/49"), nil, &remote))
	require.NotNil(t, remote.Neighbor)
	assert.Equal(t, "ifp-0/0/1", remote.Neighbor.InterfaceName)

	require.Equal(t, http.StatusOK, call(t, srv, "DELETE", path, nil, &changed))
	assert.True(t, changed.Changed)

	ifl := model.LogicalInterface{ContainerInterface: "ifc-0/0/1", Addresses: []string{"10.0.0.1/31"}}
	var errResp ErrorResponse
	require.Equal(t, http.StatusNotFound, call(t, srv, "PUT", "/api/elements/leaf1/interfaces/logical/ifl-0", ifl, &errResp))
	assert.Equal(t, "IVT0351E_IFC_NOT_FOUND", errResp.Reason)
}

func TestImageRelease(t *testing.T) {
	srv := newTestServer(t, nil)
	seed(t, srv)

	var v1, v2 model.Image
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/images",
		model.Image{Type: "lxc", Name: "router", Version: "1.0.0", State: model.ImageRelease, ElementRoles: []string{"LEAF"}}, &v1))
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/images",
		model.Image{Type: "lxc", Name: "router", Version: "1.1.0", ElementRoles: []string{"LEAF"}}, &v2))
	assert.Equal(t, model.ImageCandidate, v2.State)

	var state ImageStateResponse
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/images/"+v2.ID+"/state", ImageStateRequest{State: model.ImageRelease}, &state))
	assert.Equal(t, []string{v1.ID}, state.Superseded)

	var released []model.Image
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/roles/LEAF/images", nil, &released))
	require.Len(t, released, 1)
	assert.Equal(t, v2.ID, released[0].ID)

	var installed []model.ElementImage
	require.Equal(t, http.StatusOK, call(t, srv, "PUT", "/api/elements/leaf1/images", []model.ElementImageReference{
		{ImageType: "lxc", ImageName: "router", ImageVersion: "1.1.0", State: model.ElementImageActive},
	}, &installed))
	require.Len(t, installed, 1)

	var errResp ErrorResponse
	require.Equal(t, http.StatusConflict, call(t, srv, "DELETE", "/api/elements/leaf1/images/"+v2.ID, nil, &errResp))
	assert.Equal(t, "IVT0341E_ELEMENT_IMAGE_ACTIVE", errResp.Reason)
	require.Equal(t, http.StatusConflict, call(t, srv, "DELETE", "/api/images/"+v2.ID, nil, &errResp))
	assert.Equal(t, "IVT0204E_IMAGE_IN_USE", errResp.Reason)

	var images []model.Image
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/images?filter=rout&limit=1", nil, &images))
	require.Len(t, images, 1)
	assert.Equal(t, "1.1.0", images[0].Version)
}

func TestDnsRoutes(t *testing.T) {
	srv := newTestServer(t, nil)
	seed(t, srv)

	var z model.DnsZone
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/dns/zones", model.DnsZone{Name: "example.com"}, &z))
	var rs model.DnsRecordSet
	require.Equal(t, http.StatusCreated, call(t, srv, "POST", "/api/elements/leaf1/dns",
		model.DnsRecordSet{ZoneName: "example.com", Name: "leaf1.example.com", Type: model.DnsA,
			Records: []model.DnsRecord{{Value: "10.0.0.1"}}}, &rs))
	assert.Equal(t, model.DefaultDnsTTL, rs.TTL)

	var sets []model.DnsRecordSet
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/elements/leaf1/dns", nil, &sets))
	assert.Len(t, sets, 1)

	require.Equal(t, http.StatusConflict, call(t, srv, "DELETE", "/api/dns/zones/example.com", nil, nil))
	require.Equal(t, http.StatusNoContent, call(t, srv, "DELETE", "/api/dns/recordsets/"+rs.ID, nil, nil))
	require.Equal(t, http.StatusNoContent, call(t, srv, "DELETE", "/api/dns/zones/"+z.ID, nil, nil))
}

func TestProbeResults(t *testing.T) {
	srv := newTestServer(t, nil)
	var results []probe.Result
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/probe/results", nil, &results))
	assert.Empty(t, results)

	srv = newTestServer(t, fakeProbes{results: []probe.Result{
		{ElementID: "e1", ElementName: "leaf1", Reachable: true, CheckedAt: time.Now()},
		{ElementID: "e2", ElementName: "leaf2"},
	}})
	require.Equal(t, http.StatusOK, call(t, srv, "GET", "/api/probe/results?reachable=false", nil, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "leaf2", results[0].ElementName)
	assert.Equal(t, http.StatusBadRequest, call(t, srv, "GET", "/api/probe/results?reachable=maybe", nil, nil))
}
