// Package api exposes the inventory over HTTP+JSON.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/inventory"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/probe"
)

const maxBodySize = 1 << 20

// ProbeResults exposes the latest reachability probe results.
type ProbeResults interface {
	Results(reachable *bool) ([]probe.Result, error)
}

// Handler handles HTTP requests
type Handler struct {
	inv    *inventory.Inventory
	probes ProbeResults
}

// NewHandler creates a new API handler. probes may be nil when probing is disabled.
func NewHandler(inv *inventory.Inventory, probes ProbeResults) *Handler {
	return &Handler{inv: inv, probes: probes}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Facilities
	mux.HandleFunc("GET /api/facilities", h.listFacilities)
	mux.HandleFunc("POST /api/facilities", h.createFacility)
	mux.HandleFunc("GET /api/facilities/{id}", h.getFacility)
	mux.HandleFunc("PUT /api/facilities/{id}", h.updateFacility)
	mux.HandleFunc("DELETE /api/facilities/{id}", h.deleteFacility)

	// Groups
	mux.HandleFunc("GET /api/groups", h.listGroups)
	mux.HandleFunc("POST /api/groups", h.createGroup)
	mux.HandleFunc("GET /api/groups/{id}", h.getGroup)
	mux.HandleFunc("PUT /api/groups/{id}", h.updateGroup)
	mux.HandleFunc("DELETE /api/groups/{id}", h.deleteGroup)
	mux.HandleFunc("GET /api/groups/{id}/elements", h.getGroupElements)

	// Roles
	mux.HandleFunc("GET /api/roles", h.listRoles)
	mux.HandleFunc("POST /api/roles", h.createRole)
	mux.HandleFunc("GET /api/roles/{name}", h.getRole)
	mux.HandleFunc("PUT /api/roles/{name}", h.updateRole)
	mux.HandleFunc("DELETE /api/roles/{name}", h.deleteRole)
	mux.HandleFunc("GET /api/roles/{name}/images", h.getRoleImages)

	// Platforms
	mux.HandleFunc("GET /api/platforms", h.listPlatforms)
	mux.HandleFunc("POST /api/platforms", h.createPlatform)
	mux.HandleFunc("GET /api/platforms/{id}", h.getPlatform)
	mux.HandleFunc("PUT /api/platforms/{id}", h.updatePlatform)
	mux.HandleFunc("DELETE /api/platforms/{id}", h.deletePlatform)

	// Elements
	mux.HandleFunc("GET /api/elements", h.listElements)
	mux.HandleFunc("POST /api/elements", h.createElement)
	mux.HandleFunc("GET /api/elements/{id}", h.getElement)
	mux.HandleFunc("PUT /api/elements/{id}", h.updateElement)
	mux.HandleFunc("DELETE /api/elements/{id}", h.deleteElement)
	mux.HandleFunc("PUT /api/elements/{id}/state", h.updateElementState)

	// Interfaces. Interface names contain slashes and must be path-escaped.
	mux.HandleFunc("GET /api/elements/{id}/interfaces/physical", h.listPhysicalInterfaces)
	mux.HandleFunc("PUT /api/elements/{id}/interfaces/physical", h.storePhysicalInterfaces)
	mux.HandleFunc("GET /api/elements/{id}/interfaces/physical/{ifp}", h.getPhysicalInterface)
	mux.HandleFunc("PUT /api/elements/{id}/interfaces/physical/{ifp}", h.storePhysicalInterface)
	mux.HandleFunc("DELETE /api/elements/{id}/interfaces/physical/{ifp}", h.deletePhysicalInterface)
	mux.HandleFunc("PUT /api/elements/{id}/interfaces/physical/{ifp}/neighbor", h.linkNeighbor)
	mux.HandleFunc("DELETE /api/elements/{id}/interfaces/physical/{ifp}/neighbor", h.unlinkNeighbor)
	mux.HandleFunc("GET /api/elements/{id}/interfaces/logical", h.listLogicalInterfaces)
	mux.HandleFunc("GET /api/elements/{id}/interfaces/logical/{ifl}", h.getLogicalInterface)
	mux.HandleFunc("PUT /api/elements/{id}/interfaces/logical/{ifl}", h.storeLogicalInterface)
	mux.HandleFunc("DELETE /api/elements/{id}/interfaces/logical/{ifl}", h.deleteLogicalInterface)

	// Installed images
	mux.HandleFunc("GET /api/elements/{id}/images", h.listElementImages)
	mux.HandleFunc("PUT /api/elements/{id}/images", h.storeElementImages)
	mux.HandleFunc("DELETE /api/elements/{id}/images/{image}", h.deleteElementImage)

	// DNS record sets of an element
	mux.HandleFunc("GET /api/elements/{id}/dns", h.listRecordSets)
	mux.HandleFunc("POST /api/elements/{id}/dns", h.storeRecordSet)

	// Images
	mux.HandleFunc("GET /api/images", h.listImages)
	mux.HandleFunc("POST /api/images", h.createImage)
	mux.HandleFunc("GET /api/images/{id}", h.getImage)
	mux.HandleFunc("PUT /api/images/{id}", h.updateImage)
	mux.HandleFunc("DELETE /api/images/{id}", h.deleteImage)
	mux.HandleFunc("PUT /api/images/{id}/state", h.updateImageState)

	// DNS
	mux.HandleFunc("GET /api/dns/zones", h.listZones)
	mux.HandleFunc("POST /api/dns/zones", h.createZone)
	mux.HandleFunc("GET /api/dns/zones/{id}", h.getZone)
	mux.HandleFunc("PUT /api/dns/zones/{id}", h.updateZone)
	mux.HandleFunc("DELETE /api/dns/zones/{id}", h.deleteZone)
	mux.HandleFunc("GET /api/dns/recordsets/{id}", h.getRecordSet)
	mux.HandleFunc("DELETE /api/dns/recordsets/{id}", h.deleteRecordSet)

	// Probe
	mux.HandleFunc("GET /api/probe/results", h.listProbeResults)
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debug("Failed to write response", "error", err)
	}
}

// writeStored responds 201 for created resources and 200 for updates
func (h *Handler) writeStored(w http.ResponseWriter, created bool, data interface{}) {
	if created {
		h.writeJSON(w, http.StatusCreated, data)
		return
	}
	h.writeJSON(w, http.StatusOK, data)
}

// writeError renders a fault with its HTTP status. Errors without a fault
// are logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	f, ok := fault.As(err)
	if !ok {
		log.Error("Internal server error", "error", err, "method", r.Method, "path", r.URL.Path)
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	status := f.Kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "reason", f.Reason, "error", err, "path", r.URL.Path)
	} else {
		log.Warn("Request rejected", "reason", f.Reason, "message", f.Message, "status", status, "path", r.URL.Path)
	}
	h.writeJSON(w, status, ErrorResponse{Reason: string(f.Reason), Message: f.Message})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fault.Invalid(fault.VAL0001E_INVALID_VALUE, "invalid request body: %v", err)
	}
	return nil
}

// pathID returns the {id} path value and requires it to be a UUID, since
// PUT requests may create the resource under that id.
func pathID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if !model.ValidID(id) {
		return "", fault.Invalid(fault.VAL0001E_INVALID_VALUE, "invalid id %q", id)
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fault.Invalid(fault.VAL0001E_INVALID_VALUE, "invalid %s %q", name, s)
	}
	return n, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fault.Invalid(fault.VAL0001E_INVALID_VALUE, "invalid %s %q", name, s)
	}
	return &b, nil
}
