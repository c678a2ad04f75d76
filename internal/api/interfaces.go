package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/model"
)

// listPhysicalInterfaces handles GET /api/elements/{id}/interfaces/physical
func (h *Handler) listPhysicalInterfaces(w http.ResponseWriter, r *http.Request) {
	ifps, err := h.inv.Interfaces.ListPhysicalInterfaces(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ifps)
}

// storePhysicalInterfaces handles PUT /api/elements/{id}/interfaces/physical.
// Interfaces missing from the body are removed.
func (h *Handler) storePhysicalInterfaces(w http.ResponseWriter, r *http.Request) {
	var ifps []model.PhysicalInterface
	if err := decode(r, &ifps); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.inv.Interfaces.StorePhysicalInterfaces(r.Context(), r.PathValue("id"), ifps); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.listPhysicalInterfaces(w, r)
}

// getPhysicalInterface handles GET /api/elements/{id}/interfaces/physical/{ifp}
func (h *Handler) getPhysicalInterface(w http.ResponseWriter, r *http.Request) {
	ifp, err := h.inv.Interfaces.GetPhysicalInterface(r.Context(), r.PathValue("id"), r.PathValue("ifp"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ifp)
}

// storePhysicalInterface handles PUT /api/elements/{id}/interfaces/physical/{ifp}
func (h *Handler) storePhysicalInterface(w http.ResponseWriter, r *http.Request) {
	var ifp model.PhysicalInterface
	if err := decode(r, &ifp); err != nil {
		h.writeError(w, r, err)
		return
	}
	ifp.Name = r.PathValue("ifp")
	created, err := h.inv.Interfaces.StorePhysicalInterface(r.Context(), r.PathValue("id"), &ifp)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, ifp)
}

// deletePhysicalInterface handles DELETE /api/elements/{id}/interfaces/physical/{ifp}
func (h *Handler) deletePhysicalInterface(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Interfaces.RemovePhysicalInterface(r.Context(), r.PathValue("id"), r.PathValue("ifp")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NeighborRequest names the far end of a link. Element accepts an id, name or alias.
type NeighborRequest struct {
	Element   string `json:"element"`
	Interface string `json:"ifp_name"`
}

// ChangedResponse reports whether a request modified the inventory
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

// linkNeighbor handles PUT /api/elements/{id}/interfaces/physical/{ifp}/neighbor
func (h *Handler) linkNeighbor(w http.ResponseWriter, r *http.Request) {
	var req NeighborRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	changed, err := h.inv.Interfaces.LinkNeighbor(r.Context(), r.PathValue("id"), r.PathValue("ifp"), req.Element, req.Interface)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ChangedResponse{Changed: changed})
}

// unlinkNeighbor handles DELETE /api/elements/{id}/interfaces/physical/{ifp}/neighbor
func (h *Handler) unlinkNeighbor(w http.ResponseWriter, r *http.Request) {
	changed, err := h.inv.Interfaces.UnlinkNeighbor(r.Context(), r.PathValue("id"), r.PathValue("ifp"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ChangedResponse{Changed: changed})
}

// listLogicalInterfaces handles GET /api/elements/{id}/interfaces/logical
func (h *Handler) listLogicalInterfaces(w http.ResponseWriter, r *http.Request) {
	ifls, err := h.inv.Interfaces.ListLogicalInterfaces(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ifls)
}

// getLogicalInterface handles GET /api/elements/{id}/interfaces/logical/{ifl}
func (h *Handler) getLogicalInterface(w http.ResponseWriter, r *http.Request) {
	ifl, err := h.inv.Interfaces.GetLogicalInterface(r.Context(), r.PathValue("id"), r.PathValue("ifl"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ifl)
}

// storeLogicalInterface handles PUT /api/elements/{id}/interfaces/logical/{ifl}
func (h *Handler) storeLogicalInterface(w http.ResponseWriter, r *http.Request) {
	var ifl model.LogicalInterface
	if err := decode(r, &ifl); err != nil {
		h.writeError(w, r, err)
		return
	}
	ifl.Name = r.PathValue("ifl")
	created, err := h.inv.Interfaces.StoreLogicalInterface(r.Context(), r.PathValue("id"), &ifl)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, ifl)
}

// deleteLogicalInterface handles DELETE /api/elements/{id}/interfaces/logical/{ifl}
func (h *Handler) deleteLogicalInterface(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Interfaces.RemoveLogicalInterface(r.Context(), r.PathValue("id"), r.PathValue("ifl")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
