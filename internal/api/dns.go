package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/model"
)

// listZones handles GET /api/dns/zones
func (h *Handler) listZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.inv.Dns.ListZones(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, zones)
}

// getZone handles GET /api/dns/zones/{id}, accepting an id or a zone name
func (h *Handler) getZone(w http.ResponseWriter, r *http.Request) {
	z, err := h.inv.Dns.GetZone(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, z)
}

// createZone handles POST /api/dns/zones
func (h *Handler) createZone(w http.ResponseWriter, r *http.Request) {
	var z model.DnsZone
	if err := decode(r, &z); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Dns.StoreZone(r.Context(), &z)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, z)
}

// updateZone handles PUT /api/dns/zones/{id}
func (h *Handler) updateZone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var z model.DnsZone
	if err := decode(r, &z); err != nil {
		h.writeError(w, r, err)
		return
	}
	z.ID = id
	created, err := h.inv.Dns.StoreZone(r.Context(), &z)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, z)
}

// deleteZone handles DELETE /api/dns/zones/{id}
func (h *Handler) deleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Dns.RemoveZone(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getRecordSet handles GET /api/dns/recordsets/{id}
func (h *Handler) getRecordSet(w http.ResponseWriter, r *http.Request) {
	rs, err := h.inv.Dns.GetRecordSet(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rs)
}

// deleteRecordSet handles DELETE /api/dns/recordsets/{id}
func (h *Handler) deleteRecordSet(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Dns.RemoveRecordSet(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
