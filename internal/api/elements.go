package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/model"
)

// listElements handles GET /api/elements
func (h *Handler) listElements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ElementFilter{
		GroupID:             q.Get("group"),
		Role:                q.Get("role"),
		PlatformID:          q.Get("platform"),
		Name:                q.Get("name"),
		Tag:                 q.Get("tag"),
		AdministrativeState: model.AdministrativeState(q.Get("state")),
	}
	elements, err := h.inv.Elements.ListElements(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, elements)
}

// getElement handles GET /api/elements/{id}, accepting an id, name or alias
func (h *Handler) getElement(w http.ResponseWriter, r *http.Request) {
	e, err := h.inv.Elements.GetElement(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

// createElement handles POST /api/elements
func (h *Handler) createElement(w http.ResponseWriter, r *http.Request) {
	var e model.Element
	if err := decode(r, &e); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Elements.StoreElement(r.Context(), &e)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, e)
}

// updateElement handles PUT /api/elements/{id}
func (h *Handler) updateElement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var e model.Element
	if err := decode(r, &e); err != nil {
		h.writeError(w, r, err)
		return
	}
	e.ID = id
	created, err := h.inv.Elements.StoreElement(r.Context(), &e)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, e)
}

// deleteElement handles DELETE /api/elements/{id}
func (h *Handler) deleteElement(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Elements.RemoveElement(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ElementStateRequest changes the administrative and/or operational state of an element
type ElementStateRequest struct {
	AdministrativeState model.AdministrativeState `json:"administrative_state,omitempty"`
	OperationalState    model.OperationalState    `json:"operational_state,omitempty"`
}

// updateElementState handles PUT /api/elements/{id}/state
func (h *Handler) updateElementState(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")
	var req ElementStateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	ctx := r.Context()
	if req.AdministrativeState != "" {
		if err := h.inv.Elements.UpdateAdministrativeState(ctx, ref, req.AdministrativeState); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	if req.OperationalState != "" {
		if err := h.inv.Elements.UpdateOperationalState(ctx, ref, req.OperationalState); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	e, err := h.inv.Elements.GetElement(ctx, ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

// listElementImages handles GET /api/elements/{id}/images
func (h *Handler) listElementImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.inv.ElementImages.ListElementImages(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, images)
}

// storeElementImages handles PUT /api/elements/{id}/images. The body is the
// complete list of images installed on the element.
func (h *Handler) storeElementImages(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("id")
	var refs []model.ElementImageReference
	if err := decode(r, &refs); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.inv.ElementImages.StoreElementImages(r.Context(), ref, refs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.listElementImages(w, r)
}

// deleteElementImage handles DELETE /api/elements/{id}/images/{image}
func (h *Handler) deleteElementImage(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.ElementImages.RemoveElementImage(r.Context(), r.PathValue("id"), r.PathValue("image")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listRecordSets handles GET /api/elements/{id}/dns
func (h *Handler) listRecordSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.inv.Dns.ListRecordSets(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sets)
}

// storeRecordSet handles POST /api/elements/{id}/dns. A body carrying a
// record set id updates that record set.
func (h *Handler) storeRecordSet(w http.ResponseWriter, r *http.Request) {
	var rs model.DnsRecordSet
	if err := decode(r, &rs); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Dns.StoreRecordSet(r.Context(), r.PathValue("id"), &rs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, rs)
}
