package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/model"
)

// listImages handles GET /api/images
func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	query := &model.ImageQuery{
		Type:    q.Get("type"),
		State:   model.ImageState(q.Get("state")),
		Role:    q.Get("role"),
		Chipset: q.Get("chipset"),
		Version: q.Get("version"),
		Filter:  q.Get("filter"),
		Limit:   limit,
	}
	images, err := h.inv.Images.ListImages(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, images)
}

// getImage handles GET /api/images/{id}
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.inv.Images.GetImage(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, img)
}

// createImage handles POST /api/images
func (h *Handler) createImage(w http.ResponseWriter, r *http.Request) {
	var img model.Image
	if err := decode(r, &img); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Images.StoreImage(r.Context(), &img)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, img)
}

// updateImage handles PUT /api/images/{id}
func (h *Handler) updateImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var img model.Image
	if err := decode(r, &img); err != nil {
		h.writeError(w, r, err)
		return
	}
	img.ID = id
	created, err := h.inv.Images.StoreImage(r.Context(), &img)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, img)
}

// deleteImage handles DELETE /api/images/{id}
func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Images.RemoveImage(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImageStateRequest moves an image to a new lifecycle state
type ImageStateRequest struct {
	State model.ImageState `json:"image_state"`
}

// ImageStateResponse reports the new state and the images it superseded
type ImageStateResponse struct {
	ImageID    string           `json:"image_id"`
	State      model.ImageState `json:"image_state"`
	Superseded []string         `json:"superseded"`
}

// updateImageState handles PUT /api/images/{id}/state
func (h *Handler) updateImageState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req ImageStateRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	superseded, err := h.inv.Images.UpdateImageState(r.Context(), id, req.State)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if superseded == nil {
		superseded = []string{}
	}
	h.writeJSON(w, http.StatusOK, ImageStateResponse{ImageID: id, State: req.State, Superseded: superseded})
}
