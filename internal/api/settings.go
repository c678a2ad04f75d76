package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/model"
)

// listFacilities handles GET /api/facilities
func (h *Handler) listFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.inv.Facilities.ListFacilities(r.Context(), &model.FacilityFilter{Name: r.URL.Query().Get("name")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, facilities)
}

// getFacility handles GET /api/facilities/{id}, accepting an id or a name
func (h *Handler) getFacility(w http.ResponseWriter, r *http.Request) {
	f, err := h.inv.Facilities.GetFacility(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, f)
}

// createFacility handles POST /api/facilities
func (h *Handler) createFacility(w http.ResponseWriter, r *http.Request) {
	var f model.Facility
	if err := decode(r, &f); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Facilities.StoreFacility(r.Context(), &f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, f)
}

// updateFacility handles PUT /api/facilities/{id}
func (h *Handler) updateFacility(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var f model.Facility
	if err := decode(r, &f); err != nil {
		h.writeError(w, r, err)
		return
	}
	f.ID = id
	created, err := h.inv.Facilities.StoreFacility(r.Context(), &f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, f)
}

// deleteFacility handles DELETE /api/facilities/{id}
func (h *Handler) deleteFacility(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Facilities.RemoveFacility(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listGroups handles GET /api/groups
func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.GroupFilter{
		Type:       q.Get("type"),
		Name:       q.Get("name"),
		FacilityID: q.Get("facility"),
	}
	groups, err := h.inv.Groups.ListGroups(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, groups)
}

// getGroup handles GET /api/groups/{id}
func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	g, err := h.inv.Groups.GetGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

// createGroup handles POST /api/groups. A group with known type and name is updated.
func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var g model.ElementGroup
	if err := decode(r, &g); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Groups.StoreGroup(r.Context(), &g)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, g)
}

// updateGroup handles PUT /api/groups/{id}
func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var g model.ElementGroup
	if err := decode(r, &g); err != nil {
		h.writeError(w, r, err)
		return
	}
	g.ID = id
	created, err := h.inv.Groups.StoreGroup(r.Context(), &g)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, g)
}

// deleteGroup handles DELETE /api/groups/{id}
func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Groups.RemoveGroup(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getGroupElements handles GET /api/groups/{id}/elements
func (h *Handler) getGroupElements(w http.ResponseWriter, r *http.Request) {
	elements, err := h.inv.Groups.ListGroupElements(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, elements)
}

// listRoles handles GET /api/roles
func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.inv.Roles.ListRoles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, roles)
}

// getRole handles GET /api/roles/{name}
func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.inv.Roles.GetRole(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, role)
}

// createRole handles POST /api/roles
func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var role model.ElementRole
	if err := decode(r, &role); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Roles.StoreRole(r.Context(), &role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, role)
}

// updateRole handles PUT /api/roles/{name}
func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var role model.ElementRole
	if err := decode(r, &role); err != nil {
		h.writeError(w, r, err)
		return
	}
	role.Name = r.PathValue("name")
	created, err := h.inv.Roles.StoreRole(r.Context(), &role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, role)
}

// deleteRole handles DELETE /api/roles/{name}
func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Roles.RemoveRole(r.Context(), r.PathValue("name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getRoleImages handles GET /api/roles/{name}/images
func (h *Handler) getRoleImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.inv.Images.GetRoleImages(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, images)
}

// listPlatforms handles GET /api/platforms
func (h *Handler) listPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.inv.Platforms.ListPlatforms(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, platforms)
}

// getPlatform handles GET /api/platforms/{id}, accepting an id or a name
func (h *Handler) getPlatform(w http.ResponseWriter, r *http.Request) {
	p, err := h.inv.Platforms.GetPlatform(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// createPlatform handles POST /api/platforms
func (h *Handler) createPlatform(w http.ResponseWriter, r *http.Request) {
	var p model.Platform
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.inv.Platforms.StorePlatform(r.Context(), &p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, p)
}

// updatePlatform handles PUT /api/platforms/{id}
func (h *Handler) updatePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p model.Platform
	if err := decode(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	p.ID = id
	created, err := h.inv.Platforms.StorePlatform(r.Context(), &p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeStored(w, created, p)
}

// deletePlatform handles DELETE /api/platforms/{id}
func (h *Handler) deletePlatform(w http.ResponseWriter, r *http.Request) {
	if err := h.inv.Platforms.RemovePlatform(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
