package api

import (
	"net/http"

	"github.com/martinsuchenak/netinv/internal/probe"
)

// listProbeResults handles GET /api/probe/results
func (h *Handler) listProbeResults(w http.ResponseWriter, r *http.Request) {
	if h.probes == nil {
		h.writeJSON(w, http.StatusOK, []probe.Result{})
		return
	}
	reachable, err := queryBool(r, "reachable")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	results, err := h.probes.Results(reachable)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}
