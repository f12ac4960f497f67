package httpadapter

import (
	"net/http"
	"strconv"
)

// handleDashboard returns everything the admin dashboard renders:
// advertisers, campaigns, slot occupancy, feed tier capacity and the
// analytics rollups, in a single payload.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleClickStatsByDay returns the zero-filled daily click series. The
// `days` query parameter must be 7 or 30 and defaults to 7.
func (h *Handler) handleClickStatsByDay(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid 'days' parameter", http.StatusBadRequest)
			return
		}
		days = parsed
	}
	series, err := h.svc.ClicksByDay(r.Context(), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, series)
}
