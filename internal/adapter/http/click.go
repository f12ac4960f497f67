package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"erogram-ads/internal/core/port"
)

// handleAdClick records a click and redirects the visitor to the campaign's
// destination URL. It expects an {id} path parameter bound by the router.
// Unknown campaigns result in HTTP 404. Internal errors are logged and
// treated as 404 to avoid leaking information on this public endpoint.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	destination, err := h.svc.RegisterClick(r.Context(), id)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, destination, http.StatusFound)
}

// handleAdView increments a campaign's impression counter.
func (h *Handler) handleAdView(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.svc.RegisterView(r.Context(), id); err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("view error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
