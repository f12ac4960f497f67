package httpadapter

import (
	"encoding/json"
	"net/http"

	"erogram-ads/internal/core/port"
)

// handleCreateAdvertiser creates an advertiser account from a JSON payload.
func (h *Handler) handleCreateAdvertiser(w http.ResponseWriter, r *http.Request) {
	var in port.AdvertiserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	a, err := h.svc.CreateAdvertiser(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, a)
}

// handleUpdateAdvertiser rewrites an advertiser identified by {id}.
func (h *Handler) handleUpdateAdvertiser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var in port.AdvertiserInput
	if err = json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	a, err := h.svc.UpdateAdvertiser(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// handleDeleteAdvertiser deletes an advertiser and cascade-deletes its
// campaigns.
func (h *Handler) handleDeleteAdvertiser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err = h.svc.DeleteAdvertiser(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
