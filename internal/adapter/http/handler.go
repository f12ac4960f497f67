package httpadapter

import (
	"net/http"

	"erogram-ads/internal/core/port"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the AdsUseCase to execute business logic, a logger for structured
// logging and the admin token used to guard the back-office endpoints. The
// token is injected here rather than read from any ambient global.
type Handler struct {
	svc        port.AdsUseCase
	logger     *slog.Logger
	adminToken string
	router     chi.Router
}

// NewHandler creates a handler with all routes configured. The click and
// view endpoints are public; everything else requires the admin token. An
// empty adminToken disables the check, which is only intended for local
// development.
func NewHandler(svc port.AdsUseCase, logger *slog.Logger, adminToken string) *Handler {
	h := &Handler{svc: svc, logger: logger, adminToken: adminToken}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ad/click/{id}", h.handleAdClick)
		r.Post("/ad/view/{id}", h.handleAdView)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/advertisers-dashboard", h.handleDashboard)
			r.Post("/advertisers", h.handleCreateAdvertiser)
			r.Put("/advertisers/{id}", h.handleUpdateAdvertiser)
			r.Delete("/advertisers/{id}", h.handleDeleteAdvertiser)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Put("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Post("/campaigns/{id}/toggle", h.handleToggleCampaign)
			r.Get("/click-stats-by-day", h.handleClickStatsByDay)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
