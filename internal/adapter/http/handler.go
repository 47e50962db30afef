package httpadapter

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"outreach/internal/core/port"
)

// Handler is the inbound HTTP adapter. Operator and cron routes live under
// /api/v1 behind a bearer secret. Tracking routes are public.
type Handler struct {
	lifecycle context.Context
	dispatch  port.DispatchUseCase
	tracking  port.TrackingUseCase
	secret    string
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. An empty secret
// rejects every protected request. Dispatch runs end with lifecycle, not
// with the request that started them.
func NewHandler(lifecycle context.Context, dispatch port.DispatchUseCase, tracking port.TrackingUseCase, secret string, logger *slog.Logger) *Handler {
	h := &Handler{lifecycle: lifecycle, dispatch: dispatch, tracking: tracking, secret: secret, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/track/open", h.handleTrackOpen)
		r.Get("/track/click", h.handleTrackClick)

		r.Route("/v1", func(r chi.Router) {
			r.Use(h.requireSecret)

			r.Route("/campaigns/{id}", func(r chi.Router) {
				r.Post("/send", h.handleSend)
				r.Get("/send/preview", h.handlePreview)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/test-send", h.handleTestSend)
				r.Get("/stats", h.handleCampaignStats)
			})
			r.Get("/stats/overview", h.handleStatsOverview)

			// Schedulers differ in the method they use.
			r.Get("/cron/followup", h.handleFollowUpCron)
			r.Post("/cron/followup", h.handleFollowUpCron)
			r.Get("/cron/daily-campaigns", h.handleDailyCron)
			r.Post("/cron/daily-campaigns", h.handleDailyCron)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// jobContext keeps the values of r but ignores a client disconnect. The
// returned context is cancelled only when the process shuts down.
func (h *Handler) jobContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	if h.lifecycle == nil {
		return ctx, cancel
	}
	stop := context.AfterFunc(h.lifecycle, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (h *Handler) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || h.secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			h.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
