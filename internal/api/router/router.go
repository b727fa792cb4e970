package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/handlers"
	"github.com/davidotu-spec/AegisFlow-AI/internal/api/middleware"
	"github.com/davidotu-spec/AegisFlow-AI/internal/config"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/metrics"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Overview *handlers.OverviewHandler
	Resource *handlers.ResourceHandler
	Scan     *handlers.ScanHandler
	Alert    *handlers.AlertHandler
	Approval *handlers.ApprovalHandler
	Chat     *handlers.ChatHandler
}

func New(cfg *config.Config, log *logger.Logger, limiter *middleware.RateLimiter, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.NotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.New("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed))
	})

	// Probes
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/views", h.Overview.Views)
		r.Get("/overview", h.Overview.Overview)

		// Cost audit
		r.Route("/cost-audit", func(r chi.Router) {
			r.Get("/resources", h.Resource.List)
			r.Get("/resources/{id}", h.Resource.Get)
			r.Delete("/resources/{id}", h.Resource.Terminate)
			r.Get("/summary", h.Resource.Summary)
			r.Post("/reset", h.Resource.Reset)

			r.Post("/scan", h.Scan.Start)
			r.Get("/scan", h.Scan.Status)
			r.Delete("/scan", h.Scan.Cancel)
		})

		// Security
		r.Route("/security", func(r chi.Router) {
			r.Get("/alerts", h.Alert.List)
			r.Get("/alerts/{id}", h.Alert.Get)
			r.Get("/summary", h.Alert.Summary)
			r.Get("/compliance", h.Alert.Compliance)
		})

		// Approvals
		r.Route("/approvals", func(r chi.Router) {
			r.Get("/", h.Approval.List)
			r.Post("/reset", h.Approval.Reset)
			r.Get("/{id}", h.Approval.Get)
			r.Post("/{id}/approve", h.Approval.Approve)
			r.Post("/{id}/deny", h.Approval.Deny)
		})

		// Assistant
		r.Route("/assistant/messages", func(r chi.Router) {
			r.Get("/", h.Chat.History)
			r.Post("/", h.Chat.Send)
			r.Delete("/", h.Chat.Reset)
		})
	})

	return r
}
