package handlers

import (
	"net/http"

	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	assistantConfigured func() bool
	logger              *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(assistantConfigured func() bool, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		assistantConfigured: assistantConfigured,
		logger:              log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles readiness probe. A missing assistant credential does not
// make the service unready; chat replies degrade to a configuration error.
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is ready"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	assistant := "configured"
	if h.assistantConfigured == nil || !h.assistantConfigured() {
		assistant = "missing_api_key"
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"assistant": assistant,
	})
}
