package handlers

import (
	"context"
	"net/http"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/overview"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
)

// OverviewService serves the landing view
type OverviewService interface {
	Overview(ctx context.Context) overview.Overview
	Views(ctx context.Context) []overview.View
}

type OverviewHandler struct {
	service OverviewService
}

func NewOverviewHandler(service OverviewService) *OverviewHandler {
	return &OverviewHandler{service: service}
}

// Overview returns the stat cards, spend chart, activity feed and top recommendation
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, h.service.Overview(r.Context()))
}

// Views lists the dashboard sections
func (h *OverviewHandler) Views(w http.ResponseWriter, r *http.Request) {
	views := h.service.Views(r.Context())
	utils.WriteList(w, views, len(views))
}
