package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/compliance"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
)

// SecurityService combines alerts with the compliance posture
type SecurityService interface {
	alert.Service
	Compliance(ctx context.Context) compliance.Posture
}

type AlertHandler struct {
	service   SecurityService
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertHandler(service SecurityService, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// List returns security alerts
// @Summary List alerts
// @Tags Security
// @Produce json
// @Param severity query string false "Filter by severity"
// @Param status query string false "Filter by status (open, fixed)"
// @Success 200 {object} utils.ListResponse{items=[]dto.AlertDTO}
// @Router /security/alerts [get]
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := dto.AlertListQuery{
		Severity: r.URL.Query().Get("severity"),
		Status:   r.URL.Query().Get("status"),
	}
	if !validate(w, h.validator, q) {
		return
	}

	alerts, err := h.service.List(r.Context(), alert.Filter{
		Severity: alert.Severity(q.Severity),
		Status:   alert.Status(q.Status),
	})
	if err != nil {
		writeErr(w, h.logger, err, "Failed to list alerts")
		return
	}
	utils.WriteList(w, dto.ToAlertDTOs(alerts), len(alerts))
}

func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, h.logger, err, "Failed to get alert")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToAlertDTO(a))
}

func (h *AlertHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to summarize alerts")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToAlertSummaryDTO(sum))
}

func (h *AlertHandler) Compliance(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, dto.ToComplianceDTO(h.service.Compliance(r.Context())))
}
