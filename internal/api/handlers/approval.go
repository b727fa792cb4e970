package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/api/middleware"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
)

type ApprovalHandler struct {
	service approval.Service
	logger  *logger.Logger
}

func NewApprovalHandler(service approval.Service, log *logger.Logger) *ApprovalHandler {
	return &ApprovalHandler{service: service, logger: log}
}

// List returns the approval queue
// @Summary List approval requests
// @Tags Approvals
// @Produce json
// @Success 200 {object} dto.ApprovalListDTO
// @Router /approvals [get]
func (h *ApprovalHandler) List(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.service.List(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to list approvals")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToApprovalListDTO(reqs))
}

func (h *ApprovalHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, h.logger, err, "Failed to get approval")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToApprovalDTO(req))
}

// Approve resolves a pending request as approved
// @Summary Approve request
// @Tags Approvals
// @Param id path string true "Request ID"
// @Success 200 {object} dto.ApprovalDTO
// @Failure 409 {object} utils.ErrorResponse "Request already denied"
// @Router /approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req, err := h.service.Approve(r.Context(), id)
	if err != nil {
		writeErr(w, h.logger, err, "Failed to approve request")
		return
	}
	middleware.AddLogField(w, "approval_id", id)
	utils.WriteSuccess(w, http.StatusOK, dto.ToApprovalDTO(req))
}

// Deny resolves a pending request as denied
func (h *ApprovalHandler) Deny(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req, err := h.service.Deny(r.Context(), id)
	if err != nil {
		writeErr(w, h.logger, err, "Failed to deny request")
		return
	}
	middleware.AddLogField(w, "approval_id", id)
	utils.WriteSuccess(w, http.StatusOK, dto.ToApprovalDTO(req))
}

func (h *ApprovalHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		writeErr(w, h.logger, err, "Failed to reset approvals")
		return
	}
	reqs, err := h.service.List(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to list approvals")
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Approval queue reset", dto.ToApprovalListDTO(reqs))
}
