package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/api/middleware"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
)

type ResourceHandler struct {
	service   resource.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewResourceHandler(service resource.Service, log *logger.Logger, val *validator.Validator) *ResourceHandler {
	return &ResourceHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// List returns the audited resources
// @Summary List resources
// @Tags Cost Audit
// @Produce json
// @Param provider query string false "Filter by provider (AWS, Azure, GCP)"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by resource type"
// @Param q query string false "Search id, name or type"
// @Success 200 {object} utils.ListResponse{items=[]dto.ResourceDTO}
// @Router /cost-audit/resources [get]
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := dto.ResourceListQuery{
		Provider: r.URL.Query().Get("provider"),
		Status:   r.URL.Query().Get("status"),
		Type:     r.URL.Query().Get("type"),
		Query:    r.URL.Query().Get("q"),
	}
	if !validate(w, h.validator, q) {
		return
	}

	resources, err := h.service.List(r.Context(), resource.Filter{
		Provider: resource.Provider(q.Provider),
		Status:   resource.Status(q.Status),
		Type:     q.Type,
		Query:    q.Query,
	})
	if err != nil {
		writeErr(w, h.logger, err, "Failed to list resources")
		return
	}

	utils.WriteList(w, dto.ToResourceDTOs(resources), len(resources))
}

// Get returns a resource with its efficiency and cost history
// @Summary Get resource by ID
// @Tags Cost Audit
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.ResourceDetailDTO
// @Failure 404 {object} utils.ErrorResponse "Resource not found"
// @Router /cost-audit/resources/{id} [get]
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, h.logger, err, "Failed to get resource")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToResourceDetailDTO(analysis))
}

// Terminate removes a resource from the audit. Unknown ids succeed.
func (h *ResourceHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Terminate(r.Context(), id); err != nil {
		writeErr(w, h.logger, err, "Failed to terminate resource")
		return
	}
	middleware.AddLogField(w, "resource_id", id)
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Resource terminated", map[string]string{"id": id})
}

// Summary returns the waste statistics
func (h *ResourceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to summarize resources")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.ToWasteSummaryDTO(sum))
}

// Reset restores the seed resources
func (h *ResourceHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		writeErr(w, h.logger, err, "Failed to reset resources")
		return
	}
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to summarize resources")
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Resource store reset", dto.ToWasteSummaryDTO(sum))
}
