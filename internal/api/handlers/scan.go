package handlers

import (
	"net/http"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
	"github.com/davidotu-spec/AegisFlow-AI/internal/worker"
)

// Scanner controls the deep-scan simulator
type Scanner interface {
	Start() (worker.ScanStatus, error)
	Status() worker.ScanStatus
	Cancel() bool
}

type ScanHandler struct {
	scanner Scanner
	logger  *logger.Logger
}

func NewScanHandler(scanner Scanner, log *logger.Logger) *ScanHandler {
	return &ScanHandler{scanner: scanner, logger: log}
}

// Start begins a deep scan. A scan already in progress yields 409.
// @Summary Start deep scan
// @Tags Cost Audit
// @Produce json
// @Success 202 {object} dto.ScanStatusDTO
// @Failure 409 {object} utils.ErrorResponse "Scan already running"
// @Router /cost-audit/scan [post]
func (h *ScanHandler) Start(w http.ResponseWriter, r *http.Request) {
	st, err := h.scanner.Start()
	if err != nil {
		writeErr(w, h.logger, err, "Failed to start scan")
		return
	}
	utils.WriteSuccess(w, http.StatusAccepted, dto.ToScanStatusDTO(st))
}

func (h *ScanHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, dto.ToScanStatusDTO(h.scanner.Status()))
}

// Cancel stops a running scan without recording results
func (h *ScanHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	msg := "No scan in progress"
	if h.scanner.Cancel() {
		msg = "Scan cancelled"
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, msg, dto.ToScanStatusDTO(h.scanner.Status()))
}
