package dto

import (
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/worker"
)

// ScanStatusDTO reports the deep-scan simulator state
type ScanStatusDTO struct {
	State         string     `json:"state"`
	Progress      float64    `json:"progress"`
	Phase         int        `json:"phase"`
	PhaseCount    int        `json:"phaseCount"`
	Message       string     `json:"message"`
	CompletedRuns int        `json:"completedRuns"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// ToScanStatusDTO converts a simulator status
func ToScanStatusDTO(s worker.ScanStatus) ScanStatusDTO {
	return ScanStatusDTO{
		State:         string(s.State),
		Progress:      s.Progress,
		Phase:         s.Phase,
		PhaseCount:    len(worker.ScanPhases),
		Message:       s.Message,
		CompletedRuns: s.CompletedRuns,
		StartedAt:     s.StartedAt,
		CompletedAt:   s.CompletedAt,
	}
}
