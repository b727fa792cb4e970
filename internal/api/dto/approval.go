package dto

import "github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"

// ApprovalDTO represents an approval request
type ApprovalDTO struct {
	ID            string  `json:"id"`
	Requester     string  `json:"requester"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
}

// ApprovalListDTO is the approvals queue
type ApprovalListDTO struct {
	Items []ApprovalDTO `json:"items"`
	Total int           `json:"total"`
	// AllResolved is true when nothing is pending
	AllResolved bool `json:"allResolved"`
}

func ToApprovalDTO(r *approval.Request) ApprovalDTO {
	return ApprovalDTO{
		ID:            r.ID,
		Requester:     r.Requester,
		Description:   r.Description,
		EstimatedCost: r.EstimatedCost,
		Type:          string(r.Type),
		Status:        string(r.Status),
	}
}

func ToApprovalListDTO(rs []*approval.Request) ApprovalListDTO {
	items := make([]ApprovalDTO, len(rs))
	for i, r := range rs {
		items[i] = ToApprovalDTO(r)
	}
	return ApprovalListDTO{Items: items, Total: len(items), AllResolved: approval.AllResolved(rs)}
}
