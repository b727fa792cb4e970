package dto

import "github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"

// ResourceDTO represents an audited resource in API responses
// Uses camelCase for frontend compatibility
type ResourceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Provider    string  `json:"provider"`
	MonthlyCost float64 `json:"monthlyCost"`
	Status      string  `json:"status"`
	WasteScore  int     `json:"wasteScore"`
}

// ResourceListQuery holds the audit list query parameters
type ResourceListQuery struct {
	Provider string `json:"provider" validate:"omitempty,oneof=AWS Azure GCP"`
	Status   string `json:"status" validate:"omitempty,oneof=idle active zombie terminated"`
	Type     string `json:"type" validate:"max=64"`
	Query    string `json:"q" validate:"max=128"`
}

// CostPointDTO is one month of cost history
type CostPointDTO struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// ResourceDetailDTO is the drill-down view of a resource
type ResourceDetailDTO struct {
	ResourceDTO
	Efficiency  int            `json:"efficiency"`
	Wasteful    bool           `json:"wasteful"`
	Rightsizing bool           `json:"rightsizingCandidate"`
	History     []CostPointDTO `json:"history"`
}

// WasteSummaryDTO holds the cost-audit statistics
type WasteSummaryDTO struct {
	TotalLeakage     float64 `json:"totalLeakage"`
	ZombieCount      int     `json:"zombieCount"`
	RightsizingCount int     `json:"rightsizingCount"`
	ResourceCount    int     `json:"resourceCount"`
}

// ToResourceDTO converts a domain resource
func ToResourceDTO(r *resource.Resource) ResourceDTO {
	return ResourceDTO{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Provider:    string(r.Provider),
		MonthlyCost: r.MonthlyCost,
		Status:      string(r.Status),
		WasteScore:  r.WasteScore,
	}
}

// ToResourceDTOs converts a slice of domain resources
func ToResourceDTOs(rs []*resource.Resource) []ResourceDTO {
	out := make([]ResourceDTO, len(rs))
	for i, r := range rs {
		out[i] = ToResourceDTO(r)
	}
	return out
}

// ToResourceDetailDTO converts an analysis
func ToResourceDetailDTO(a *resource.Analysis) ResourceDetailDTO {
	history := make([]CostPointDTO, len(a.History))
	for i, p := range a.History {
		history[i] = CostPointDTO{Month: p.Month, Cost: p.Cost}
	}
	return ResourceDetailDTO{
		ResourceDTO: ToResourceDTO(a.Resource),
		Efficiency:  a.Efficiency,
		Wasteful:    a.Wasteful,
		Rightsizing: a.Rightsizing,
		History:     history,
	}
}

// ToWasteSummaryDTO converts a waste summary
func ToWasteSummaryDTO(s resource.Summary) WasteSummaryDTO {
	return WasteSummaryDTO{
		TotalLeakage:     s.TotalLeakage,
		ZombieCount:      s.ZombieCount,
		RightsizingCount: s.RightsizingCount,
		ResourceCount:    s.ResourceCount,
	}
}
