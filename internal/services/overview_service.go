package services

import (
	"context"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/overview"
)

// OverviewService serves the landing view and the view catalog
type OverviewService struct{}

// NewOverviewService creates a new overview service
func NewOverviewService() *OverviewService {
	return &OverviewService{}
}

func (s *OverviewService) Overview(ctx context.Context) overview.Overview {
	return overview.Default()
}

func (s *OverviewService) Views(ctx context.Context) []overview.View {
	return overview.Views()
}
