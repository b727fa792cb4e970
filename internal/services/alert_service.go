package services

import (
	"context"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/compliance"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
)

// AlertService implements alert.Service
type AlertService struct {
	repo   alert.Repository
	logger *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, log *logger.Logger) *AlertService {
	return &AlertService{
		repo:   repo,
		logger: log,
	}
}

// List returns alerts matching filter in seed order
func (s *AlertService) List(ctx context.Context, filter alert.Filter) ([]*alert.Alert, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.As(err, "Failed to list alerts")
	}
	out := make([]*alert.Alert, 0, len(all))
	for _, a := range all {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Get retrieves an alert by id
func (s *AlertService) Get(ctx context.Context, id string) (*alert.Alert, error) {
	return s.repo.Get(ctx, id)
}

// Summary counts alerts by status and severity
func (s *AlertService) Summary(ctx context.Context) (alert.Summary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return alert.Summary{}, errors.As(err, "Failed to summarize alerts")
	}
	return alert.Summarize(all), nil
}

// Compliance returns the static compliance posture
func (s *AlertService) Compliance(ctx context.Context) compliance.Posture {
	return compliance.Default()
}
