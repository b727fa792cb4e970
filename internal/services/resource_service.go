package services

import (
	"context"
	"strings"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/metrics"
)

// ScanCanceller stops an in-flight deep scan and waits for it to unwind
type ScanCanceller interface {
	Cancel() bool
}

// ResourceService implements resource.Service
type ResourceService struct {
	repo    resource.Repository
	seed    func() []*resource.Resource
	scanner ScanCanceller
	logger  *logger.Logger
}

// NewResourceService creates a new resource service. seed supplies the
// records restored by Reset.
func NewResourceService(repo resource.Repository, seed func() []*resource.Resource, log *logger.Logger) *ResourceService {
	if seed == nil {
		seed = resource.Seed
	}
	s := &ResourceService{
		repo:   repo,
		seed:   seed,
		logger: log,
	}
	s.publishSummary(context.Background())
	return s
}

// AttachScanner registers the scanner whose run is cancelled by Reset.
func (s *ResourceService) AttachScanner(scanner ScanCanceller) {
	s.scanner = scanner
}

// List returns resources matching filter in store order
func (s *ResourceService) List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.As(err, "Failed to list resources")
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]*resource.Resource, 0, len(all))
	for _, r := range all {
		if filter.Provider != "" && r.Provider != filter.Provider {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(r.Type, filter.Type) {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func matchesQuery(r *resource.Resource, q string) bool {
	return strings.Contains(strings.ToLower(r.ID), q) ||
		strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Type), q)
}

// Get returns the detail analysis of a resource
func (s *ResourceService) Get(ctx context.Context, id string) (*resource.Analysis, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return resource.Analyze(r), nil
}

// Terminate removes a resource from the audit. Unknown ids succeed silently.
func (s *ResourceService) Terminate(ctx context.Context, id string) error {
	target, _ := s.repo.Get(ctx, id)

	n, err := s.repo.Remove(ctx, id)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to terminate resource")
		return errors.As(err, "Failed to terminate resource")
	}
	if n == 0 {
		s.logger.WithFields(map[string]interface{}{
			"resource_id": id,
		}).Debug("Terminate requested for unknown resource")
		return nil
	}

	fields := map[string]interface{}{
		"resource_id": id,
		"removed":     n,
	}
	if target != nil {
		fields["provider"] = target.Provider
		fields["monthly_cost"] = target.MonthlyCost
		metrics.RecordTermination(string(target.Provider))
	}
	s.logger.WithFields(fields).Info("Resource terminated")

	s.publishSummary(ctx)
	return nil
}

// Summary recomputes the waste statistics
func (s *ResourceService) Summary(ctx context.Context) (resource.Summary, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return resource.Summary{}, errors.As(err, "Failed to summarize resources")
	}
	return resource.Summarize(all), nil
}

// Discover appends scan results to the end of the store
func (s *ResourceService) Discover(ctx context.Context, records []*resource.Resource) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return errors.As(err, "Failed to read resources")
	}
	known := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		known[r.ID] = struct{}{}
	}
	for _, r := range records {
		if _, dup := known[r.ID]; dup {
			s.logger.WithFields(map[string]interface{}{
				"resource_id": r.ID,
			}).Warn("Discovered resource id already present")
		}
	}

	if err := s.repo.Append(ctx, records...); err != nil {
		s.logger.ErrorWithErr(err, "Failed to append discovered resources")
		return errors.As(err, "Failed to append discovered resources")
	}

	metrics.AddDiscoveredResources(len(records))
	s.logger.WithFields(map[string]interface{}{
		"count": len(records),
	}).Info("Discovered resources added")

	s.publishSummary(ctx)
	return nil
}

// Reset cancels any running scan and restores the seed resources
func (s *ResourceService) Reset(ctx context.Context) error {
	if s.scanner != nil && s.scanner.Cancel() {
		s.logger.Info("Running deep scan cancelled by reset")
	}
	if err := s.repo.Reset(ctx, s.seed()); err != nil {
		return errors.As(err, "Failed to reset resources")
	}
	s.logger.Info("Resource store reset")
	s.publishSummary(ctx)
	return nil
}

func (s *ResourceService) publishSummary(ctx context.Context) {
	sum, err := s.Summary(ctx)
	if err != nil {
		return
	}
	metrics.SetWasteSummary(sum.TotalLeakage, sum.ZombieCount, sum.RightsizingCount)
}
