package services

import (
	"context"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/metrics"
)

// ApprovalService implements approval.Service
type ApprovalService struct {
	repo   approval.Repository
	logger *logger.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(repo approval.Repository, log *logger.Logger) *ApprovalService {
	return &ApprovalService{
		repo:   repo,
		logger: log,
	}
}

func (s *ApprovalService) List(ctx context.Context) ([]*approval.Request, error) {
	return s.repo.List(ctx)
}

func (s *ApprovalService) Get(ctx context.Context, id string) (*approval.Request, error) {
	return s.repo.Get(ctx, id)
}

// Approve moves a pending request to approved
func (s *ApprovalService) Approve(ctx context.Context, id string) (*approval.Request, error) {
	return s.decide(ctx, id, approval.StatusApproved)
}

// Deny moves a pending request to denied
func (s *ApprovalService) Deny(ctx context.Context, id string) (*approval.Request, error) {
	return s.decide(ctx, id, approval.StatusDenied)
}

func (s *ApprovalService) decide(ctx context.Context, id string, decision approval.Status) (*approval.Request, error) {
	req, changed, err := s.repo.Transition(ctx, id, decision)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeConflict) {
			s.logger.WithFields(map[string]interface{}{
				"request_id": id,
				"decision":   decision,
			}).Warn("Conflicting approval decision rejected")
		}
		return nil, err
	}
	if !changed {
		return req, nil
	}

	metrics.RecordApprovalDecision(string(req.Type), string(decision))
	s.logger.WithFields(map[string]interface{}{
		"request_id": req.ID,
		"requester":  req.Requester,
		"type":       req.Type,
		"decision":   decision,
	}).Info("Approval request resolved")

	return req, nil
}

// Reset restores the seed requests
func (s *ApprovalService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx, approval.Seed()); err != nil {
		return errors.As(err, "Failed to reset approvals")
	}
	s.logger.Info("Approval queue reset")
	return nil
}
