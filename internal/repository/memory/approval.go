package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

// ApprovalRepository implements approval.Repository
type ApprovalRepository struct {
	mu       sync.RWMutex
	requests []*approval.Request
}

// NewApprovalRepository creates an approval repository holding copies of seed
func NewApprovalRepository(seed []*approval.Request) *ApprovalRepository {
	return &ApprovalRepository{requests: cloneRequests(seed)}
}

func (r *ApprovalRepository) List(ctx context.Context) ([]*approval.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRequests(r.requests), nil
}

func (r *ApprovalRepository) Get(ctx context.Context, id string) (*approval.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if req := r.find(id); req != nil {
		return req.Clone(), nil
	}
	return nil, errors.NotFound("Approval request")
}

// Transition applies decision under the write lock so concurrent decisions
// on the same request resolve to a single outcome.
func (r *ApprovalRepository) Transition(ctx context.Context, id string, decision approval.Status) (*approval.Request, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := r.find(id)
	if req == nil {
		return nil, false, errors.NotFound("Approval request")
	}

	changed, ok := req.Decide(decision)
	if !ok {
		return req.Clone(), false, errors.Conflict(fmt.Sprintf("Request %s is already %s", id, req.Status))
	}
	if changed {
		req.Status = decision
	}
	return req.Clone(), changed, nil
}

func (r *ApprovalRepository) Reset(ctx context.Context, seed []*approval.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = cloneRequests(seed)
	return nil
}

func (r *ApprovalRepository) find(id string) *approval.Request {
	for _, req := range r.requests {
		if req.ID == id {
			return req
		}
	}
	return nil
}

func cloneRequests(in []*approval.Request) []*approval.Request {
	out := make([]*approval.Request, len(in))
	for i, req := range in {
		out[i] = req.Clone()
	}
	return out
}
