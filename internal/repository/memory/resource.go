package memory

import (
	"context"
	"sync"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

// ResourceRepository implements resource.Repository over an ordered slice
type ResourceRepository struct {
	mu        sync.RWMutex
	resources []*resource.Resource
}

// NewResourceRepository creates a resource repository holding copies of seed
func NewResourceRepository(seed []*resource.Resource) *ResourceRepository {
	return &ResourceRepository{resources: cloneResources(seed)}
}

// Append adds records to the end of the store
func (r *ResourceRepository) Append(ctx context.Context, records ...*resource.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		if rec == nil {
			continue
		}
		r.resources = append(r.resources, rec.Clone())
	}
	return nil
}

// Remove drops every record with id, keeping the order of the rest
func (r *ResourceRepository) Remove(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.resources[:0]
	removed := 0
	for _, rec := range r.resources {
		if rec.ID == id {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	// clear the tail so dropped records can be collected
	for i := len(kept); i < len(r.resources); i++ {
		r.resources[i] = nil
	}
	r.resources = kept
	return removed, nil
}

// Get returns a copy of the first record with id
func (r *ResourceRepository) Get(ctx context.Context, id string) (*resource.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.resources {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return nil, errors.NotFound("Resource")
}

// List returns copies of all records in insertion order
func (r *ResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneResources(r.resources), nil
}

// Reset replaces the store with copies of seed
func (r *ResourceRepository) Reset(ctx context.Context, seed []*resource.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resources = cloneResources(seed)
	return nil
}

func cloneResources(in []*resource.Resource) []*resource.Resource {
	out := make([]*resource.Resource, 0, len(in))
	for _, rec := range in {
		if rec != nil {
			out = append(out, rec.Clone())
		}
	}
	return out
}
