package resource

import "context"

// Service defines the cost-audit operations over the resource store
type Service interface {
	// List returns resources matching the filter, in store order
	List(ctx context.Context, filter Filter) ([]*Resource, error)

	// Get returns a single resource with its derived analysis
	Get(ctx context.Context, id string) (*Analysis, error)

	// Terminate removes a resource. Unknown ids are a no-op.
	Terminate(ctx context.Context, id string) error

	// Summary recomputes the waste statistics over the current store
	Summary(ctx context.Context) (Summary, error)

	// Discover appends records found by a scan
	Discover(ctx context.Context, records []*Resource) error

	// Reset restores the seed resources
	Reset(ctx context.Context) error
}

// Analysis is the detail view of one resource
type Analysis struct {
	Resource    *Resource   `json:"resource"`
	Efficiency  int         `json:"efficiency"`
	Wasteful    bool        `json:"wasteful"`
	Rightsizing bool        `json:"rightsizing"`
	History     []CostPoint `json:"history"`
}
