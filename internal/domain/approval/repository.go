package approval

import "context"

// Repository defines data access for approval requests
type Repository interface {
	List(ctx context.Context) ([]*Request, error)
	Get(ctx context.Context, id string) (*Request, error)

	// Transition atomically applies decision if the request allows it and
	// returns the resulting request and whether the status changed.
	Transition(ctx context.Context, id string, decision Status) (*Request, bool, error)

	Reset(ctx context.Context, seed []*Request) error
}
