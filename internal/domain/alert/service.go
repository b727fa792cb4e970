package alert

import "context"

// Service defines the security view operations
type Service interface {
	List(ctx context.Context, filter Filter) ([]*Alert, error)
	Get(ctx context.Context, id string) (*Alert, error)
	Summary(ctx context.Context) (Summary, error)
}
