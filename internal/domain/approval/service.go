package approval

import "context"

// Service defines the approvals view operations
type Service interface {
	List(ctx context.Context) ([]*Request, error)
	Get(ctx context.Context, id string) (*Request, error)
	Approve(ctx context.Context, id string) (*Request, error)
	Deny(ctx context.Context, id string) (*Request, error)
	Reset(ctx context.Context) error
}
