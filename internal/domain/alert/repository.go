package alert

import "context"

// Repository defines read access to the alert list
type Repository interface {
	// List returns copies of all alerts in seed order
	List(ctx context.Context) ([]*Alert, error)

	// Get returns an alert by id
	Get(ctx context.Context, id string) (*Alert, error)
}
