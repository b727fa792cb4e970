package resource

import "context"

// Repository is the ordered store of audit resources
type Repository interface {
	// Append adds records to the end in the given order. Ids are not deduplicated.
	Append(ctx context.Context, records ...*Resource) error

	// Remove drops every record with the given id. Absent ids are a no-op.
	// It returns the number of records removed.
	Remove(ctx context.Context, id string) (int, error)

	// Get returns the first record with the given id
	Get(ctx context.Context, id string) (*Resource, error)

	// List returns copies of all records in insertion order
	List(ctx context.Context) ([]*Resource, error)

	// Reset replaces the contents with copies of seed
	Reset(ctx context.Context, seed []*Resource) error
}
