package chat

import "context"

// Repository stores the conversation in send order
type Repository interface {
	Append(ctx context.Context, msgs ...*Message) error
	List(ctx context.Context) ([]*Message, error)
	// Reset replaces the conversation with msgs
	Reset(ctx context.Context, msgs ...*Message) error
}
