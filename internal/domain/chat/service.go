package chat

import "context"

// Service defines the assistant view operations
type Service interface {
	// Send appends the user's message, queries the assistant and appends the reply
	Send(ctx context.Context, content string) (*Message, error)

	// History returns the conversation in order
	History(ctx context.Context) ([]*Message, error)

	// Reset starts a new conversation holding only the greeting
	Reset(ctx context.Context) error
}
