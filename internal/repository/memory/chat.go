package memory

import (
	"context"
	"sync"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
)

// ChatRepository implements chat.Repository
type ChatRepository struct {
	mu       sync.RWMutex
	messages []*chat.Message
}

// NewChatRepository creates an empty conversation store
func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (r *ChatRepository) Append(ctx context.Context, msgs ...*chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		c := *m
		r.messages = append(r.messages, &c)
	}
	return nil
}

func (r *ChatRepository) List(ctx context.Context) ([]*chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*chat.Message, len(r.messages))
	for i, m := range r.messages {
		c := *m
		out[i] = &c
	}
	return out, nil
}

func (r *ChatRepository) Reset(ctx context.Context, msgs ...*chat.Message) error {
	r.mu.Lock()
	r.messages = nil
	r.mu.Unlock()
	return r.Append(ctx, msgs...)
}
