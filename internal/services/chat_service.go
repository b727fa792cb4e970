package services

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
)

// Assistant answers a query against an environment snapshot
type Assistant interface {
	Query(ctx context.Context, text string, snap assistant.Snapshot) string
}

// ChatService implements chat.Service
type ChatService struct {
	repo      chat.Repository
	resources resource.Repository
	alerts    alert.Repository
	assistant Assistant
	logger    *logger.Logger
	inFlight  atomic.Bool
	now       func() time.Time
}

// NewChatService creates a chat service and seeds the conversation with the greeting
func NewChatService(repo chat.Repository, resources resource.Repository, alerts alert.Repository, a Assistant, log *logger.Logger) *ChatService {
	s := &ChatService{
		repo:      repo,
		resources: resources,
		alerts:    alerts,
		assistant: a,
		logger:    log,
		now:       time.Now,
	}
	if err := repo.Reset(context.Background(), s.greeting()); err != nil {
		log.ErrorWithErr(err, "Failed to seed conversation")
	}
	return s
}

func (s *ChatService) greeting() *chat.Message {
	return s.message(chat.RoleAssistant, chat.Greeting)
}

func (s *ChatService) message(role chat.Role, content string) *chat.Message {
	return &chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now().UTC(),
	}
}

// Send appends the user's message and the assistant's reply. Only one send
// may be in flight at a time.
func (s *ChatService) Send(ctx context.Context, content string) (*chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.BadRequest("Message content is required")
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, errors.Conflict("A message is already being processed")
	}
	defer s.inFlight.Store(false)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, s.message(chat.RoleUser, content)); err != nil {
		return nil, errors.As(err, "Failed to record message")
	}

	reply := s.message(chat.RoleAssistant, s.assistant.Query(ctx, content, snap))
	if err := s.repo.Append(ctx, reply); err != nil {
		return nil, errors.As(err, "Failed to record reply")
	}

	s.logger.WithFields(map[string]interface{}{
		"message_id": reply.ID,
		"length":     len(content),
	}).Info("Assistant message answered")

	return reply, nil
}

func (s *ChatService) snapshot(ctx context.Context) (assistant.Snapshot, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		return assistant.Snapshot{}, errors.As(err, "Failed to read resources")
	}
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return assistant.Snapshot{}, errors.As(err, "Failed to read alerts")
	}
	return assistant.NewSnapshot(resources, alerts), nil
}

// Busy reports whether a send is in flight
func (s *ChatService) Busy() bool {
	return s.inFlight.Load()
}

// History returns the conversation in order
func (s *ChatService) History(ctx context.Context) ([]*chat.Message, error) {
	return s.repo.List(ctx)
}

// Reset clears the conversation back to the greeting
func (s *ChatService) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx, s.greeting()); err != nil {
		return errors.As(err, "Failed to reset conversation")
	}
	s.logger.Info("Conversation reset")
	return nil
}
