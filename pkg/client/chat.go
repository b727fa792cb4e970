package client

import (
	"context"
	"net/http"
)

// ChatService handles the assistant conversation
type ChatService struct {
	client *Client
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// Send posts a message and returns the assistant reply
func (s *ChatService) Send(ctx context.Context, content string) (*Message, error) {
	var msg Message
	if _, err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/assistant/messages", sendMessageRequest{Content: content}, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// History retrieves the conversation in order
func (s *ChatService) History(ctx context.Context) ([]Message, error) {
	var out list[Message]
	if _, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/assistant/messages", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Reset starts a new conversation holding only the greeting
func (s *ChatService) Reset(ctx context.Context) ([]Message, error) {
	var msgs []Message
	if _, err := s.client.doRequest(ctx, http.MethodDelete, "/api/v1/assistant/messages", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
