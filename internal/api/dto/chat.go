package dto

import (
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
)

// MessageDTO is one chat message
type MessageDTO struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageRequest is the body of a chat send
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,notblank,max=4000"`
}

func ToMessageDTO(m *chat.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func ToMessageDTOs(ms []*chat.Message) []MessageDTO {
	out := make([]MessageDTO, len(ms))
	for i, m := range ms {
		out[i] = ToMessageDTO(m)
	}
	return out
}
