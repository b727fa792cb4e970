package chat

import "time"

// Role of a chat participant
type Role string

// Roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting opens every conversation
const Greeting = "Hello! I am AegisFlow AI. I can analyze your cloud spend, check for security vulnerabilities, or automate remediation tasks. How can I assist you today?"

// Message is one entry of the append-only conversation
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
