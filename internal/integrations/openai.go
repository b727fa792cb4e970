package integrations

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
)

// OpenAIClient generates assistant replies through chat completions
type OpenAIClient struct {
	client *openai.Client
	model  string
	hasKey bool
}

// NewOpenAIClient creates an OpenAI backend. baseURL overrides the API root
// for compatible servers.
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		hasKey: apiKey != "",
	}
}

// Name identifies the backend in logs and metrics
func (o *OpenAIClient) Name() string { return "openai" }

// Generate sends the system instruction and prompt as one completion request
func (o *OpenAIClient) Generate(ctx context.Context, req assistant.Request) (string, error) {
	if !o.hasKey {
		return "", fmt.Errorf("OpenAI API key is not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
