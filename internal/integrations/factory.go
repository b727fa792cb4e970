package integrations

import (
	"fmt"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/config"
)

// NewGenerator builds the assistant backend selected by cfg
func NewGenerator(cfg config.AssistantConfig) (assistant.Generator, error) {
	switch cfg.Provider {
	case "", config.AssistantGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case config.AssistantOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider %q", cfg.Provider)
	}
}
