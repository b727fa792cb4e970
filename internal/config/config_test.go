package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAssistantEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ASSISTANT_PROVIDER", "ASSISTANT_MODEL", "SCAN_SCHEDULE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearAssistantEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, AssistantGemini, cfg.Assistant.Provider)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Assistant.Model)
	assert.Empty(t, cfg.Assistant.APIKey)
	assert.InDelta(t, 0.7, float64(cfg.Assistant.Temperature), 1e-6)
	assert.Zero(t, cfg.Assistant.Timeout)
	assert.Equal(t, 40*time.Millisecond, cfg.Scan.TickInterval)
	assert.InDelta(t, 1.2, cfg.Scan.Increment, 1e-9)
}

func TestLoad_AssistantKey(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		key      string
		model    string
	}{
		{
			name:     "gemini key",
			env:      map[string]string{"GEMINI_API_KEY": "g-key"},
			provider: AssistantGemini,
			key:      "g-key",
			model:    "gemini-3-flash-preview",
		},
		{
			name:     "api key wins",
			env:      map[string]string{"API_KEY": "shared", "GEMINI_API_KEY": "g-key"},
			provider: AssistantGemini,
			key:      "shared",
			model:    "gemini-3-flash-preview",
		},
		{
			name:     "openai",
			env:      map[string]string{"ASSISTANT_PROVIDER": "OpenAI", "OPENAI_API_KEY": "sk-test"},
			provider: AssistantOpenAI,
			key:      "sk-test",
			model:    "gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearAssistantEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.provider, cfg.Assistant.Provider)
			assert.Equal(t, tt.key, cfg.Assistant.APIKey)
			assert.Equal(t, tt.model, cfg.Assistant.Model)
		})
	}
}

func TestLoad_ZeroTemperature(t *testing.T) {
	clearAssistantEnv(t)
	t.Setenv("ASSISTANT_TEMPERATURE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.Assistant.Temperature)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"unknown provider", "ASSISTANT_PROVIDER", "claude"},
		{"temperature too high", "ASSISTANT_TEMPERATURE", "3"},
		{"zero increment", "SCAN_INCREMENT", "0"},
		{"bad schedule", "SCAN_SCHEDULE", "every tuesday"},
		{"no burst", "RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearAssistantEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_FLOAT", "")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
	assert.Equal(t, 2.5, getEnvAsFloat("X_FLOAT", 2.5))
}
