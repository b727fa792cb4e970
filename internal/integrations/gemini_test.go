package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
)

func TestGeminiClient_Generate(t *testing.T) {
	var got GeminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Goog-Api-Key"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Right-size "},{"text":"the RDS instance."}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("secret", "test-model", srv.URL)
	out, err := c.Generate(context.Background(), assistant.Request{
		Prompt:            "User Query: help",
		SystemInstruction: "persona",
		Temperature:       0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Right-size the RDS instance.", out)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "User Query: help", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "persona", got.SystemInstruction.Parts[0].Text)
	require.NotNil(t, got.GenerationConfig)
	assert.InDelta(t, 0.7, got.GenerationConfig.Temperature, 1e-6)
}

func TestGeminiClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "non-200", status: http.StatusForbidden, body: `{"error":"denied"}`, wantErr: true},
		{name: "bad json", status: http.StatusOK, body: `not json`, wantErr: true},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			out, err := NewGeminiClient("k", "m", srv.URL).Generate(context.Background(), assistant.Request{Prompt: "p"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient("", "", "").Generate(context.Background(), assistant.Request{Prompt: "p"})
	assert.Error(t, err)
}
