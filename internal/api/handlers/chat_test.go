package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
	"github.com/davidotu-spec/AegisFlow-AI/internal/repository/memory"
	"github.com/davidotu-spec/AegisFlow-AI/internal/services"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
)

func newChatHandler(a services.Assistant) *ChatHandler {
	log := testutil.NewTestLogger()
	svc := services.NewChatService(
		memory.NewChatRepository(),
		memory.NewResourceRepository(resource.Seed()),
		memory.NewAlertRepository(alert.Seed()),
		a, log,
	)
	return NewChatHandler(svc, log, validator.New())
}

func TestChatHandler_Send(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{name: "valid message", body: `{"content":"Any zombies?"}`, expectedStatus: http.StatusCreated},
		{name: "blank message", body: `{"content":"   "}`, expectedStatus: http.StatusBadRequest, expectedCode: "VALIDATION_ERROR"},
		{name: "missing content", body: `{}`, expectedStatus: http.StatusBadRequest, expectedCode: "VALIDATION_ERROR"},
		{name: "unknown field", body: `{"content":"hi","role":"system"}`, expectedStatus: http.StatusBadRequest, expectedCode: "BAD_REQUEST"},
		{name: "malformed json", body: `{"content":`, expectedStatus: http.StatusBadRequest, expectedCode: "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := new(testutil.MockAssistant)
			a.On("Query", mock.Anything, "Any zombies?", mock.Anything).Return("One EBS volume.").Maybe()
			handler := newChatHandler(a)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(handler.Send, req)

			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, testutil.DecodeEnvelope(t, rr).Error.Code)
				return
			}

			var msg dto.MessageDTO
			testutil.DecodeData(t, rr, &msg)
			assert.Equal(t, "assistant", msg.Role)
			assert.Equal(t, "One EBS volume.", msg.Content)
		})
	}
}

func TestChatHandler_GatewayFailureStillReplies(t *testing.T) {
	a := new(testutil.MockAssistant)
	a.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(assistant.ErrorReply)
	handler := newChatHandler(a)

	req := testutil.JSONRequest(t, http.MethodPost, "/", dto.SendMessageRequest{Content: "hello"})
	rr := serve(handler.Send, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var msg dto.MessageDTO
	testutil.DecodeData(t, rr, &msg)
	assert.Equal(t, assistant.ErrorReply, msg.Content)
}

func TestChatHandler_HistoryAndReset(t *testing.T) {
	a := new(testutil.MockAssistant)
	a.On("Query", mock.Anything, mock.Anything, mock.Anything).Return("sure")
	handler := newChatHandler(a)

	serve(handler.Send, testutil.JSONRequest(t, http.MethodPost, "/", dto.SendMessageRequest{Content: "hi"}))

	var history struct {
		Items []dto.MessageDTO `json:"items"`
		Total int              `json:"total"`
	}
	testutil.DecodeData(t, serve(handler.History, httptest.NewRequest(http.MethodGet, "/", nil)), &history)
	assert.Equal(t, 3, history.Total)
	assert.Equal(t, []string{"assistant", "user", "assistant"}, []string{
		history.Items[0].Role, history.Items[1].Role, history.Items[2].Role,
	})

	var msgs []dto.MessageDTO
	testutil.DecodeData(t, serve(handler.Reset, httptest.NewRequest(http.MethodDelete, "/", nil)), &msgs)
	require.Len(t, msgs, 1)
}
