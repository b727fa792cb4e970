package handlers

import (
	"net/http"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/dto"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/utils"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
)

type ChatHandler struct {
	service   chat.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewChatHandler(service chat.Service, log *logger.Logger, val *validator.Validator) *ChatHandler {
	return &ChatHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// History returns the conversation
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.History(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to load conversation")
		return
	}
	utils.WriteList(w, dto.ToMessageDTOs(msgs), len(msgs))
}

// Send posts a message to the assistant and returns its reply. Assistant
// failures still produce a 201 carrying the fallback text.
// @Summary Send chat message
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.MessageDTO
// @Failure 400 {object} utils.ErrorResponse "Blank message"
// @Failure 409 {object} utils.ErrorResponse "Another message is in flight"
// @Router /assistant/messages [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if appErr := utils.DecodeJSON(r, &req); appErr != nil {
		utils.WriteError(w, appErr)
		return
	}
	if !validate(w, h.validator, req) {
		return
	}

	reply, err := h.service.Send(r.Context(), req.Content)
	if err != nil {
		writeErr(w, h.logger, err, "Failed to send message")
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, dto.ToMessageDTO(reply))
}

// Reset starts a new conversation
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		writeErr(w, h.logger, err, "Failed to reset conversation")
		return
	}
	msgs, err := h.service.History(r.Context())
	if err != nil {
		writeErr(w, h.logger, err, "Failed to load conversation")
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Conversation reset", dto.ToMessageDTOs(msgs))
}
