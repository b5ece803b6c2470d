package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/assistant"
)

// ChatHandler handles HTTP requests for assistant conversations
type ChatHandler struct {
	assistantUC assistant.AssistantUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistantUC assistant.AssistantUC) *ChatHandler {
	return &ChatHandler{
		assistantUC: assistantUC,
	}
}

// Chat forwards a conversation to the assistant and returns the reply
func (h *ChatHandler) Chat(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.assistantUC.Chat(c.Request().Context(), userID, req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyConversation), errors.Is(err, assistant.ErrInvalidRole):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, assistant.ErrQuotaExceeded):
			return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Daily chat limit reached")
		}
		logger.Error("Failed to get assistant reply",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to get assistant reply")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Assistant reply generated", response)
}
