package assistant

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/contaflux/contaflux/services/assistant AssistantUC

// Errors the handlers translate into HTTP status codes
var (
	ErrEmptyConversation = errors.New("messages are required")
	ErrInvalidRole       = errors.New("invalid message role")
	ErrQuotaExceeded     = errors.New("daily chat limit reached")
)

// AssistantUC represents the assistant usecase interface
type AssistantUC interface {
	Chat(ctx context.Context, userID uuid.UUID, messages []models.ChatMessage) (*models.ChatResponse, error)
}
