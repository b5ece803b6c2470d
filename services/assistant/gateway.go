package assistant

import (
	"context"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/contaflux/contaflux/services/assistant LLMGW

// LLMGW is the hosted language model gateway interface
type LLMGW interface {
	// Complete sends the conversation and returns the assistant's reply
	Complete(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatMessage, error)
}
