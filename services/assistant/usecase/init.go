package usecase

import (
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/assistant"
)

type AssistantUC struct {
	assistantRepo assistant.AssistantRepo
	llmGW         assistant.LLMGW
	cfg           *models.Config
}

// NewAssistantUC creates a new assistant usecase instance
func NewAssistantUC(
	assistantRepo assistant.AssistantRepo,
	llmGW assistant.LLMGW,
	cfg *models.Config,
) *AssistantUC {
	return &AssistantUC{
		assistantRepo: assistantRepo,
		llmGW:         llmGW,
		cfg:           cfg,
	}
}
