package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/assistant"
)

const (
	defaultModel      = "google/gemini-2.5-flash"
	defaultDailyLimit = 50
	dayLayout         = "2006-01-02"
)

// Chat validates the conversation, spends one unit of the user's daily quota
// and forwards the exchange to the hosted model.
func (uc *AssistantUC) Chat(ctx context.Context, userID uuid.UUID, messages []models.ChatMessage) (*models.ChatResponse, error) {
	if len(messages) == 0 {
		return nil, assistant.ErrEmptyConversation
	}
	for _, msg := range messages {
		switch msg.Role {
		case models.ChatRoleUser, models.ChatRoleAssistant, models.ChatRoleSystem:
		default:
			return nil, fmt.Errorf("%w: %q", assistant.ErrInvalidRole, msg.Role)
		}
	}

	if err := uc.consumeQuota(ctx, userID); err != nil {
		return nil, err
	}

	model := uc.cfg.Assistant.Model
	if model == "" {
		model = defaultModel
	}

	reply, err := uc.llmGW.Complete(ctx, model, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}

	return &models.ChatResponse{Message: *reply}, nil
}

func (uc *AssistantUC) consumeQuota(ctx context.Context, userID uuid.UUID) error {
	day := time.Now().Format(dayLayout)
	count, err := uc.assistantRepo.IncrementDailyUsage(ctx, userID, day)
	if err != nil {
		// A broken counter must not take the assistant down with it
		logger.Warn("Chat quota check failed",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return nil
	}

	limit := uc.cfg.Assistant.DailyLimit
	if limit <= 0 {
		limit = defaultDailyLimit
	}
	if count > int64(limit) {
		return assistant.ErrQuotaExceeded
	}
	return nil
}
