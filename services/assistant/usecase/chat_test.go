package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/assistant"
	"github.com/contaflux/contaflux/services/assistant/mocks"
)

func newAssistantUC(t *testing.T, cfg *models.Config) (*AssistantUC, *mocks.MockAssistantRepo, *mocks.MockLLMGW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAssistantRepo(ctrl)
	gw := mocks.NewMockLLMGW(ctrl)
	if cfg == nil {
		cfg = &models.Config{}
	}
	return NewAssistantUC(repo, gw, cfg), repo, gw
}

func TestChat_Success(t *testing.T) {
	cfg := &models.Config{}
	cfg.Assistant.Model = "google/gemini-2.5-flash"
	cfg.Assistant.DailyLimit = 50
	uc, repo, gw := newAssistantUC(t, cfg)

	userID := uuid.New()
	messages := []models.ChatMessage{
		{Role: models.ChatRoleSystem, Content: "Você é um assistente financeiro."},
		{Role: models.ChatRoleUser, Content: "Quanto gastei este mês?"},
	}
	reply := &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "Você gastou R$ 1.200,00."}

	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).Return(int64(1), nil)
	gw.EXPECT().Complete(gomock.Any(), "google/gemini-2.5-flash", messages).Return(reply, nil)

	response, err := uc.Chat(context.Background(), userID, messages)

	require.NoError(t, err)
	assert.Equal(t, *reply, response.Message)
}

func TestChat_EmptyConversation(t *testing.T) {
	uc, _, _ := newAssistantUC(t, nil)

	_, err := uc.Chat(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, assistant.ErrEmptyConversation)
}

func TestChat_InvalidRole(t *testing.T) {
	uc, _, _ := newAssistantUC(t, nil)

	_, err := uc.Chat(context.Background(), uuid.New(), []models.ChatMessage{
		{Role: "tool", Content: "output"},
	})
	assert.ErrorIs(t, err, assistant.ErrInvalidRole)
}

func TestChat_QuotaExceeded(t *testing.T) {
	cfg := &models.Config{}
	cfg.Assistant.DailyLimit = 5
	uc, repo, _ := newAssistantUC(t, cfg)

	userID := uuid.New()
	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).Return(int64(6), nil)

	_, err := uc.Chat(context.Background(), userID, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "oi"},
	})
	assert.ErrorIs(t, err, assistant.ErrQuotaExceeded)
}

func TestChat_QuotaAtLimitStillAllowed(t *testing.T) {
	cfg := &models.Config{}
	cfg.Assistant.DailyLimit = 5
	uc, repo, gw := newAssistantUC(t, cfg)

	userID := uuid.New()
	reply := &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "ok"}

	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).Return(int64(5), nil)
	gw.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(reply, nil)

	_, err := uc.Chat(context.Background(), userID, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "oi"},
	})
	assert.NoError(t, err)
}

func TestChat_CounterFailureDoesNotBlock(t *testing.T) {
	uc, repo, gw := newAssistantUC(t, nil)

	userID := uuid.New()
	reply := &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "ok"}

	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).
		Return(int64(0), assert.AnError)
	gw.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(reply, nil)

	_, err := uc.Chat(context.Background(), userID, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "oi"},
	})
	assert.NoError(t, err)
}

func TestChat_UpstreamFailure(t *testing.T) {
	uc, repo, gw := newAssistantUC(t, nil)

	userID := uuid.New()
	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).Return(int64(1), nil)
	gw.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := uc.Chat(context.Background(), userID, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "oi"},
	})
	assert.Error(t, err)
}

func TestChat_DefaultModelWhenUnconfigured(t *testing.T) {
	uc, repo, gw := newAssistantUC(t, nil)

	userID := uuid.New()
	reply := &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "ok"}

	repo.EXPECT().IncrementDailyUsage(gomock.Any(), userID, gomock.Any()).Return(int64(1), nil)
	gw.EXPECT().Complete(gomock.Any(), defaultModel, gomock.Any()).Return(reply, nil)

	_, err := uc.Chat(context.Background(), userID, []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "oi"},
	})
	assert.NoError(t, err)
}
