package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/auth/mocks"
)

func TestSetPreference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockTrials := mocks.NewMockTrialCreator(ctrl)
	uc := NewAuthUC(mockRepo, mockTrials, testConfig())

	userID := uuid.New()

	t.Run("known key", func(t *testing.T) {
		mockRepo.EXPECT().
			UpsertPreference(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pref *models.UserPreference) error {
				assert.Equal(t, userID, pref.UserID)
				assert.Equal(t, models.PrefOnboardingTourSeen, pref.Key)
				assert.Equal(t, "true", pref.Value)
				assert.False(t, pref.UpdatedAt.IsZero())
				return nil
			})

		pref, err := uc.SetPreference(context.Background(), userID, models.PrefOnboardingTourSeen, "true")
		require.NoError(t, err)
		assert.Equal(t, models.PrefOnboardingTourSeen, pref.Key)
	})

	t.Run("unknown key stored verbatim", func(t *testing.T) {
		mockRepo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).Return(nil)

		pref, err := uc.SetPreference(context.Background(), userID, "theme", "dark")
		require.NoError(t, err)
		assert.Equal(t, "theme", pref.Key)
		assert.Equal(t, "dark", pref.Value)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		pref, err := uc.SetPreference(context.Background(), userID, "  ", "x")
		assert.Nil(t, pref)
		assert.Error(t, err)
	})
}

func TestGetPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockTrials := mocks.NewMockTrialCreator(ctrl)
	uc := NewAuthUC(mockRepo, mockTrials, testConfig())

	userID := uuid.New()
	stored := []models.UserPreference{
		{UserID: userID, Key: models.PrefRenewalBannerDismissed, Value: "true"},
		{UserID: userID, Key: models.PrefTrialBannerDismissed, Value: "false"},
	}

	mockRepo.EXPECT().GetPreferences(gomock.Any(), userID).Return(stored, nil)

	prefs, err := uc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, prefs, 2)
}
