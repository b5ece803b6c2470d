package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance"
	"github.com/contaflux/contaflux/services/finance/mocks"
)

func TestCreateCostCenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFinanceRepo(ctrl)
	uc := NewFinanceUC(mockRepo, &models.Config{})

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().CreateCostCenter(gomock.Any(), gomock.Any()).Return(nil)

		cc, err := uc.CreateCostCenter(context.Background(), userID, &models.CostCenter{
			Name: "Marketing",
			Type: models.TransactionTypeExpense,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, cc.ID)
		assert.Equal(t, userID, cc.UserID)
		assert.False(t, cc.CreatedAt.IsZero())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := uc.CreateCostCenter(context.Background(), userID, &models.CostCenter{
			Type: models.TransactionTypeExpense,
		})
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := uc.CreateCostCenter(context.Background(), userID, &models.CostCenter{
			Name: "Marketing",
			Type: "savings",
		})
		assert.Error(t, err)
	})
}

func TestCreateColumn_PositionAndMainFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFinanceRepo(ctrl)
	uc := NewFinanceUC(mockRepo, &models.Config{})

	userID := uuid.New()

	t.Run("first column becomes main", func(t *testing.T) {
		mockRepo.EXPECT().ListColumns(gomock.Any(), userID).Return(nil, nil)
		mockRepo.EXPECT().CreateColumn(gomock.Any(), gomock.Any()).Return(nil)

		col, err := uc.CreateColumn(context.Background(), userID, "Pessoal")
		require.NoError(t, err)
		assert.Equal(t, 1, col.Position)
		assert.True(t, col.IsMain)
	})

	t.Run("later columns append without main flag", func(t *testing.T) {
		existing := []models.CustomColumn{{Name: "Pessoal"}, {Name: "Empresa"}}
		mockRepo.EXPECT().ListColumns(gomock.Any(), userID).Return(existing, nil)
		mockRepo.EXPECT().CreateColumn(gomock.Any(), gomock.Any()).Return(nil)

		col, err := uc.CreateColumn(context.Background(), userID, "Investimentos")
		require.NoError(t, err)
		assert.Equal(t, 3, col.Position)
		assert.False(t, col.IsMain)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.CreateColumn(context.Background(), userID, "")
		assert.Error(t, err)
	})
}

func TestRenameColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFinanceRepo(ctrl)
	uc := NewFinanceUC(mockRepo, &models.Config{})

	userID := uuid.New()
	colID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetColumn(gomock.Any(), userID, colID).
			Return(&models.CustomColumn{ID: colID, UserID: userID, Name: "Pessoal"}, nil)
		mockRepo.EXPECT().UpdateColumn(gomock.Any(), gomock.Any()).Return(nil)

		col, err := uc.RenameColumn(context.Background(), userID, colID, "Familia")
		require.NoError(t, err)
		assert.Equal(t, "Familia", col.Name)
	})

	t.Run("unknown column", func(t *testing.T) {
		mockRepo.EXPECT().GetColumn(gomock.Any(), userID, colID).Return(nil, nil)

		_, err := uc.RenameColumn(context.Background(), userID, colID, "Familia")
		assert.ErrorIs(t, err, finance.ErrNotFound)
	})
}

func TestSetMainColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFinanceRepo(ctrl)
	uc := NewFinanceUC(mockRepo, &models.Config{})

	userID := uuid.New()
	colID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetColumn(gomock.Any(), userID, colID).
			Return(&models.CustomColumn{ID: colID, UserID: userID}, nil)
		mockRepo.EXPECT().SetMainColumn(gomock.Any(), userID, colID).Return(nil)

		assert.NoError(t, uc.SetMainColumn(context.Background(), userID, colID))
	})

	t.Run("unknown column", func(t *testing.T) {
		mockRepo.EXPECT().GetColumn(gomock.Any(), userID, colID).Return(nil, nil)

		err := uc.SetMainColumn(context.Background(), userID, colID)
		assert.ErrorIs(t, err, finance.ErrNotFound)
	})
}
