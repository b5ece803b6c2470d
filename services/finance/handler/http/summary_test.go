package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/services/finance/mocks"
)

func TestGetSummary_DefaultsToCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewSummaryHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		GetSummary(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, refMonth time.Time) (*models.FinancialSummary, error) {
			now := time.Now()
			assert.Equal(t, now.Year(), refMonth.Year())
			assert.Equal(t, now.Month(), refMonth.Month())
			return &models.FinancialSummary{}, nil
		})

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSummary_WithExplicitMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewSummaryHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/summary?month=2025-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	expectedMonth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mockFinanceUC.EXPECT().
		GetSummary(gomock.Any(), userID, expectedMonth).
		Return(&models.FinancialSummary{MonthResult: 700}, nil)

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSummary_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewSummaryHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/summary?month=2025/03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewSummaryHandler(mockFinanceUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
