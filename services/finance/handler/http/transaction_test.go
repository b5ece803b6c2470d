package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/services/finance"
	"github.com/contaflux/contaflux/services/finance/mocks"
)

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	requestBody := `{"description":"Aluguel","amount":1200,"type":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		CreateTransaction(gomock.Any(), userID, gomock.Any()).
		Return([]models.Transaction{{ID: uuid.New(), UserID: userID, Description: "Aluguel"}}, nil)

	err := handler.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Transaction created successfully", response["message"])
}

func TestCreateTransaction_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"amount":-5,"type":"expense"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		CreateTransaction(gomock.Any(), userID, gomock.Any()).
		Return(nil, assert.AnError)

	err := handler.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTransactions_WithMonthFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions?month=2025-03", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		ListTransactions(gomock.Any(), userID, gomock.Not(gomock.Nil())).
		Return([]models.Transaction{}, nil)

	err := handler.ListTransactions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTransactions_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions?month=march", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	requestcontext.SetEchoUserID(c, userID.String())

	err := handler.ListTransactions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid month, expected YYYY-MM", response["error"])
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	txID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/transactions/"+txID.String(), strings.NewReader(`{"amount":150}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		UpdateTransaction(gomock.Any(), userID, txID, gomock.Any()).
		Return(nil, finance.ErrNotFound)

	err := handler.UpdateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkTransactionPaid_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	txID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transactions/"+txID.String()+"/pay", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())
	requestcontext.SetEchoUserID(c, userID.String())

	mockFinanceUC.EXPECT().
		MarkTransactionPaid(gomock.Any(), userID, txID).
		Return(&models.Transaction{ID: txID, UserID: userID, Status: models.TransactionStatusPaid}, nil)

	err := handler.MarkTransactionPaid(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteTransaction_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinanceUC := mocks.NewMockFinanceUC(ctrl)
	handler := NewTransactionHandler(mockFinanceUC)

	userID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/transactions/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	requestcontext.SetEchoUserID(c, userID.String())

	err := handler.DeleteTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
