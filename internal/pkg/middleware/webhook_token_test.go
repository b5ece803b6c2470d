package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWebhookRequest(t *testing.T, expectedToken, sentToken string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/asaas", nil)
	if sentToken != "" {
		req.Header.Set(AsaasTokenHeader, sentToken)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := ValidateWebhookToken(expectedToken)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestValidateWebhookToken_Valid(t *testing.T) {
	rec := runWebhookRequest(t, "secret-token", "secret-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateWebhookToken_Missing(t *testing.T) {
	rec := runWebhookRequest(t, "secret-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Webhook token is required")
}

func TestValidateWebhookToken_Wrong(t *testing.T) {
	rec := runWebhookRequest(t, "secret-token", "guessed-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid webhook token")
}

func TestValidateWebhookToken_UnconfiguredRejectsEverything(t *testing.T) {
	rec := runWebhookRequest(t, "", "anything")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
