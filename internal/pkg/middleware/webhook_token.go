package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/utils"
)

// AsaasTokenHeader carries the shared secret Asaas sends with every webhook
const AsaasTokenHeader = "Asaas-Access-Token"

// ValidateWebhookToken authenticates inbound gateway webhooks. Transport and
// authentication failures are the only paths allowed to answer non-200 here;
// business-level misses are handled downstream with a success acknowledgment.
func ValidateWebhookToken(expectedToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(AsaasTokenHeader)
			if token == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Webhook token is required")
			}

			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid webhook token")
			}

			return next(c)
		}
	}
}
