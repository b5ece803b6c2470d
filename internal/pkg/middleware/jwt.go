package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
)

// JWTMiddleware returns the configured JWT middleware for protected HTTP routes.
// On success the user_id and email claims are copied into the echo context.
func JWTMiddleware(cfg *models.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims["user_id"].(string); exists {
				requestcontext.SetEchoUserID(c, userID)
			}
			if email, exists := claims["email"].(string); exists {
				requestcontext.SetEchoUserEmail(c, email)
			}
		},
	})
}
