package requestcontext

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated user email
	UserEmailKey ContextKey = "user_email"
)

// WithUserID adds the authenticated user ID to the given context
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID.String())
}

// UserIDFromContext extracts the authenticated user ID from a context
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	raw, ok := ctx.Value(UserIDKey).(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("no user ID in context")
	}
	return uuid.Parse(raw)
}

// SetEchoUserID stores the authenticated user ID on an echo context
func SetEchoUserID(c echo.Context, userID string) {
	c.Set(string(UserIDKey), userID)
}

// SetEchoUserEmail stores the authenticated user email on an echo context
func SetEchoUserEmail(c echo.Context, email string) {
	c.Set(string(UserEmailKey), email)
}

// UserEmailFromEcho extracts the authenticated user email set by the JWT
// middleware. Returns an empty string when the claim was absent.
func UserEmailFromEcho(c echo.Context) string {
	email, _ := c.Get(string(UserEmailKey)).(string)
	return email
}

// UserIDFromEcho extracts the authenticated user ID set by the JWT middleware
func UserIDFromEcho(c echo.Context) (uuid.UUID, error) {
	raw := c.Get(string(UserIDKey))
	if raw == nil {
		return uuid.Nil, fmt.Errorf("no user ID in request context")
	}

	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("user ID in request context is not a string")
	}

	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID in request context: %w", err)
	}
	return id, nil
}
