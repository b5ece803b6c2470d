package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/contaflux/contaflux/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with the
// request context, and answers 500 instead of crashing the process.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	panicMsg := fmt.Sprintf("Panic recovered: %v", r)

	l := zapLogger.WithFields(map[string]interface{}{
		"panic_value": fmt.Sprintf("%v", r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"user_id":     userID,
		"request_id":  requestID,
	})
	l.Error(panicMsg)

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: panicMsg,
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type": fmt.Sprintf("%T", r),
				"request.id": requestID,
			},
		})
	}

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"code":    http.StatusInternalServerError,
		})
	}
}
