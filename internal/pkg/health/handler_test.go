package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/logger"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	l, err := logger.NewZapLogger("debug", "", nil)
	require.NoError(t, err)
	return l
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("contaflux-api")
	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "contaflux-api", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestService_CheckAllHealth(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		svc := NewService(testLogger(t))
		svc.AddChecker("postgres", stubChecker{})
		svc.AddChecker("redis", stubChecker{})

		resp := svc.CheckAllHealth(context.Background())

		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)
		assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
	})

	t.Run("one dependency unhealthy", func(t *testing.T) {
		svc := NewService(testLogger(t))
		svc.AddChecker("postgres", stubChecker{})
		svc.AddChecker("nats", stubChecker{err: errors.New("connection refused")})

		resp := svc.CheckAllHealth(context.Background())

		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)
		assert.Equal(t, "unhealthy", resp.Dependencies["nats"].Status)
		assert.Equal(t, "connection refused", resp.Dependencies["nats"].Error)
	})

	t.Run("no checkers registered", func(t *testing.T) {
		svc := NewService(testLogger(t))
		resp := svc.CheckAllHealth(context.Background())
		assert.Equal(t, "healthy", resp.Status)
		assert.Empty(t, resp.Dependencies)
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	svc := NewService(testLogger(t))
	svc.AddChecker("postgres", stubChecker{})
	RegisterHealthEndpoints(e, "contaflux-api", "1.0.0", svc)

	t.Run("basic health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("detailed health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "contaflux-api", resp.Service)
		assert.Equal(t, "1.0.0", resp.Version)
	})

	t.Run("readiness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("liveness", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
