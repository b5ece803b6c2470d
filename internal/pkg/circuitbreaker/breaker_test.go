package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	l, err := logger.NewZapLogger("debug", "", nil)
	require.NoError(t, err)
	return l
}

func TestCircuitBreaker_ClosedAllowsRequests(t *testing.T) {
	cb := New(DefaultConfig("test"), testLogger(t))

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	config := DefaultConfig("test")
	config.FailureThreshold = 3
	cb := New(config, testLogger(t))

	upstreamErr := errors.New("upstream down")
	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func(ctx context.Context) error {
			return upstreamErr
		})
		assert.ErrorIs(t, err, upstreamErr)
	}

	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		t.Fatal("function should not be called when circuit is open")
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	config := DefaultConfig("test")
	config.FailureThreshold = 1
	config.Timeout = 10 * time.Millisecond
	cb := New(config, testLogger(t))

	_ = cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	config := DefaultConfig("test")
	config.FailureThreshold = 1
	config.Timeout = 10 * time.Millisecond
	cb := New(config, testLogger(t))

	_ = cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("still down")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CustomIsFailure(t *testing.T) {
	notCounted := errors.New("client error")
	config := DefaultConfig("test")
	config.FailureThreshold = 1
	config.IsFailure = func(err error) bool {
		return err != nil && !errors.Is(err, notCounted)
	}
	cb := New(config, testLogger(t))

	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func(ctx context.Context) error {
			return notCounted
		})
	}

	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_GetOrCreateReturnsSameBreaker(t *testing.T) {
	m := NewManager(testLogger(t))

	cb1 := m.GetOrCreate("asaas", DefaultConfig("asaas"))
	cb2 := m.GetOrCreate("asaas", DefaultConfig("asaas"))

	assert.Same(t, cb1, cb2)

	cb3 := m.GetOrCreate("assistant", DefaultConfig("assistant"))
	assert.NotSame(t, cb1, cb3)
}
