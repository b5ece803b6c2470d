package assistant

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/contaflux/contaflux/services/assistant AssistantRepo

// AssistantRepo tracks per-user daily chat usage
type AssistantRepo interface {
	// IncrementDailyUsage bumps the user's counter for the given day
	// (formatted 2006-01-02) and returns the new count
	IncrementDailyUsage(ctx context.Context, userID uuid.UUID, day string) (int64, error)
}
