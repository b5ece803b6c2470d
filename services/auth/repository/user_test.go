package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	return NewAuthRepo(&models.Config{}, sqlxDB), mock
}

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	user := &models.User{
		Email:        "maria@empresa.com.br",
		PasswordHash: "$2a$10$hash",
		FullName:     "Maria Silva",
		CompanyName:  "Empresa LTDA",
		IsActive:     true,
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "fullname", "company_name", "created_at", "updated_at", "is_active"}).
			AddRow(id, "maria@empresa.com.br", "$2a$10$hash", "Maria Silva", "Empresa LTDA", time.Now(), time.Now(), true)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("maria@empresa.com.br").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail(context.Background(), "maria@empresa.com.br")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("nobody@empresa.com.br").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), "nobody@empresa.com.br")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpsertPreference(t *testing.T) {
	repo, mock := newMockRepo(t)

	pref := &models.UserPreference{
		UserID:    uuid.New(),
		Key:       models.PrefOnboardingTourSeen,
		Value:     "true",
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO user_preferences").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertPreference(context.Background(), pref)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPreferences(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"user_id", "key", "value", "updated_at"}).
		AddRow(userID, models.PrefRenewalBannerDismissed, "true", time.Now()).
		AddRow(userID, models.PrefTrialBannerDismissed, "false", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM user_preferences").
		WithArgs(userID).
		WillReturnRows(rows)

	prefs, err := repo.GetPreferences(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, prefs, 2)
	assert.Equal(t, models.PrefRenewalBannerDismissed, prefs[0].Key)
}
