package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "contaflux-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		email  string
	}{
		{
			name:   "valid token generation",
			userID: uuid.New(),
			email:  "joao@empresa.com.br",
		},
		{
			name:   "empty email still generates a token",
			userID: uuid.New(),
			email:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.email, getTestConfig())

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(tokenString, getTestConfig().JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.userID.String(), (*claims)["user_id"])
			assert.Equal(t, tt.email, (*claims)["email"])
			assert.Equal(t, "contaflux-test", (*claims)["iss"])
		})
	}
}

func TestValidateToken_InvalidSecret(t *testing.T) {
	tokenString, _, err := GenerateToken(uuid.New(), "joao@empresa.com.br", getTestConfig())
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "another-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iss":     cfg.JWT.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	parsed, err := ValidateToken(tokenString, cfg.JWT.Secret)

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", getTestConfig().JWT.Secret)

	assert.Error(t, err)
	assert.Nil(t, claims)
}
