package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balanceed_backend/internal/config"
	"balanceed_backend/internal/model"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     secret,
			ExpireTime: time.Hour,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig("test-secret-for-token-round-trip")
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: "user-1"},
		Email:    "learner@example.com",
		Role:     model.Instructor,
	}

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "learner@example.com", claims.Email)
	assert.Equal(t, model.Instructor, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &model.User{UUIDBase: model.UUIDBase{ID: "user-1"}}

	token, err := GenerateToken(user, testConfig("secret-one"))
	require.NoError(t, err)

	_, err = ParseToken(token, testConfig("secret-two"))
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testConfig("secret"))
	assert.Error(t, err)
}
