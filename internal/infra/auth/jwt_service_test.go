package auth

import (
	"testing"
	"time"

	"flock/config"
	"flock/internal/domain/entity"
	"flock/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		PasswordReset: &config.PasswordResetConfig{TokenTTL: 15 * time.Minute},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresDistinctSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg.SecretKey.Access = "same"
	cfg.SecretKey.Reset = "same"
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, entity.Roles{entity.RoleMember, entity.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.Roles{entity.RoleMember, entity.RoleAdmin}, claims.Roles)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_ResetTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateResetToken(userID, "$2a$10$otphash")
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute).Unix(), expiresAt.Unix())

	claims, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, svc.ResetBinding("$2a$10$otphash"), claims.Binding)
	assert.NotEqual(t, svc.ResetBinding("$2a$10$other"), claims.Binding)
}

func TestJWTService_ResetTokenExpires(t *testing.T) {
	svc := newTestJWTService(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, _, err := svc.GenerateResetToken(uuid.New(), "hash")
	require.NoError(t, err)

	now = now.Add(15*time.Minute + time.Second)
	_, err = svc.ValidateResetToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_TokensAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, entity.Roles{entity.RoleAdmin})
	require.NoError(t, err)
	reset, _, err := svc.GenerateResetToken(userID, "hash")
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(access)
	assert.Error(t, err)
	_, err = svc.ValidateAccessToken(reset)
	assert.Error(t, err)
}

func TestJWTService_ResetTokenRejectsWrongPurpose(t *testing.T) {
	svc := newTestJWTService(t)

	// correctly signed with the reset secret but carrying another purpose
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     uuid.NewString(),
		"exp":     time.Now().Add(time.Minute).Unix(),
		"type":    tokenTypeReset,
		"purpose": "email-change",
		"otp":     "x",
	})
	signed, err := forged.SignedString([]byte(svc.resetSecret))
	require.NoError(t, err)

	_, err = svc.ValidateResetToken(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
