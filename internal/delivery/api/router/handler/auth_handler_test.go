package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	mockUsecase "flock/internal/mocks/usecase"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockUsecase.MockPasswordResetUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	resetUC := mockUsecase.NewMockPasswordResetUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC:          authUC,
		PasswordResetUC: resetUC,
		Logger:          newDiscardLogger(),
	})

	return h, authUC, resetUC
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC, _ := newTestAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "ruth@example.org", Name: "Ruth", Roles: entity.Roles{entity.RoleAdmin}, PasswordHash: "secret-hash"}

	authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ruth@example.org", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt", User: user}, nil)

	rec, env := serve(t, h.Login, http.MethodPost, "/auth/login", map[string]string{
		"email": "ruth@example.org", "password": "pw",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]any](t, env)
	assert.Equal(t, "jwt", data["accessToken"])
	assert.Equal(t, "Bearer", data["tokenType"])
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC, _ := newTestAuthHandler(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := serve(t, h.Login, http.MethodPost, "/auth/login", map[string]string{
		"email": "ruth@example.org", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), env.Error.Code)
}

func TestAuthHandler_ForgotPassword_GenericMessage(t *testing.T) {
	h, _, resetUC := newTestAuthHandler(t)

	resetUC.EXPECT().RequestReset(mock.Anything, "nobody@example.org").Return(nil)

	rec, env := serve(t, h.ForgotPassword, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "nobody@example.org",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]string](t, env)
	assert.Equal(t, forgotPasswordMessage, data["message"])
}

func TestAuthHandler_ForgotPassword_Throttled(t *testing.T) {
	h, _, resetUC := newTestAuthHandler(t)

	resetUC.EXPECT().RequestReset(mock.Anything, "ruth@example.org").
		Return(domainerrors.NewRateLimitError(7 * time.Minute))

	rec, env := serve(t, h.ForgotPassword, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "ruth@example.org",
	})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "420", rec.Header().Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.JSONEq(t, `{"retryAfter":420}`, string(env.Error.Details))
}

func TestAuthHandler_ForgotPassword_InvalidEmail(t *testing.T) {
	h, _, _ := newTestAuthHandler(t)

	rec, env := serve(t, h.ForgotPassword, http.MethodPost, "/auth/forgot-password", map[string]string{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	h, _, resetUC := newTestAuthHandler(t)
	expiresAt := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)

	resetUC.EXPECT().VerifyOTP(mock.Anything, "ruth@example.org", "042917").
		Return(&usecase.VerifyOTPOutput{ResetToken: "reset-jwt", ExpiresAt: expiresAt}, nil)

	rec, env := serve(t, h.VerifyOTP, http.MethodPost, "/auth/verify-otp", map[string]string{
		"email": "ruth@example.org", "otp": "042917",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData[map[string]string](t, env)
	assert.Equal(t, "reset-jwt", data["resetToken"])
	assert.Equal(t, "2026-03-01T10:15:00Z", data["expiresAt"])
}

func TestAuthHandler_VerifyOTP_RejectsMalformedCode(t *testing.T) {
	tests := []struct {
		name string
		otp  string
	}{
		{name: "too short", otp: "12345"},
		{name: "letters", otp: "12a456"},
		{name: "empty", otp: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestAuthHandler(t)

			rec, _ := serve(t, h.VerifyOTP, http.MethodPost, "/auth/verify-otp", map[string]string{
				"email": "ruth@example.org", "otp": tt.otp,
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_VerifyOTP_WrongCode(t *testing.T) {
	h, _, resetUC := newTestAuthHandler(t)

	resetUC.EXPECT().VerifyOTP(mock.Anything, "ruth@example.org", "000000").
		Return(nil, domainerrors.ErrInvalidOrExpiredOTP)

	rec, env := serve(t, h.VerifyOTP, http.MethodPost, "/auth/verify-otp", map[string]string{
		"email": "ruth@example.org", "otp": "000000",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInvalidOrExpiredOTP.ErrorCode(), env.Error.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, _, resetUC := newTestAuthHandler(t)

	resetUC.EXPECT().ResetPassword(mock.Anything, "reset-jwt", "N3w-Passw0rd!").
		RunAndReturn(func(ctx context.Context, _, _ string) error {
			assert.NotNil(t, ctx)

			return nil
		})

	rec, _ := serve(t, h.ResetPassword, http.MethodPost, "/auth/reset-password", map[string]string{
		"resetToken": "reset-jwt", "newPassword": "N3w-Passw0rd!",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ResetPassword_BadBody(t *testing.T) {
	h, _, _ := newTestAuthHandler(t)

	rec, env := serve(t, h.ResetPassword, http.MethodPost, "/auth/reset-password", `{"resetToken":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}
