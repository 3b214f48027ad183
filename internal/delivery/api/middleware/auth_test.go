package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	mockSvc "flock/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, m *AuthMiddleware, header string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var h echo.HandlerFunc = func(echo.Context) error {
		called = true

		return c.NoContent(http.StatusNoContent)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, m.Authenticate(h)(c))

	return rec, c, called
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateAccessToken("good").
		Return(&entity.AccessClaims{UserID: userID, Roles: entity.Roles{entity.RoleMember}}, nil)

	rec, c, called := runAuth(t, m, "Bearer good")

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	got, ok := deliverycontext.GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer bad", setup: func(s *mockSvc.MockTokenService) {
			s.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, _, called := runAuth(t, NewAuthMiddleware(tokenSvc), tt.header)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateAccessToken("member").
		Return(&entity.AccessClaims{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMember}}, nil)
	tokenSvc.EXPECT().ValidateAccessToken("admin").
		Return(&entity.AccessClaims{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMember, entity.RoleAdmin}}, nil)

	rec, _, called := runAuth(t, m, "Bearer member", m.RequireRole(entity.RoleAdmin))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _, called = runAuth(t, m, "Bearer admin", m.RequireRole(entity.RoleAdmin))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
