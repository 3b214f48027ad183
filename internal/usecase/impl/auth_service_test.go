package impl

import (
	"context"
	"testing"

	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	mockRepo "flock/internal/mocks/repository"
	mockSvc "flock/internal/mocks/service"
	"flock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "pastor@example.org",
		PasswordHash: "hashed",
		Roles:        entity.Roles{entity.RoleAdmin},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "pastor@example.org").Return(user, nil)
	fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, user.Roles).Return("access-jwt", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Pastor@Example.org", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "access-jwt", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@example.org", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.org").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.org", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_NoPasswordSet(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.org").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "new@example.org", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
