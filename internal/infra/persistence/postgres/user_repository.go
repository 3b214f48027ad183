// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.active(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, ignoring case.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.active(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAllIDs returns the ID of every active user.
func (repo *userRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.active(ctx).Model(&model.UserModel{}).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user ids")
	}

	return ids, nil
}

// UpdateResetState overwrites the user's four reset columns.
func (repo *userRepository) UpdateResetState(ctx context.Context, userID uuid.UUID, state entity.ResetAttemptState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(resetColumns(state))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reset state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ResetPassword swaps the password hash and clears the reset state in one
// conditional UPDATE. Matching on the OTP hash makes a reset credential
// single-use: once cleared, the same credential matches nothing.
func (repo *userRepository) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, expectedOTPHash string) error {
	if expectedOTPHash == "" {
		return repository.ErrResetStateChanged
	}

	updates := resetColumns(entity.ResetAttemptState{})
	updates["password_hash"] = passwordHash

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND reset_otp_hash = ?", userID, expectedOTPHash).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reset password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetStateChanged
	}

	return nil
}

func (repo *userRepository) active(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Where("deleted_at IS NULL")
}

// resetColumns uses a map so zero values (empty hash, zero count) are written.
func resetColumns(state entity.ResetAttemptState) map[string]any {
	return map[string]any{
		"reset_otp_hash":        state.OTPHash,
		"reset_otp_expires_at":  state.OTPExpiresAt,
		"reset_attempt_count":   state.AttemptCount,
		"reset_last_attempt_at": state.LastAttemptAt,
	}
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Roles:        entity.RolesFromStrings(data.Roles),
		PasswordHash: data.PasswordHash,
		ResetState: entity.ResetAttemptState{
			OTPHash:       data.ResetOTPHash,
			OTPExpiresAt:  data.ResetOTPExpiresAt,
			AttemptCount:  data.ResetAttemptCount,
			LastAttemptAt: data.ResetLastAttemptAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
