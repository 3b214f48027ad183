package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"flock/config"
	deliverycontext "flock/internal/delivery/context"
	"flock/internal/domain/entity"
	domainerrors "flock/internal/domain/errors"
	"flock/internal/domain/repository"
	"flock/internal/domain/service"
	"flock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	otpDigits      = 6
	defaultAppName = "Flock"
)

var otpUpperBound = big.NewInt(1_000_000)

type passwordResetService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.EmailSender
	policy       entity.ResetThrottlePolicy
	appName      string
	now          func() time.Time
	generateOTP  func() (string, error)
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.EmailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPasswordResetService creates the forgot-password flow.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	resetCfg := &config.PasswordResetConfig{}
	appName := defaultAppName
	if params.Config != nil {
		if params.Config.PasswordReset != nil {
			resetCfg = params.Config.PasswordReset
		}
		if params.Config.Email != nil && params.Config.Email.AppName != "" {
			appName = params.Config.Email.AppName
		}
	}
	// Fill zero values so a partially populated config still throttles.
	policyCfg := *resetCfg
	policyCfg.ApplyDefaults()

	return &passwordResetService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		policy: entity.ResetThrottlePolicy{
			Window:      policyCfg.ThrottleWindow,
			MaxAttempts: policyCfg.MaxAttempts,
			OTPTTL:      policyCfg.OTPTTL,
		},
		appName:     appName,
		now:         time.Now,
		generateOTP: randomOTP,
		logger:      params.Logger,
	}
}

func (s *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RequestReset issues a new code if the throttle allows it. The result for an
// unknown address is indistinguishable from success.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	now := s.now()
	next, decision := user.ResetState.Admit(now, s.policy)
	if !decision.Allowed {
		s.log(ctx).Info("Password reset throttled",
			slog.String("user_id", user.ID.String()),
			slog.Duration("retry_after", decision.RetryAfter),
		)

		return domainerrors.NewRateLimitError(decision.RetryAfter)
	}

	code, err := s.generateOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	codeHash, err := s.hasher.Hash(code)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	next = next.WithOTP(codeHash, now, s.policy.OTPTTL)
	if err := s.userRepo.UpdateResetState(ctx, user.ID, next); err != nil {
		return errors.Wrap(err, "failed to store reset state")
	}

	subject, html, err := resetCodeEmail(s.appName, code, s.policy.OTPTTL)
	if err != nil {
		s.log(ctx).Error("Failed to render reset code email", slog.Any("error", err))

		return nil
	}

	if err := s.mailer.Send(ctx, user.Email, subject, html); err != nil {
		s.log(ctx).Warn("Failed to send reset code email",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// VerifyOTP checks the code against the stored hash and, on success, issues a
// reset credential bound to that hash. The pending code stays in place until
// the password is actually changed.
func (s *passwordResetService) VerifyOTP(ctx context.Context, email, otp string) (*usecase.VerifyOTPOutput, error) {
	email = normalizeEmail(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and otp are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidOrExpiredOTP
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	state := user.ResetState
	if !state.HasPendingOTP(s.now()) || !s.hasher.Check(otp, state.OTPHash) {
		return nil, domainerrors.ErrInvalidOrExpiredOTP
	}

	token, expiresAt, err := s.tokenService.GenerateResetToken(user.ID, state.OTPHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	return &usecase.VerifyOTPOutput{ResetToken: token, ExpiresAt: expiresAt}, nil
}

// ResetPassword sets a new password. The credential must still be bound to
// the user's current code, and the update only applies while that code is
// unchanged, so a credential cannot be used twice.
func (s *passwordResetService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokenService.ValidateResetToken(resetToken)
	if err != nil {
		return domainerrors.ErrInvalidResetToken
	}

	if err := s.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to find user")
	}

	currentHash := user.ResetState.OTPHash
	if currentHash == "" || !bindingMatches(s.tokenService.ResetBinding(currentHash), claims.Binding) {
		return domainerrors.ErrInvalidResetToken
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := s.userRepo.ResetPassword(ctx, user.ID, passwordHash, currentHash); err != nil {
		if errors.Is(err, repository.ErrResetStateChanged) || errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to reset password")
	}

	s.log(ctx).Info("Password reset completed", slog.String("user_id", user.ID.String()))

	subject, html, err := resetConfirmationEmail(s.appName, user.Name)
	if err != nil {
		s.log(ctx).Error("Failed to render reset confirmation email", slog.Any("error", err))

		return nil
	}

	if err := s.mailer.Send(ctx, user.Email, subject, html); err != nil {
		s.log(ctx).Warn("Failed to send reset confirmation email",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// randomOTP returns a uniformly distributed zero-padded numeric code.
func randomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func bindingMatches(expected, actual string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
