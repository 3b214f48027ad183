// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"flock/config"
	"flock/internal/domain/entity"
	"flock/internal/domain/service"
	"flock/internal/errors"
)

const (
	tokenTypeAccess = "access"
	tokenTypeReset  = "reset"

	defaultAccessTTL = time.Hour
	defaultResetTTL  = 15 * time.Minute
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	resetSecret  string        // Secret key for signing password-reset credentials.
	accessTTL    time.Duration // Time-to-live for access tokens.
	resetTTL     time.Duration // Time-to-live for reset credentials.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Reset {
		return nil, errors.New("access and reset secrets must differ")
	}

	s := &jwtService{
		accessSecret: cfg.SecretKey.Access,
		resetSecret:  cfg.SecretKey.Reset,
		accessTTL:    defaultAccessTTL,
		resetTTL:     defaultResetTTL,
		now:          time.Now,
	}
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		s.accessTTL = cfg.Auth.AccessTokenTTL
	}
	if cfg.PasswordReset != nil && cfg.PasswordReset.TokenTTL > 0 {
		s.resetTTL = cfg.PasswordReset.TokenTTL
	}

	return s, nil
}

// GenerateAccessToken creates an access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles entity.Roles) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
		"type":  tokenTypeAccess,
		"roles": roles.ToStrings(),
	}

	return s.sign(claims, s.accessSecret)
}

// ValidateAccessToken parses an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*entity.AccessClaims, error) {
	claims, err := s.parse(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims["type"] != tokenTypeAccess {
		return nil, errors.Wrap(ErrInvalidToken, "not an access token")
	}

	userID, err := subject(claims)
	if err != nil {
		return nil, err
	}

	var roles []string
	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if str, ok := r.(string); ok {
				roles = append(roles, str)
			}
		}
	}

	return &entity.AccessClaims{UserID: userID, Roles: entity.RolesFromStrings(roles)}, nil
}

// GenerateResetToken creates a credential usable only for resetting userID's password.
func (s *jwtService) GenerateResetToken(userID uuid.UUID, otpHash string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.resetTTL)
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"type":    tokenTypeReset,
		"purpose": entity.PasswordResetPurpose,
		"otp":     s.ResetBinding(otpHash),
	}

	token, err := s.sign(claims, s.resetSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, time.Unix(expiresAt.Unix(), 0), nil
}

// ValidateResetToken checks signature, expiry and purpose of a reset credential.
func (s *jwtService) ValidateResetToken(tokenString string) (*entity.ResetClaims, error) {
	claims, err := s.parse(tokenString, s.resetSecret)
	if err != nil {
		return nil, err
	}
	if claims["type"] != tokenTypeReset || claims["purpose"] != entity.PasswordResetPurpose {
		return nil, errors.Wrap(ErrInvalidToken, "wrong token purpose")
	}

	userID, err := subject(claims)
	if err != nil {
		return nil, err
	}

	binding, _ := claims["otp"].(string)
	if binding == "" {
		return nil, errors.Wrap(ErrInvalidToken, "missing otp binding")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing expiry")
	}

	return &entity.ResetClaims{UserID: userID, Binding: binding, ExpiresAt: exp.Time}, nil
}

// ResetBinding fingerprints an OTP hash so the hash itself never leaves the server.
func (s *jwtService) ResetBinding(otpHash string) string {
	sum := sha256.Sum256([]byte(otpHash))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) sign(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	return claims, nil
}

func subject(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "missing subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "malformed subject")
	}

	return userID, nil
}
