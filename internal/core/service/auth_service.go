package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

var ErrInvalidResetToken = errors.New("invalid or expired reset token")

const resetTokenTTL = time.Hour

// ResetTokenStore abstracts the one-shot password-reset token store (Redis).
type ResetTokenStore interface {
	Store(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// Consume atomically retrieves and deletes the token. A miss is reported
	// as ErrInvalidResetToken.
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

// MailEnqueuer abstracts the fire-and-forget mail queue.
type MailEnqueuer interface {
	Enqueue(to, subject, body string)
}

// AuthService implements login and the password-reset flow.
type AuthService struct {
	users     ports.UserRepository
	tokens    ResetTokenStore
	mail      MailEnqueuer
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ResetTokenStore,
	mail MailEnqueuer,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, tokens: tokens, mail: mail, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// RequestPasswordReset always succeeds from the caller's point of view:
// the response is identical whether or not the address belongs to an
// account. Mail delivery goes through the queue and is never awaited.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Msg("password reset lookup failed")
		}
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate reset token")
		return nil
	}
	if err := s.tokens.Store(ctx, token, user.ID, resetTokenTTL); err != nil {
		s.logger.Error().Err(err).Msg("failed to store reset token")
		return nil
	}

	s.mail.Enqueue(
		user.Email,
		"Password reset",
		fmt.Sprintf("Use the following token to reset your password: %s\nIt expires in %s.", token, resetTokenTTL),
	)
	s.logger.Info().Str("user_id", user.ID.String()).Msg("password reset requested")
	return nil
}

// ConfirmPasswordReset consumes the token and replaces the password hash.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID.String()).Msg("password reset completed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_type": string(user.UserType),
		"email":     user.Email,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
