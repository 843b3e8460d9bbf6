package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/profinder/marketplace-api/internal/api/metrics"
	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

const maxPageLimit = 100

// UserService implements identity-store use cases.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a new identity record. The duplicate-email pre-check
// gives a friendly error ordering; the unique index behind the repository is
// what actually wins concurrent races.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	userType := domain.UserType(input.UserType)
	if !userType.Valid() {
		return nil, domain.ErrInvalidUserType
	}
	if input.PhoneNumber != "" && !domain.ValidPhone(input.PhoneNumber) {
		return nil, domain.ErrInvalidPhoneFormat
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  input.PhoneNumber,
		UserType:     userType,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Address:      input.Address,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		}
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(userType)).Inc()
	s.logger.Info().Str("user_id", user.ID.String()).Str("user_type", string(userType)).Msg("user registered")
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if filter.UserType != "" && !filter.UserType.Valid() {
		return nil, 0, domain.ErrInvalidUserType
	}
	return s.users.List(ctx, filter)
}

// Update applies a partial update, re-validating email and phone on change.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
				return nil, domain.ErrDuplicateEmail
			}
			user.Email = email
		}
	}
	if input.PhoneNumber != nil {
		if *input.PhoneNumber != "" && !domain.ValidPhone(*input.PhoneNumber) {
			return nil, domain.ErrInvalidPhoneFormat
		}
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and everything that exists only in relation to it.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id.String()).Msg("user deleted with dependents")
	return nil
}
