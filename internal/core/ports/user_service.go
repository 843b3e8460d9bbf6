package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// RegisterUserInput carries everything needed to create an identity record.
type RegisterUserInput struct {
	Email       string
	Password    string
	UserType    string
	FirstName   string
	LastName    string
	PhoneNumber string // optional
	Address     string // optional
}

// UpdateUserInput is a partial update; nil fields are left untouched.
// Email and phone changes are re-validated by the service.
type UpdateUserInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
}

// UserService defines identity-store use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	// Delete cascades to every dependent record, per the ownership graph.
	Delete(ctx context.Context, id uuid.UUID) error
}
