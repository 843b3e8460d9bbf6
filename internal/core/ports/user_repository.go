package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing users.
type ListUsersFilter struct {
	UserType domain.UserType // empty = all account kinds
	Page     int             // 1-based
	Limit    int             // max rows per page (capped by the service)
}

// UserRepository defines persistence operations for identity records.
type UserRepository interface {
	// Create inserts a new user. A unique-index violation on email is
	// reported as domain.ErrDuplicateEmail; the pre-check in the service
	// exists only for friendlier sequencing, the index is the source of truth.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) error
	// DeleteCascade removes the user together with every dependent record
	// (provider profile, its services, all dependent bookings, messages sent
	// or received, notifications) in one transaction. Partial application is
	// not possible.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
