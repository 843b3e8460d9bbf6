package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// CreateProfileInput carries the provider-facing fields of a new profile.
type CreateProfileInput struct {
	UserID             uuid.UUID
	Profession         string
	Location           string
	ServiceDescription string
	Experience         int
}

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Profession         *string
	Location           *string
	ServiceDescription *string
	Experience         *int
}

// ProfileService defines provider-profile use cases.
type ProfileService interface {
	// Create rejects with domain.ErrInvalidUserType unless the referenced
	// user is a service_provider; the storage layer does not enforce this.
	Create(ctx context.Context, input CreateProfileInput) (*domain.ServiceProviderProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ServiceProviderProfile, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.ServiceProviderProfile, error)
	// SetRating is the recompute hook for the surrounding system; rating is
	// not writable through Update.
	SetRating(ctx context.Context, userID uuid.UUID, rating float64) error
}
