package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for provider profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.ServiceProviderProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceProviderProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.ServiceProviderProfile, error)
	Update(ctx context.Context, p *domain.ServiceProviderProfile) error
}
