package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// BookingRepository defines persistence operations for the booking ledger.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Booking, error)
	ListByProviderProfile(ctx context.Context, profileID uuid.UUID) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}
