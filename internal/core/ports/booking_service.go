package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries the fields of a new booking. ClientUserID is
// the authenticated caller, never a caller-supplied body field.
type CreateBookingInput struct {
	ClientUserID uuid.UUID
	ServiceID    uuid.UUID
	BookingDate  time.Time
}

// Caller identifies the authenticated user for booking-scoped reads and
// transitions. Only the booking's client or its provider may touch it.
type Caller struct {
	UserID   uuid.UUID
	UserType domain.UserType
}

// BookingService defines booking-ledger use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, caller Caller, id uuid.UUID) (*domain.Booking, error)
	ListForCaller(ctx context.Context, caller Caller) ([]*domain.Booking, error)
	// Transition enforces pending -> confirmed -> completed; everything else
	// fails with domain.ErrInvalidStatusTransition.
	Transition(ctx context.Context, caller Caller, id uuid.UUID, next domain.BookingStatus) (*domain.Booking, error)
}
