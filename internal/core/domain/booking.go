package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// There is no cancellation or regression path.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed},
	BookingStatusConfirmed: {BookingStatusCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrPastBookingDate = errors.New("booking date is in the past")
var ErrInvalidStatusTransition = errors.New("invalid booking status transition")

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking records a client's request to engage a service at a given time.
// ProviderProfileID is denormalized from the Service at creation time so
// provider-scoped queries never need a join through services.
type Booking struct {
	ID                uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"client_id"`
	ServiceID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"service_id"`
	ProviderProfileID uuid.UUID     `gorm:"type:uuid;not null;index" json:"provider_profile_id"`
	BookingDate       time.Time     `gorm:"type:timestamp with time zone;not null" json:"booking_date"`
	Status            BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time     `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"not null;default:now()" json:"updated_at"`
}
