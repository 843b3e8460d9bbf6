package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/api/metrics"
	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// BookingService implements the booking ledger use cases.
type BookingService struct {
	bookings ports.BookingRepository
	services ports.ServiceRepository
	users    ports.UserRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	services ports.ServiceRepository,
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{bookings: bookings, services: services, users: users, profiles: profiles, logger: logger}
}

// Create records a client's request for a service. The provider profile id
// is denormalized from the service at creation time.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	client, err := s.users.FindByID(ctx, input.ClientUserID)
	if err != nil {
		return nil, err
	}
	if client.UserType != domain.UserTypeClient {
		return nil, domain.ErrInvalidUserType
	}
	if input.BookingDate.Before(time.Now().UTC()) {
		return nil, domain.ErrPastBookingDate
	}

	svc, err := s.services.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ClientID:          client.ID,
		ServiceID:         svc.ID,
		ProviderProfileID: svc.ProviderProfileID,
		BookingDate:       input.BookingDate,
		Status:            domain.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("client_id", client.ID.String()).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Str("booking_id", booking.ID.String()).
		Str("service_id", svc.ID.String()).
		Time("booking_date", booking.BookingDate).
		Msg("booking created")
	return booking, nil
}

// Get returns a booking visible to the caller. Clients see their own
// bookings, providers see bookings against their profile.
func (s *BookingService) Get(ctx context.Context, caller ports.Caller, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForCaller(ctx context.Context, caller ports.Caller) ([]*domain.Booking, error) {
	switch caller.UserType {
	case domain.UserTypeClient:
		return s.bookings.ListByClient(ctx, caller.UserID)
	case domain.UserTypeProvider:
		profile, err := s.profiles.FindByUserID(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		return s.bookings.ListByProviderProfile(ctx, profile.ID)
	}
	return nil, domain.ErrInvalidUserType
}

// Transition advances the booking lifecycle. Both parties to the booking may
// transition it; the state machine allows pending -> confirmed -> completed
// and nothing else.
func (s *BookingService) Transition(ctx context.Context, caller ports.Caller, id uuid.UUID, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, domain.ErrInvalidStatusTransition
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, booking); err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidStatusTransition, booking.Status, next)
	}

	if err := s.bookings.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	booking.Status = next

	metrics.BookingTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.logger.Info().Str("booking_id", id.String()).Str("status", string(next)).Msg("booking transitioned")
	return booking, nil
}

// authorize checks that the caller is a party to the booking.
func (s *BookingService) authorize(ctx context.Context, caller ports.Caller, booking *domain.Booking) error {
	switch caller.UserType {
	case domain.UserTypeClient:
		if booking.ClientID != caller.UserID {
			return domain.ErrForbidden
		}
	case domain.UserTypeProvider:
		profile, err := s.profiles.FindByID(ctx, booking.ProviderProfileID)
		if err != nil {
			return err
		}
		if profile.UserID != caller.UserID {
			return domain.ErrForbidden
		}
	default:
		return domain.ErrForbidden
	}
	return nil
}
