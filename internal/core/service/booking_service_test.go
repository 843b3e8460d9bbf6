package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

type bookingFixture struct {
	users    *stubUserRepo
	profiles *stubProfileRepo
	services *stubServiceRepo
	bookings *stubBookingRepo
	svc      *BookingService

	client   *domain.User
	provider *domain.User
	profile  *domain.ServiceProviderProfile
	listing  *domain.Service
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		users:    newStubUserRepo(),
		profiles: newStubProfileRepo(),
		services: newStubServiceRepo(),
		bookings: newStubBookingRepo(),
	}
	f.svc = NewBookingService(f.bookings, f.services, f.users, f.profiles, discardLogger)

	f.client = seedUser(f.users, "client@example.com", domain.UserTypeClient)
	f.provider = seedUser(f.users, "pro@example.com", domain.UserTypeProvider)
	f.profile = seedProfile(f.profiles, f.provider.ID, 4.0)
	f.listing = &domain.Service{
		ProviderProfileID: f.profile.ID,
		CategoryID:        uuid.New(),
		Title:             "Fix sink",
		Price:             decimal.RequireFromString("25"),
		IsActive:          true,
	}
	if err := f.services.Create(context.Background(), f.listing); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return f
}

func (f *bookingFixture) create(t *testing.T) *domain.Booking {
	t.Helper()
	b, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientUserID: f.client.ID,
		ServiceID:    f.listing.ID,
		BookingDate:  time.Now().UTC().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func clientCaller(f *bookingFixture) ports.Caller {
	return ports.Caller{UserID: f.client.ID, UserType: domain.UserTypeClient}
}

func providerCaller(f *bookingFixture) ports.Caller {
	return ports.Caller{UserID: f.provider.ID, UserType: domain.UserTypeProvider}
}

func TestBookingService_Create_Success(t *testing.T) {
	f := newBookingFixture(t)

	b := f.create(t)
	if b.Status != domain.BookingStatusPending {
		t.Errorf("new booking must start pending, got %q", b.Status)
	}
	if b.ProviderProfileID != f.profile.ID {
		t.Error("provider profile id must be denormalized from the service")
	}
	if b.ClientID != f.client.ID {
		t.Error("client id must come from the caller")
	}
}

func TestBookingService_Create_PastDate(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientUserID: f.client.ID,
		ServiceID:    f.listing.ID,
		BookingDate:  time.Now().UTC().Add(-time.Hour),
	})
	if !errors.Is(err, domain.ErrPastBookingDate) {
		t.Fatalf("expected ErrPastBookingDate, got %v", err)
	}
}

func TestBookingService_Create_ProviderCannotBook(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientUserID: f.provider.ID,
		ServiceID:    f.listing.ID,
		BookingDate:  time.Now().UTC().Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrInvalidUserType) {
		t.Fatalf("expected ErrInvalidUserType, got %v", err)
	}
}

func TestBookingService_Create_ServiceNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Create(context.Background(), ports.CreateBookingInput{
		ClientUserID: f.client.ID,
		ServiceID:    uuid.New(),
		BookingDate:  time.Now().UTC().Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBookingService_Transition_FullLifecycle(t *testing.T) {
	f := newBookingFixture(t)
	b := f.create(t)

	confirmed, err := f.svc.Transition(context.Background(), providerCaller(f), b.ID, domain.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != domain.BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %q", confirmed.Status)
	}

	completed, err := f.svc.Transition(context.Background(), clientCaller(f), b.ID, domain.BookingStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != domain.BookingStatusCompleted {
		t.Fatalf("expected completed, got %q", completed.Status)
	}
}

func TestBookingService_Transition_SkippingConfirmedRejected(t *testing.T) {
	f := newBookingFixture(t)
	b := f.create(t)

	_, err := f.svc.Transition(context.Background(), clientCaller(f), b.ID, domain.BookingStatusCompleted)
	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
	// The stored row must be untouched.
	if f.bookings.byID[b.ID].Status != domain.BookingStatusPending {
		t.Error("failed transition must not change the stored status")
	}
}

func TestBookingService_Transition_UnknownStatus(t *testing.T) {
	f := newBookingFixture(t)
	b := f.create(t)

	_, err := f.svc.Transition(context.Background(), clientCaller(f), b.ID, "cancelled")
	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestBookingService_Transition_StrangerForbidden(t *testing.T) {
	f := newBookingFixture(t)
	b := f.create(t)
	stranger := seedUser(f.users, "stranger@example.com", domain.UserTypeClient)

	_, err := f.svc.Transition(context.Background(), ports.Caller{UserID: stranger.ID, UserType: domain.UserTypeClient}, b.ID, domain.BookingStatusConfirmed)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingService_Get_ScopedToParties(t *testing.T) {
	f := newBookingFixture(t)
	b := f.create(t)

	if _, err := f.svc.Get(context.Background(), clientCaller(f), b.ID); err != nil {
		t.Errorf("client party must see the booking: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), providerCaller(f), b.ID); err != nil {
		t.Errorf("provider party must see the booking: %v", err)
	}

	otherProvider := seedUser(f.users, "other@example.com", domain.UserTypeProvider)
	seedProfile(f.profiles, otherProvider.ID, 0)
	_, err := f.svc.Get(context.Background(), ports.Caller{UserID: otherProvider.ID, UserType: domain.UserTypeProvider}, b.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a non-party provider, got %v", err)
	}
}

func TestBookingService_ListForCaller(t *testing.T) {
	f := newBookingFixture(t)
	f.create(t)
	f.create(t)

	clientSide, err := f.svc.ListForCaller(context.Background(), clientCaller(f))
	if err != nil {
		t.Fatalf("client list: %v", err)
	}
	if len(clientSide) != 2 {
		t.Errorf("client must see 2 bookings, got %d", len(clientSide))
	}

	providerSide, err := f.svc.ListForCaller(context.Background(), providerCaller(f))
	if err != nil {
		t.Fatalf("provider list: %v", err)
	}
	if len(providerSide) != 2 {
		t.Errorf("provider must see 2 bookings, got %d", len(providerSide))
	}
}

func TestBookingService_ListForCaller_ProviderWithoutProfile(t *testing.T) {
	f := newBookingFixture(t)
	bare := seedUser(f.users, "bare@example.com", domain.UserTypeProvider)

	_, err := f.svc.ListForCaller(context.Background(), ports.Caller{UserID: bare.ID, UserType: domain.UserTypeProvider})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
