package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// GormBookingRepository persists the booking ledger.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *GormBookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("booking_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by client: %w", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByProviderProfile(ctx context.Context, profileID uuid.UUID) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	err := r.db.WithContext(ctx).
		Where("provider_profile_id = ?", profileID).
		Order("booking_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by provider: %w", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
