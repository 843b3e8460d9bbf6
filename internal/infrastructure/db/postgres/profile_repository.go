package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// GormProfileRepository persists provider profiles.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Create(ctx context.Context, p *domain.ServiceProviderProfile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert provider profile: %w", err)
	}
	return nil
}

func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceProviderProfile, error) {
	var p domain.ServiceProviderProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find provider profile: %w", err)
	}
	return &p, nil
}

func (r *GormProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.ServiceProviderProfile, error) {
	var p domain.ServiceProviderProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find provider profile by user: %w", err)
	}
	return &p, nil
}

func (r *GormProfileRepository) Update(ctx context.Context, p *domain.ServiceProviderProfile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update provider profile: %w", err)
	}
	return nil
}
