package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// GormCategoryRepository persists service categories.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, c *domain.ServiceCategory) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceCategory, error) {
	var c domain.ServiceCategory
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]*domain.ServiceCategory, error) {
	var categories []*domain.ServiceCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, c *domain.ServiceCategory) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCascade removes the category, every service filed under it, and all
// bookings referencing those services, in one transaction.
func (r *GormCategoryRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var serviceIDs []uuid.UUID
		if err := tx.Model(&domain.Service{}).Where("category_id = ?", id).Pluck("id", &serviceIDs).Error; err != nil {
			return err
		}
		if len(serviceIDs) > 0 {
			if err := tx.Where("service_id IN ?", serviceIDs).Delete(&domain.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&domain.Service{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.ServiceCategory{}, "id = ?", id).Error
	})
}

// GormServiceRepository persists service listings.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &s, nil
}

// Search filters services by substring across title, description, location
// and category name, and orders by price or by the owning provider's rating.
func (r *GormServiceRepository) Search(ctx context.Context, filter ports.SearchServicesFilter) ([]*domain.Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Service{}).
		Joins("JOIN service_categories ON service_categories.id = services.category_id")

	if filter.OrderBy == ports.OrderByRating {
		q = q.Joins("JOIN service_provider_profiles ON service_provider_profiles.id = services.provider_profile_id")
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"services.title ILIKE ? OR services.description ILIKE ? OR services.location ILIKE ? OR service_categories.name ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.CategoryID != uuid.Nil {
		q = q.Where("services.category_id = ?", filter.CategoryID)
	}
	if filter.ProviderProfileID != uuid.Nil {
		q = q.Where("services.provider_profile_id = ?", filter.ProviderProfileID)
	}
	if filter.ActiveOnly {
		q = q.Where("services.is_active")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	dir := "ASC"
	if filter.Descending {
		dir = "DESC"
	}
	switch filter.OrderBy {
	case ports.OrderByPrice:
		q = q.Order("services.price " + dir)
	case ports.OrderByRating:
		q = q.Order("service_provider_profiles.rating " + dir)
	default:
		q = q.Order("services.created_at DESC")
	}

	var services []*domain.Service
	err := q.Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&services).Error
	if err != nil {
		return nil, 0, fmt.Errorf("search services: %w", err)
	}
	return services, total, nil
}

func (r *GormServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// DeleteCascade removes the service and its bookings in one transaction.
func (r *GormServiceRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Service{}, "id = ?", id).Error
	})
}
