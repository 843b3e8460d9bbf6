package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// Service search ordering columns.
const (
	OrderByPrice  = "price"
	OrderByRating = "rating"
)

// SearchServicesFilter carries all query parameters for the service search.
type SearchServicesFilter struct {
	Search            string    // substring match on title, description, location, category name
	CategoryID        uuid.UUID // optional: restrict to one category
	ProviderProfileID uuid.UUID // optional: restrict to one provider
	ActiveOnly        bool
	OrderBy           string // "price" or "rating"; empty = newest first
	Descending        bool
	Page              int // 1-based
	Limit             int // capped by the service
}

// CategoryRepository defines persistence operations for service categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.ServiceCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceCategory, error)
	List(ctx context.Context) ([]*domain.ServiceCategory, error)
	Update(ctx context.Context, c *domain.ServiceCategory) error
	// DeleteCascade removes the category, its services, and all bookings
	// referencing those services in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

// ServiceRepository defines persistence operations for service listings.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	// Search returns a page of services matching filter and the total count.
	// Rating ordering joins through the owning provider profile.
	Search(ctx context.Context, filter SearchServicesFilter) ([]*domain.Service, int64, error)
	Update(ctx context.Context, s *domain.Service) error
	// DeleteCascade removes the service and its bookings in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
