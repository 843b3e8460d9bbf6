package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// CreateCategoryInput carries the fields of a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput is a partial update; nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CreateServiceInput carries the fields of a new service listing.
// ProviderUserID is the authenticated caller; the service resolves it to the
// owning profile.
type CreateServiceInput struct {
	ProviderUserID uuid.UUID
	CategoryID     uuid.UUID
	Title          string
	Description    string
	Price          decimal.Decimal
	Location       string
}

// UpdateServiceInput is a partial update; nil fields are left untouched.
type UpdateServiceInput struct {
	CategoryID  *uuid.UUID
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Location    *string
}

// CatalogService defines category and service-listing use cases.
type CatalogService interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.ServiceCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.ServiceCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	SearchServices(ctx context.Context, filter SearchServicesFilter) ([]*domain.Service, int64, error)
	// UpdateService and the operations below are scoped to the owning
	// provider; a mismatched caller gets domain.ErrForbidden.
	UpdateService(ctx context.Context, callerUserID, serviceID uuid.UUID, input UpdateServiceInput) (*domain.Service, error)
	SetServiceActive(ctx context.Context, callerUserID, serviceID uuid.UUID, active bool) (*domain.Service, error)
	DeleteService(ctx context.Context, callerUserID, serviceID uuid.UUID) error
}
