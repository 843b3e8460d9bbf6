package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// CatalogService implements category and service-listing use cases.
type CatalogService struct {
	categories ports.CategoryRepository
	services   ports.ServiceRepository
	profiles   ports.ProfileRepository
	logger     zerolog.Logger
}

func NewCatalogService(
	categories ports.CategoryRepository,
	services ports.ServiceRepository,
	profiles ports.ProfileRepository,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{categories: categories, services: services, profiles: profiles, logger: logger}
}

func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*domain.ServiceCategory, error) {
	category := &domain.ServiceCategory{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.ServiceCategory, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input ports.UpdateCategoryInput) (*domain.ServiceCategory, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.DeleteCascade(ctx, id)
}

// CreateService lists a new offering under the caller's provider profile.
func (s *CatalogService) CreateService(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	if !input.Price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	profile, err := s.profiles.FindByUserID(ctx, input.ProviderUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		ProviderProfileID: profile.ID,
		CategoryID:        input.CategoryID,
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		Location:          input.Location,
		IsActive:          true,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		s.logger.Error().Err(err).Str("provider_profile_id", profile.ID.String()).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Str("service_id", svc.ID.String()).Str("title", svc.Title).Msg("service listed")
	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *CatalogService) SearchServices(ctx context.Context, filter ports.SearchServicesFilter) ([]*domain.Service, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	return s.services.Search(ctx, filter)
}

func (s *CatalogService) UpdateService(ctx context.Context, callerUserID, serviceID uuid.UUID, input ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := s.ownedService(ctx, callerUserID, serviceID)
	if err != nil {
		return nil, err
	}

	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domain.ErrInvalidPrice
		}
		svc.Price = *input.Price
	}
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		svc.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		svc.Title = *input.Title
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Location != nil {
		svc.Location = *input.Location
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) SetServiceActive(ctx context.Context, callerUserID, serviceID uuid.UUID, active bool) (*domain.Service, error) {
	svc, err := s.ownedService(ctx, callerUserID, serviceID)
	if err != nil {
		return nil, err
	}
	svc.IsActive = active
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, callerUserID, serviceID uuid.UUID) error {
	if _, err := s.ownedService(ctx, callerUserID, serviceID); err != nil {
		return err
	}
	return s.services.DeleteCascade(ctx, serviceID)
}

// ownedService loads a service and verifies the caller owns it through their
// provider profile.
func (s *CatalogService) ownedService(ctx context.Context, callerUserID, serviceID uuid.UUID) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.FindByID(ctx, svc.ProviderProfileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != callerUserID {
		return nil, domain.ErrForbidden
	}
	return svc, nil
}
