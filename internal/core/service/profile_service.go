package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// ProfileService implements provider-profile use cases.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, logger: logger}
}

// Create attaches a profile to a service_provider user. The user-type check
// happens here, explicitly: the storage layer would happily attach a profile
// to any user.
func (s *ProfileService) Create(ctx context.Context, input ports.CreateProfileInput) (*domain.ServiceProviderProfile, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeProvider {
		return nil, domain.ErrInvalidUserType
	}
	if input.Experience < 0 {
		return nil, domain.ErrNegativeExperience
	}

	profile := &domain.ServiceProviderProfile{
		UserID:             input.UserID,
		Profession:         input.Profession,
		Location:           input.Location,
		ServiceDescription: input.ServiceDescription,
		Experience:         input.Experience,
		Rating:             0,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID.String()).Msg("failed to create provider profile")
		return nil, err
	}

	s.logger.Info().Str("user_id", input.UserID.String()).Str("profession", input.Profession).Msg("provider profile created")
	return profile, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ServiceProviderProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Update applies a partial update with the same experience-sign check as Create.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input ports.UpdateProfileInput) (*domain.ServiceProviderProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Experience != nil {
		if *input.Experience < 0 {
			return nil, domain.ErrNegativeExperience
		}
		profile.Experience = *input.Experience
	}
	if input.Profession != nil {
		profile.Profession = *input.Profession
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.ServiceDescription != nil {
		profile.ServiceDescription = *input.ServiceDescription
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetRating is the recompute hook for the surrounding system. Rating has no
// computation path in this layer.
func (s *ProfileService) SetRating(ctx context.Context, userID uuid.UUID, rating float64) error {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	profile.Rating = rating
	return s.profiles.Update(ctx, profile)
}
