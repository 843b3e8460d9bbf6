package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/profinder/marketplace-api/internal/core/ports"
)

// ProfileHandler handles provider-profile operations.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type createProfileRequest struct {
	Profession         string `json:"profession"          validate:"required"`
	Location           string `json:"location"`
	ServiceDescription string `json:"service_description"`
	Experience         int    `json:"experience"`
}

type updateProfileRequest struct {
	Profession         *string `json:"profession"`
	Location           *string `json:"location"`
	ServiceDescription *string `json:"service_description"`
	Experience         *int    `json:"experience"`
}

// Create handles POST /v1/providers/profile for the authenticated provider.
//
// @Summary      Create the caller's provider profile
// @Tags         providers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile details"
// @Success      201   {object}  domain.ServiceProviderProfile
// @Failure      422   {object}  errorResponse
// @Router       /v1/providers/profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.profiles.Create(c.Request().Context(), ports.CreateProfileInput{
		UserID:             callerID,
		Profession:         req.Profession,
		Location:           req.Location,
		ServiceDescription: req.ServiceDescription,
		Experience:         req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// Get handles GET /v1/providers/:user_id/profile.
//
// @Summary      Get a provider profile by user id
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "Provider's user id"
// @Success      200      {object}  domain.ServiceProviderProfile
// @Failure      404      {object}  errorResponse
// @Router       /v1/providers/{user_id}/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}
	profile, err := h.profiles.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PUT /v1/providers/profile for the authenticated provider.
//
// @Summary      Update the caller's provider profile
// @Tags         providers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.ServiceProviderProfile
// @Failure      422   {object}  errorResponse
// @Router       /v1/providers/profile [put]
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.profiles.Update(c.Request().Context(), callerID, ports.UpdateProfileInput{
		Profession:         req.Profession,
		Location:           req.Location,
		ServiceDescription: req.ServiceDescription,
		Experience:         req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
