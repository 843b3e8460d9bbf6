package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// BookingHandler handles booking-ledger operations.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	ServiceID   string    `json:"service_id"   validate:"required,uuid"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}

// Create handles POST /v1/bookings for the authenticated client. The client
// identity comes from the token, never from the body.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Service and date"
// @Success      201   {object}  domain.Booking
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service_id")
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		ClientUserID: callerID,
		ServiceID:    serviceID,
		BookingDate:  req.BookingDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Get handles GET /v1/bookings/:id, visible only to the booking's parties.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	callerID, callerType, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.bookings.Get(c.Request().Context(), ports.Caller{UserID: callerID, UserType: callerType}, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// List handles GET /v1/bookings: the caller's own ledger, client or provider side.
//
// @Summary      List the caller's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Booking
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	callerID, callerType, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListForCaller(c.Request().Context(), ports.Caller{UserID: callerID, UserType: callerType})
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// Transition handles PATCH /v1/bookings/:id/status.
//
// @Summary      Advance a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Booking id"
// @Param        body  body      transitionRequest  true  "Target status"
// @Success      200   {object}  domain.Booking
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c echo.Context) error {
	callerID, callerType, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	booking, err := h.bookings.Transition(
		c.Request().Context(),
		ports.Caller{UserID: callerID, UserType: callerType},
		id,
		domain.BookingStatus(req.Status),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
