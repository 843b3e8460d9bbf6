package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// UserHandler handles identity reads and self-service profile edits.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	Email       *string `json:"email"        validate:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type listUsersResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /v1/users?type=&page=&limit=.
//
// @Summary      List users, optionally filtered by account kind
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        type   query     string  false  "client or service_provider"
// @Param        page   query     int     false  "1-based page"
// @Param        limit  query     int     false  "page size"
// @Success      200    {object}  listUsersResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := ports.ListUsersFilter{
		UserType: domain.UserType(c.QueryParam("type")),
		Page:     page,
		Limit:    limit,
	}

	users, total, err := h.users.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Data:       users,
		Pagination: paginate(total, filter.Page, filter.Limit),
	})
}

// UpdateMe handles PUT /v1/users/me, a partial self-service update.
//
// @Summary      Update the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), callerID, ports.UpdateUserInput{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteMe handles DELETE /v1/users/me. It removes the account and cascades to
// every dependent record.
//
// @Summary      Delete the authenticated user
// @Tags         users
// @Security     BearerAuth
// @Success      204  "account removed"
// @Router       /v1/users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Request().Context(), callerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// paginate derives the wire pagination block from a total and page shape.
func paginate(total int64, page, limit int) paginationResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return paginationResponse{Total: total, Page: page, Limit: limit, TotalPages: pages}
}
