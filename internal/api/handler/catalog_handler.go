package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/profinder/marketplace-api/internal/core/domain"
	"github.com/profinder/marketplace-api/internal/core/ports"
)

// CatalogHandler handles category and service-listing operations.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type categoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createServiceRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Location    string  `json:"location"`
}

type updateServiceRequest struct {
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Location    *string  `json:"location"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type searchServicesResponse struct {
	Data       []*domain.Service  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// CreateCategory handles POST /v1/categories.
//
// @Summary      Create a service category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.ServiceCategory
// @Router       /v1/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// ListCategories handles GET /v1/categories.
//
// @Summary      List all service categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.ServiceCategory
// @Router       /v1/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []*domain.ServiceCategory{}
	}
	return c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /v1/categories/:id.
//
// @Summary      Update a service category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Category id"
// @Param        body  body      updateCategoryRequest  true  "Fields to change"
// @Success      200   {object}  domain.ServiceCategory
// @Failure      404   {object}  errorResponse
// @Router       /v1/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.catalog.UpdateCategory(c.Request().Context(), id, ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /v1/categories/:id. Services under the
// category and their bookings go with it.
//
// @Summary      Delete a service category
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Category id"
// @Success      204  "category removed"
// @Failure      404  {object}  errorResponse
// @Router       /v1/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateService handles POST /v1/services for the authenticated provider.
//
// @Summary      List a new service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      422   {object}  errorResponse
// @Router       /v1/services [post]
func (h *CatalogHandler) CreateService(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}

	svc, err := h.catalog.CreateService(c.Request().Context(), ports.CreateServiceInput{
		ProviderUserID: callerID,
		CategoryID:     categoryID,
		Title:          req.Title,
		Description:    req.Description,
		Price:          decimal.NewFromFloat(req.Price),
		Location:       req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// GetService handles GET /v1/services/:id.
//
// @Summary      Get a service by id
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /v1/services/{id} [get]
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.catalog.GetService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// SearchServices handles GET /v1/services with substring search and ordering.
//
// @Summary      Search service listings
// @Tags         catalog
// @Produce      json
// @Param        q         query  string  false  "Substring matched against title, description, location and category name"
// @Param        category  query  string  false  "Category id"
// @Param        order_by  query  string  false  "price or rating"
// @Param        desc      query  bool    false  "Descending order"
// @Param        page      query  int     false  "1-based page"
// @Param        limit     query  int     false  "Page size"
// @Success      200  {object}  searchServicesResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) SearchServices(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	desc, _ := strconv.ParseBool(c.QueryParam("desc"))

	filter := ports.SearchServicesFilter{
		Search:     c.QueryParam("q"),
		OrderBy:    c.QueryParam("order_by"),
		Descending: desc,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	}
	if raw := c.QueryParam("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		filter.CategoryID = categoryID
	}

	services, total, err := h.catalog.SearchServices(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}

	return c.JSON(http.StatusOK, searchServicesResponse{
		Data:       services,
		Pagination: paginate(total, filter.Page, filter.Limit),
	})
}

// UpdateService handles PUT /v1/services/:id for the owning provider.
//
// @Summary      Update a service listing
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Service
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/services/{id} [put]
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.UpdateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		input.Price = &p
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		input.CategoryID = &categoryID
	}

	svc, err := h.catalog.UpdateService(c.Request().Context(), callerID, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// SetServiceActive handles PATCH /v1/services/:id/active for the owning provider.
//
// @Summary      Toggle a service's active flag
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Service id"
// @Param        body  body      setActiveRequest  true  "Target state"
// @Success      200   {object}  domain.Service
// @Failure      403   {object}  errorResponse
// @Router       /v1/services/{id}/active [patch]
func (h *CatalogHandler) SetServiceActive(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	svc, err := h.catalog.SetServiceActive(c.Request().Context(), callerID, id, *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /v1/services/:id for the owning provider.
// Bookings against the service go with it.
//
// @Summary      Delete a service listing
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      204  "service removed"
// @Failure      403  {object}  errorResponse
// @Router       /v1/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	callerID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteService(c.Request().Context(), callerID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
