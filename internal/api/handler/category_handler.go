package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/ports"
)

// CategoryHandler serves the public category reads and the admin CRUD.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,max=150"`
	Slug        string `json:"slug"        validate:"omitempty,max=150"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"   validate:"omitempty,max=512"`
	SortOrder   int    `json:"sort_order"`
	Active      *bool  `json:"active"`
}

func (r categoryRequest) toInput(actorID uint) ports.CategoryInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return ports.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		SortOrder:   r.SortOrder,
		Active:      active,
		ActorID:     actorID,
	}
}

// ListPublic handles GET /api/categories. Active categories only.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Envelope
// @Router       /api/categories [get]
func (h *CategoryHandler) ListPublic(c echo.Context) error {
	opts := ports.CategoryListOptions{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
		ActiveOnly: true,
	}

	categories, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "categories", newPaged(categories, total, opts.Page, opts.Limit))
}

// GetPublic handles GET /api/categories/:slug.
//
// @Summary      Get a category by slug
// @Tags         categories
// @Produce      json
// @Param        slug  path      string  true  "Category slug"
// @Success      200   {object}  Envelope{data=domain.Category}
// @Failure      404   {object}  Envelope
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetPublic(c echo.Context) error {
	category, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category", category)
}

// ListAdmin handles GET /api/admin/categories, inactive rows included.
//
// @Summary      List categories (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /api/admin/categories [get]
func (h *CategoryHandler) ListAdmin(c echo.Context) error {
	opts := ports.CategoryListOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 50),
	}

	categories, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "categories", newPaged(categories, total, opts.Page, opts.Limit))
}

// GetAdmin handles GET /api/admin/categories/:id.
//
// @Summary      Get a category (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  Envelope{data=domain.Category}
// @Failure      404  {object}  Envelope
// @Router       /api/admin/categories/{id} [get]
func (h *CategoryHandler) GetAdmin(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	category, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category", category)
}

// Create handles POST /api/admin/categories.
//
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      201   {object}  Envelope{data=domain.Category}
// @Failure      400   {object}  Envelope
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Create(c.Request().Context(), req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "category created", category)
}

// Update handles PUT /api/admin/categories/:id.
//
// @Summary      Update a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      200   {object}  Envelope{data=domain.Category}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.Update(c.Request().Context(), id, req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category updated", category)
}

// Delete handles DELETE /api/admin/categories/:id.
//
// @Summary      Delete a category
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category deleted", nil)
}
