package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/ports"
)

// ProductHandler serves the public product reads and the admin CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	CategoryID       uint    `json:"category_id"       validate:"required"`
	Name             string  `json:"name"              validate:"required,max=255"`
	Slug             string  `json:"slug"              validate:"omitempty,max=255"`
	ShortDescription string  `json:"short_description" validate:"omitempty,max=512"`
	Description      string  `json:"description"`
	Features         string  `json:"features"`
	Price            float64 `json:"price"             validate:"omitempty,gte=0"`
	ImageURL         string  `json:"image_url"         validate:"omitempty,max=512"`
	SortOrder        int     `json:"sort_order"`
	Active           *bool   `json:"active"`
}

func (r productRequest) toInput(actorID uint) ports.ProductInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return ports.ProductInput{
		CategoryID:       r.CategoryID,
		Name:             r.Name,
		Slug:             r.Slug,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Features:         r.Features,
		Price:            r.Price,
		ImageURL:         r.ImageURL,
		SortOrder:        r.SortOrder,
		Active:           active,
		ActorID:          actorID,
	}
}

// ListPublic handles GET /api/products: active products, optionally
// narrowed to a category slug.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Category slug"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  Envelope
// @Router       /api/products [get]
func (h *ProductHandler) ListPublic(c echo.Context) error {
	opts := ports.ProductListOptions{
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 20),
		ActiveOnly:   true,
		CategorySlug: c.QueryParam("category"),
	}

	products, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "products", newPaged(products, total, opts.Page, opts.Limit))
}

// GetPublic handles GET /api/products/:slug.
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  Envelope{data=domain.Product}
// @Failure      404   {object}  Envelope
// @Router       /api/products/{slug} [get]
func (h *ProductHandler) GetPublic(c echo.Context) error {
	product, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product", product)
}

// ListAdmin handles GET /api/admin/products, inactive rows included.
//
// @Summary      List products (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /api/admin/products [get]
func (h *ProductHandler) ListAdmin(c echo.Context) error {
	opts := ports.ProductListOptions{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
		CategoryID: uint(queryInt(c, "category_id", 0)),
	}

	products, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "products", newPaged(products, total, opts.Page, opts.Limit))
}

// GetAdmin handles GET /api/admin/products/:id.
//
// @Summary      Get a product (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  Envelope{data=domain.Product}
// @Failure      404  {object}  Envelope
// @Router       /api/admin/products/{id} [get]
func (h *ProductHandler) GetAdmin(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product", product)
}

// Create handles POST /api/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  Envelope{data=domain.Product}
// @Failure      400   {object}  Envelope
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "product created", product)
}

// Update handles PUT /api/admin/products/:id.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  Envelope{data=domain.Product}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), id, req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product updated", product)
}

// Delete handles DELETE /api/admin/products/:id.
//
// @Summary      Delete a product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product deleted", nil)
}
