package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/ports"
)

// BlogHandler serves the public blog reads and the admin CRUD.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type blogRequest struct {
	Title     string `json:"title"     validate:"required,max=255"`
	Slug      string `json:"slug"      validate:"omitempty,max=255"`
	Excerpt   string `json:"excerpt"   validate:"omitempty,max=512"`
	Content   string `json:"content"   validate:"required"`
	CoverURL  string `json:"cover_url" validate:"omitempty,max=512"`
	Author    string `json:"author"    validate:"omitempty,max=120"`
	Published bool   `json:"published"`
}

func (r blogRequest) toInput(actorID uint) ports.BlogInput {
	return ports.BlogInput{
		Title:     r.Title,
		Slug:      r.Slug,
		Excerpt:   r.Excerpt,
		Content:   r.Content,
		CoverURL:  r.CoverURL,
		Author:    r.Author,
		Published: r.Published,
		ActorID:   actorID,
	}
}

// ListPublic handles GET /api/blogs: published posts, newest first.
//
// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Envelope
// @Router       /api/blogs [get]
func (h *BlogHandler) ListPublic(c echo.Context) error {
	opts := ports.BlogListOptions{
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 10),
		PublishedOnly: true,
	}

	blogs, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blogs", newPaged(blogs, total, opts.Page, opts.Limit))
}

// GetPublic handles GET /api/blogs/:slug. Published posts only.
//
// @Summary      Get a blog post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path      string  true  "Blog slug"
// @Success      200   {object}  Envelope{data=domain.Blog}
// @Failure      404   {object}  Envelope
// @Router       /api/blogs/{slug} [get]
func (h *BlogHandler) GetPublic(c echo.Context) error {
	blog, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blog", blog)
}

// ListAdmin handles GET /api/admin/blogs, drafts included.
//
// @Summary      List blog posts (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /api/admin/blogs [get]
func (h *BlogHandler) ListAdmin(c echo.Context) error {
	opts := ports.BlogListOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	blogs, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blogs", newPaged(blogs, total, opts.Page, opts.Limit))
}

// GetAdmin handles GET /api/admin/blogs/:id.
//
// @Summary      Get a blog post (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Blog id"
// @Success      200  {object}  Envelope{data=domain.Blog}
// @Failure      404  {object}  Envelope
// @Router       /api/admin/blogs/{id} [get]
func (h *BlogHandler) GetAdmin(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	blog, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blog", blog)
}

// Create handles POST /api/admin/blogs.
//
// @Summary      Create a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blogRequest  true  "Blog fields"
// @Success      201   {object}  Envelope{data=domain.Blog}
// @Failure      400   {object}  Envelope
// @Router       /api/admin/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Create(c.Request().Context(), req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "blog created", blog)
}

// Update handles PUT /api/admin/blogs/:id.
//
// @Summary      Update a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Blog id"
// @Param        body  body      blogRequest  true  "Blog fields"
// @Success      200   {object}  Envelope{data=domain.Blog}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.Update(c.Request().Context(), id, req.toInput(actorID))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blog updated", blog)
}

// Delete handles DELETE /api/admin/blogs/:id.
//
// @Summary      Delete a blog post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Blog id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/admin/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "blog deleted", nil)
}
