package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

type SlugHandler struct {
	slugs ports.SlugService
}

func NewSlugHandler(slugs ports.SlugService) *SlugHandler {
	return &SlugHandler{slugs: slugs}
}

type validateSlugRequest struct {
	Slug      string `json:"slug"      validate:"required"`
	Table     string `json:"table"     validate:"required,oneof=category product blog"`
	ExcludeID uint   `json:"excludeId"`
}

type validateSlugResponse struct {
	IsValid  bool   `json:"isValid"`
	IsUnique bool   `json:"isUnique"`
	Message  string `json:"message"`
}

// ValidateSlug checks a proposed slug's format and availability without
// writing anything. The dashboard calls this as the admin types.
//
// @Summary      Validate a slug
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      validateSlugRequest  true  "Slug to check"
// @Success      200   {object}  Envelope{data=validateSlugResponse}
// @Failure      400   {object}  Envelope
// @Router       /api/admin/validate-slug [post]
func (h *SlugHandler) ValidateSlug(c echo.Context) error {
	var req validateSlugRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := validateSlugResponse{}
	resp.IsValid = h.slugs.IsValidFormat(req.Slug)
	if !resp.IsValid {
		resp.Message = "slug must be lowercase alphanumerics separated by single hyphens"
		return respond(c, http.StatusOK, "slug checked", resp)
	}

	unique, err := h.slugs.IsUnique(c.Request().Context(), domain.SlugTable(req.Table), req.Slug, req.ExcludeID)
	if err != nil {
		return err
	}
	resp.IsUnique = unique
	if unique {
		resp.Message = "slug is available"
	} else {
		resp.Message = "slug is already in use"
	}
	return respond(c, http.StatusOK, "slug checked", resp)
}
