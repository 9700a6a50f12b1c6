package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/api/metrics"
	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// EnquiryHandler serves the public contact form and the admin triage list.
type EnquiryHandler struct {
	service ports.EnquiryService
}

func NewEnquiryHandler(service ports.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

type enquiryRequest struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,max=40"`
	Company string `json:"company" validate:"omitempty,max=150"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required"`
}

type enquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact enquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      enquiryRequest  true  "Enquiry details"
// @Success      201   {object}  Envelope{data=domain.Enquiry}
// @Failure      400   {object}  Envelope
// @Failure      429   {object}  Envelope
// @Router       /api/contact [post]
func (h *EnquiryHandler) Submit(c echo.Context) error {
	var req enquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enquiry, err := h.service.Submit(c.Request().Context(), ports.EnquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	metrics.EnquiriesReceivedTotal.Inc()
	return respond(c, http.StatusCreated, "enquiry received", enquiry)
}

// List handles GET /api/admin/enquiries, optionally filtered by status.
//
// @Summary      List enquiries
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter: new, contacted, or closed"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  Envelope
// @Router       /api/admin/enquiries [get]
func (h *EnquiryHandler) List(c echo.Context) error {
	opts := ports.EnquiryListOptions{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
		Status: domain.EnquiryStatus(c.QueryParam("status")),
	}

	enquiries, total, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "enquiries", newPaged(enquiries, total, opts.Page, opts.Limit))
}

// UpdateStatus handles PUT /api/admin/enquiries/:id/status.
//
// @Summary      Update enquiry status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Enquiry id"
// @Param        body  body      enquiryStatusRequest  true  "New status"
// @Success      200   {object}  Envelope{data=domain.Enquiry}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /api/admin/enquiries/{id}/status [put]
func (h *EnquiryHandler) UpdateStatus(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req enquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enquiry, err := h.service.UpdateStatus(c.Request().Context(), id, domain.EnquiryStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "enquiry updated", enquiry)
}
