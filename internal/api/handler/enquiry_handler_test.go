package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

type stubEnquiryService struct {
	submitted *ports.EnquiryInput
	updated   *domain.Enquiry
	updateErr error
}

func (s *stubEnquiryService) Submit(_ context.Context, in ports.EnquiryInput) (*domain.Enquiry, error) {
	s.submitted = &in
	return &domain.Enquiry{ID: 1, Name: in.Name, Email: in.Email, Message: in.Message, Status: domain.EnquiryStatusNew}, nil
}

func (s *stubEnquiryService) List(_ context.Context, opts ports.EnquiryListOptions) ([]domain.Enquiry, int64, error) {
	return []domain.Enquiry{{ID: 1, Status: domain.EnquiryStatusNew}}, 1, nil
}

func (s *stubEnquiryService) UpdateStatus(_ context.Context, id uint, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updated = &domain.Enquiry{ID: id, Status: status}
	return s.updated, nil
}

func TestEnquiryHandler_Submit(t *testing.T) {
	svc := &stubEnquiryService{}
	h := NewEnquiryHandler(svc)

	body := `{"name":"Jordan","email":"jordan@example.com","message":"Need a POS quote"}`
	c, rec := jsonContext(t, http.MethodPost, "/api/contact", body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.submitted == nil || svc.submitted.Email != "jordan@example.com" {
		t.Fatalf("submission not forwarded: %+v", svc.submitted)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
}

func TestEnquiryHandler_Submit_Validation(t *testing.T) {
	h := NewEnquiryHandler(&stubEnquiryService{})

	cases := []string{
		`{"email":"jordan@example.com","message":"hi"}`,
		`{"name":"Jordan","email":"nope","message":"hi"}`,
		`{"name":"Jordan","email":"jordan@example.com"}`,
	}
	for _, body := range cases {
		c, _ := jsonContext(t, http.MethodPost, "/api/contact", body)
		err := h.Submit(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestEnquiryHandler_UpdateStatus(t *testing.T) {
	svc := &stubEnquiryService{}
	h := NewEnquiryHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/enquiries/3/status", strings.NewReader(`{"status":"contacted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.updated == nil || svc.updated.ID != 3 || svc.updated.Status != domain.EnquiryStatusContacted {
		t.Fatalf("unexpected update: %+v", svc.updated)
	}
}

func TestEnquiryHandler_UpdateStatus_BadInput(t *testing.T) {
	h := NewEnquiryHandler(&stubEnquiryService{})

	e := echo.New()
	e.Validator = NewValidator()

	// Unknown status value.
	req := httptest.NewRequest(http.MethodPut, "/api/admin/enquiries/3/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.UpdateStatus(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %v", err)
	}

	// Malformed id.
	req = httptest.NewRequest(http.MethodPut, "/api/admin/enquiries/abc/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c = e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err = h.UpdateStatus(c)
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %v", err)
	}
}
