package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiterStore struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiterStore) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func limitContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_Allows(t *testing.T) {
	store := &stubLimiterStore{allowed: true}
	c, rec := limitContext()

	called := false
	handler := RateLimit(store, "contact", zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected request to pass")
	}
	if len(store.keys) != 1 || store.keys[0] != "contact:198.51.100.7" {
		t.Fatalf("unexpected limiter keys: %v", store.keys)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	store := &stubLimiterStore{allowed: false}
	c, _ := limitContext()

	handler := RateLimit(store, "contact", zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpenOnStoreError(t *testing.T) {
	store := &stubLimiterStore{err: errors.New("redis down")}
	c, rec := limitContext()

	called := false
	handler := RateLimit(store, "login", zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected request to pass when the store fails")
	}
}
