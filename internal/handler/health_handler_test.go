package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func TestHealthHandler_Check(t *testing.T) {
	e := echo.New()

	t.Run("healthy", func(t *testing.T) {
		handler := NewHealthHandler(&stubPinger{})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Check(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("database down", func(t *testing.T) {
		handler := NewHealthHandler(&stubPinger{err: errors.New("connection refused")})

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = handler.Check(c)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}
