package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health-check", nil)
	rec := httptest.NewRecorder()

	if err := Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Health() returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"healthy"}` {
		t.Fatalf("body = %q, want %q", got, `{"status":"healthy"}`)
	}
}

// Repeated calls must produce byte-identical responses.
func TestHealthIsIdempotent(t *testing.T) {
	e := echo.New()

	var bodies [2]string
	for i := range bodies {
		req := httptest.NewRequest(http.MethodGet, "/api/health-check", nil)
		rec := httptest.NewRecorder()
		if err := Health(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Health() returned error: %v", err)
		}
		bodies[i] = rec.Body.String()
	}

	if bodies[0] != bodies[1] {
		t.Fatalf("responses differ: %q vs %q", bodies[0], bodies[1])
	}
}
