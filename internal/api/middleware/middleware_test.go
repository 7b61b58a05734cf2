package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/userhub/users-api/internal/pkg/metrics"
)

func TestRequestLogger_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/api/users/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "warn" {
		t.Errorf("404 should log at warn, got %v", line["level"])
	}
	if line["method"] != "GET" || line["uri"] != "/api/users/abc" {
		t.Errorf("unexpected fields: %v", line)
	}
	if line["status"] != float64(http.StatusNotFound) {
		t.Errorf("unexpected status: %v", line["status"])
	}
}

func TestMetrics_ObservesByRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/users/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	for _, path := range []string{"/api/users/a", "/api/users/b", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	// /api/users/a and /api/users/b share one series; /boom gets its own.
	if got := testutil.CollectAndCount(metrics.HTTPRequestDuration); got != 2 {
		t.Fatalf("expected 2 series, got %d", got)
	}
}
