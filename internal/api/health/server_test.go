package health_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-reaction-bot/internal/api/health"
	"github.com/central-university-dev/go-reaction-bot/internal/common/middleware"
)

func TestHealthServer_Root(t *testing.T) {
	server := health.NewServer(0, nil, slog.Default())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, health.StatusText, rec.Body.String())
}

func TestHealthServer_UnknownPath(t *testing.T) {
	server := health.NewServer(0, nil, slog.Default())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthServer_MethodNotAllowed(t *testing.T) {
	server := health.NewServer(0, nil, slog.Default())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthServer_RateLimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 2, time.Minute, slog.Default())
	server := health.NewServer(0, limiter, slog.Default())

	var last int

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.10:4321"

		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)

		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
