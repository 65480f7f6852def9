package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trafficalert/config"
	deliverycontext "trafficalert/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func createTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/echo-id", func(c echo.Context) error {
		logger := deliverycontext.LoggerOrDefault(c.Request().Context(), nil)
		logger.Info("inside handler")

		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("propagates client ID", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := createTestEcho(buf, false)
		req := httptest.NewRequest(http.MethodGet, "/echo-id", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), `msg="inside handler" request_id=abc-123`)
	})

	t.Run("generates ID", func(t *testing.T) {
		e := createTestEcho(&bytes.Buffer{}, false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo-id", nil))

		assert.Len(t, rec.Body.String(), 36)
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("logs status of failed request", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := createTestEcho(buf, false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status=418")
	})

	t.Run("health checks are quiet outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := createTestEcho(buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("health checks are logged in debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := createTestEcho(buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Contains(t, buf.String(), "uri=/health")
	})
}
