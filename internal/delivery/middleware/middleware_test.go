package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bartile/config"
	deliverycontext "bartile/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id reused", header: "abc-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("x", maxClientRequestIDLen+1)},
		{name: "control characters replaced", header: "abc\n123"},
		{name: "spaces replaced", header: "abc 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

			var fromEcho, fromCtx string
			var scoped *slog.Logger
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				scoped = deliverycontext.GetLogger(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, fromEcho)
			assert.Equal(t, fromEcho, fromCtx)
			assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, scoped)
			if tt.wantSame {
				assert.Equal(t, tt.header, fromEcho)
			} else {
				assert.NotEqual(t, tt.header, fromEcho)
			}
		})
	}
}

func newLoggedEcho(debug bool, buf *bytes.Buffer) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process, NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/sessions/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	return e
}

func TestLoggerMiddleware_Debug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(true, &buf)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/42?x=1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "/sessions/:id", line["route"])
	assert.Equal(t, "42", line["resource_id"])
	assert.Equal(t, "x=1", line["query"])
	assert.EqualValues(t, http.StatusNoContent, line["status"])
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), line["request_id"])
}

func TestLoggerMiddleware_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newLoggedEcho(false, &buf)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/42", nil))
	assert.Zero(t, buf.Len())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, http.StatusBadGateway, line["status"])
}

func TestParamLogAttr(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	g := e.Group("/sessions", m.Process, ParamLogAttr("id", "session_id"))
	g.GET("/:id", func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("touched")

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/abc", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), `"session_id":"abc"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}
