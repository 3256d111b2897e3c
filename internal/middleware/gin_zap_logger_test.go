package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"inkbound-server/internal/middleware"
)

func newRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	router.Use(middleware.GinZapLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/missing", func(c *gin.Context) { c.String(http.StatusBadRequest, "bad") })
	router.GET("/boom", func(c *gin.Context) { c.String(http.StatusBadGateway, "boom") })
	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return router, logs
}

func TestGinZapLogger_LevelByStatus(t *testing.T) {
	router, logs := newRouter(t)

	for _, path := range []string{"/ok?x=1", "/missing", "/boom"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Request completed", entries[0].Message)
	assert.Equal(t, "/ok?x=1", entries[0].ContextMap()["path"])
	assert.Equal(t, "Client error", entries[1].Message)
	assert.Equal(t, "Server error", entries[2].Message)
}

func TestGinZapLogger_RequestID(t *testing.T) {
	router, logs := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, generated)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, generated, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "req-42", entries[1].ContextMap()["request_id"])
}

func TestGinZapLogger_SkipsHealth(t *testing.T) {
	router, logs := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, logs.Len())
}
