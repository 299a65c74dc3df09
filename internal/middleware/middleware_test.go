package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"marketplace-contracts-backend/internal/logging"
	"marketplace-contracts-backend/internal/middleware"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", c.Request.Context().Value(logging.RequestIDKey))
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	req, _ = http.NewRequest("GET", "/test", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRecoveryAndRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(logger), middleware.RequestLogger(logger))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	req, _ := http.NewRequest("GET", "/panic", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "req-1")

	panics := logs.FilterMessage("panic recovered").All()
	if assert.Len(t, panics, 1) {
		assert.Equal(t, "req-1", panics[0].ContextMap()["request_id"])
	}

	req, _ = http.NewRequest("GET", "/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	lines := logs.FilterMessage("request").All()
	if assert.Len(t, lines, 1) {
		assert.Equal(t, zapcore.WarnLevel, lines[0].Level)
		assert.Equal(t, int64(http.StatusNotFound), lines[0].ContextMap()["status"])
	}
}
