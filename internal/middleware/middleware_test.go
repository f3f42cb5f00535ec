package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(ZapLogger(logger, &config.Config{GinMode: "release"}))
	r.Use(ErrorHandler(logger))
	r.NoRoute(NoRoute())
	r.NoMethod(NoMethod())
	return r
}

func TestZapLogger_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core))
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = common.GetRequestIDFromContext(c)
		common.LoggerFromContext(c).Info("inside handler")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(common.RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", w.Header().Get(common.RequestIDHeader))
	inside := logs.FilterMessage("inside handler").All()
	if assert.Len(t, inside, 1) {
		assert.Equal(t, "req-123", inside[0].ContextMap()["request_id"])
	}
	assert.Equal(t, 1, logs.FilterMessage("Request handled").Len())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(common.RequestIDHeader))
}

func TestZapLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, 1, logs.FilterMessage("Client error").Len())
	assert.Equal(t, 1, logs.FilterMessage("Server error").Len())
}

func TestErrorHandler(t *testing.T) {
	r := newRouter(zap.NewNop())
	r.GET("/classified", func(c *gin.Context) { _ = c.Error(common.ErrConflict) })
	r.GET("/unclassified", func(c *gin.Context) { _ = c.Error(errors.New("secret detail")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classified", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unclassified", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
}

func TestNoRouteAndNoMethod(t *testing.T) {
	r := newRouter(zap.NewNop())
	r.GET("/only-get", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/only-get", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "METHOD_NOT_ALLOWED")
}
