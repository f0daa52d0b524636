package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(Recovery(logger))
	router.Use(GinMiddleware(logger))
	return router, logs
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	router, logs := newObservedRouter(t)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestGinMiddleware_LevelFollowsStatus(t *testing.T) {
	router, logs := newObservedRouter(t)
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	router.GET("/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestRecovery_LogsPanic(t *testing.T) {
	router, logs := newObservedRouter(t)
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, logs.FilterMessage("Panic recovered").All(), 1)
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetGinLogger(c), "no-op fallback when middleware did not run")

	logger := zap.NewNop()
	c.Set("logger", logger)
	assert.Same(t, logger, GetGinLogger(c))
}
