package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountRouter(mw gin.HandlerFunc) (*gin.Engine, *string) {
	var seen string
	r := gin.New()
	r.Use(mw)
	r.GET("/api/v1/orders", func(c *gin.Context) {
		seen = GetAccountID(c)
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, &seen
}

func TestAccountMiddleware_ValidHeader(t *testing.T) {
	r, seen := accountRouter(AccountMiddleware())
	accountID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(AccountHeaderKey, accountID)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, accountID, *seen)
}

func TestAccountMiddleware_MissingHeader(t *testing.T) {
	r, _ := accountRouter(AccountMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAccountMiddleware_MalformedHeader(t *testing.T) {
	r, _ := accountRouter(AccountMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(AccountHeaderKey, "not-a-uuid")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccountMiddleware_SkipPaths(t *testing.T) {
	r, _ := accountRouter(AccountMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAccountMiddleware(t *testing.T) {
	r, seen := accountRouter(OptionalAccountMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *seen)
}

func TestGetAccountUUID(t *testing.T) {
	accountID := uuid.New()

	r := gin.New()
	r.Use(AccountMiddleware())
	var got uuid.UUID
	r.GET("/api/v1/orders", func(c *gin.Context) {
		var err error
		got, err = GetAccountUUID(c)
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(AccountHeaderKey, accountID.String())
	r.ServeHTTP(w, req)

	assert.Equal(t, accountID, got)
}
