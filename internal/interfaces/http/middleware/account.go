package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Keys used to carry account information through gin.Context
const (
	AccountIDKey     = "account_id"
	AccountHeaderKey = "X-Account-ID"
)

// AccountMiddlewareConfig holds configuration for account middleware
type AccountMiddlewareConfig struct {
	// SkipPaths are paths that don't require account context (e.g. health check)
	SkipPaths []string
	// Required determines if account context is mandatory
	Required bool
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultAccountConfig returns default account middleware configuration
func DefaultAccountConfig() AccountMiddlewareConfig {
	return AccountMiddlewareConfig{
		SkipPaths: []string{"/health", "/healthz", "/ready", "/api/v1/health"},
		Required:  true,
		Logger:    nil,
	}
}

// AccountMiddleware extracts the account ID from the X-Account-ID header.
// Every order and warehouse row is scoped by account, so requests without a
// valid account ID never reach a handler.
func AccountMiddleware() gin.HandlerFunc {
	return AccountMiddlewareWithConfig(DefaultAccountConfig())
}

// AccountMiddlewareWithConfig returns account middleware with custom configuration
func AccountMiddlewareWithConfig(cfg AccountMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
				c.Next()
				return
			}
		}

		accountID := c.GetHeader(AccountHeaderKey)

		if accountID != "" {
			if _, err := uuid.Parse(accountID); err != nil {
				respondUnauthorized(c, "Invalid account ID format")
				return
			}
		}

		if accountID == "" && cfg.Required {
			respondUnauthorized(c, "Account identification required")
			return
		}

		if accountID != "" {
			c.Set(AccountIDKey, accountID)

			// Make the account visible to the service layer and its logs
			ctx := c.Request.Context()
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithAccountID(ctx, log, accountID)
			c.Request = c.Request.WithContext(ctx)

			if cfg.Logger != nil {
				cfg.Logger.Debug("Account identified", zap.String("account_id", accountID))
			}
		}

		c.Next()
	}
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetAccountID retrieves the account ID from gin.Context
func GetAccountID(c *gin.Context) string {
	if accountID, exists := c.Get(AccountIDKey); exists {
		if id, ok := accountID.(string); ok {
			return id
		}
	}
	return ""
}

// GetAccountUUID retrieves the account ID as UUID from gin.Context
func GetAccountUUID(c *gin.Context) (uuid.UUID, error) {
	accountID := GetAccountID(c)
	if accountID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(accountID)
}

// OptionalAccountMiddleware creates middleware that doesn't require an account
func OptionalAccountMiddleware() gin.HandlerFunc {
	cfg := DefaultAccountConfig()
	cfg.Required = false
	return AccountMiddlewareWithConfig(cfg)
}
