package middleware

import (
	"net/http"
	"strings"

	"github.com/mdhaziqomar/memories/repositories"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired resolves the bearer token to an active principal; the account
// is re-checked against the store so deactivation takes effect immediately.
func AuthRequired(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.Error(c, http.StatusUnauthorized, "access token required")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetActiveByID(c.Request.Context(), nil, claims.UserID)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is supplied and
// otherwise lets the request through anonymously.
func OptionalAuth(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		if user, err := users.GetActiveByID(c.Request.Context(), nil, claims.UserID); err == nil {
			c.Set(ContextUserID, user.ID)
			c.Set(ContextUserRole, user.Role)
		}
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != "admin" {
			utils.Error(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
