package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/config"
	"balanceed_backend/internal/model"
	"balanceed_backend/internal/util"
)

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's identity in the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			util.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(tokenString, cfg)
		if err != nil {
			util.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// TryAuthMiddleware populates the caller's identity when a valid token is
// present but never rejects the request. Used on public routes whose
// response varies for logged-in users.
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := util.ParseToken(tokenString, cfg); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("userRole", claims.Role)
			}
		}
		c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles. Admins pass every
// role check.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := util.GetUserRole(c)
		if !ok {
			util.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		if role == model.Admin {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		util.Forbidden(c, "insufficient permissions")
		c.Abort()
	}
}
