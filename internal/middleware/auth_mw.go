package middleware

import (
	"net/http"
	"strings"

	"inventory_api/internal/repository"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the gin context key holding the authenticated *model.User
const AuthUserKey = "authUser"

// JWTAuthMiddleware creates a middleware for JWT bearer authentication.
// A missing or non-Bearer header is 401; a bad token, or a token whose
// user no longer exists, is 403.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied, token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}
