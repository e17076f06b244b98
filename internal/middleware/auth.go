package middleware

import (
	"net/http"
	"strings"

	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer JWT and stores the user id and
// profile name in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação ausente"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("profile", claims.Profile)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireProfiles aborts with 403 unless the caller's profile is in the
// allow-list. Must run after AuthMiddleware.
func RequireProfiles(profiles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		allowed[p] = true
	}

	return func(c *gin.Context) {
		profileVal, exists := c.Get("profile")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado: perfil ausente"})
			return
		}

		profile, ok := profileVal.(string)
		if !ok || !allowed[profile] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado: permissões insuficientes"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := userIDVal.(uint)
	return userID, ok
}

// GetProfile extracts the authenticated profile name.
func GetProfile(c *gin.Context) string {
	profileVal, exists := c.Get("profile")
	if !exists {
		return ""
	}
	profile, _ := profileVal.(string)
	return profile
}
