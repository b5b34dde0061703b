package middleware

import (
	"net/http"

	"majestic-art-be/internal/auth"

	"github.com/gin-gonic/gin"
)

const AdminClaimsKey = "adminClaims"

// AdminAuthMiddleware rejects requests without a valid admin token. The
// token is read from the access_token cookie or a bearer header.
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ParseAdminJWT(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
