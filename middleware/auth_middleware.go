package middleware

import (
	"net/http"

	"daylist-app/daylist/services"
	"daylist-app/daylist/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the request's JWT and stores the caller's
// identity in the context. Tokens are accepted from the Authorization
// header or, for WebSocket clients, the token query parameter.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
