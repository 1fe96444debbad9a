package routes

import (
	"daylist-app/daylist/middleware"
	"daylist-app/daylist/services"

	"github.com/gin-gonic/gin"
)

// RegisterStreamRoutes sets up the WebSocket event stream endpoint.
// Clients may pass the token as a query parameter since browsers cannot
// set headers on WebSocket upgrades.
func RegisterStreamRoutes(router *gin.Engine, streamService services.StreamServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/api/v1/ws")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) {
			streamService.HandleConnection(c)
		})
	}
}
