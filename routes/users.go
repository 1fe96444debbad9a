package routes

import (
	"net/http"

	"daylist-app/daylist/middleware"
	"daylist-app/daylist/services"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userService services.UserServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/api/v1/users")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("/me", func(c *gin.Context) { GetCurrentUser(c, userService) })
	}
}

func GetCurrentUser(c *gin.Context, userService services.UserServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
