package routes

import (
	"net/http"
	"strconv"

	"daylist-app/daylist/middleware"
	"daylist-app/daylist/models"
	"daylist-app/daylist/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterTodoRoutes(router *gin.Engine, todoService services.TodoServiceInterface, authService services.AuthServiceInterface) {
	group := router.Group("/api/v1/todos")
	group.Use(middleware.AuthMiddleware(authService))
	{
		group.GET("", func(c *gin.Context) { GetTodos(c, todoService) })
		group.POST("", func(c *gin.Context) { CreateTodo(c, todoService) })
		group.GET("/:id", func(c *gin.Context) { GetTodoByID(c, todoService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateTodo(c, todoService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteTodo(c, todoService) })
		group.PATCH("/:id/toggle", func(c *gin.Context) { ToggleTodoCompletion(c, todoService) })
	}
}

// currentUserID reads the identity stored by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	return value.(uuid.UUID), true
}

// respondTodoError maps service failures onto the HTTP surface: validation
// failures are 400s naming the offending field, the rest are 500s.
func respondTodoError(c *gin.Context, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func GetTodos(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sortOptions := models.DefaultSortOptions()
	if sortBy := c.Query("sortBy"); sortBy != "" {
		sortOptions.SortBy = sortBy
	}
	if sortOrder := c.Query("sortOrder"); sortOrder != "" {
		sortOptions.SortOrder = sortOrder
	}

	pagination := models.DefaultPaginationOptions()
	if page := c.Query("page"); page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer", "field": "page"})
			return
		}
		pagination.Page = parsed
	}
	if limit := c.Query("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer", "field": "limit"})
			return
		}
		pagination.Limit = parsed
	}

	result, err := todoService.GetTodos(userID, sortOptions, pagination)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func CreateTodo(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.TodoCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := todoService.CreateTodo(userID, input)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func GetTodoByID(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todo, err := todoService.GetTodoByID(userID, c.Param("id"))
	if err != nil {
		respondTodoError(c, err)
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

func UpdateTodo(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.TodoUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := todoService.UpdateTodo(userID, c.Param("id"), input)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

func DeleteTodo(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	deleted, err := todoService.DeleteTodo(userID, c.Param("id"))
	if err != nil {
		respondTodoError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func ToggleTodoCompletion(c *gin.Context, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todo, err := todoService.ToggleTodoCompletion(userID, c.Param("id"))
	if err != nil {
		respondTodoError(c, err)
		return
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	c.JSON(http.StatusOK, todo)
}
