package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"daylist-app/daylist/models"
	"daylist-app/daylist/repositories"
	"daylist-app/daylist/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testToken = "valid-token"

// stubAuthService accepts exactly one bearer token and maps it to a fixed
// user, so route tests exercise the real auth middleware.
type stubAuthService struct {
	userID uuid.UUID
}

func (s *stubAuthService) Register(email, password string) (models.User, error) {
	return models.User{ID: s.userID, Email: email}, nil
}

func (s *stubAuthService) Login(email, password string) (string, error) {
	return testToken, nil
}

func (s *stubAuthService) ValidateToken(tokenString string) (*services.JWTClaims, error) {
	if tokenString != testToken {
		return nil, errors.New("invalid token")
	}
	return &services.JWTClaims{UserID: s.userID, Email: "tester@example.com"}, nil
}

func (s *stubAuthService) HashPassword(password string) (string, error) {
	return password, nil
}

func (s *stubAuthService) ComparePasswords(hashedPassword, password string) error {
	return nil
}

func setupTodoRouter(t *testing.T) (*gin.Engine, services.TodoServiceInterface, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	todoService := services.NewTodoService(
		repositories.NewMemoryTodoRepository(nil),
		repositories.NewMemoryUserRepository(),
		nil,
	)

	router := gin.New()
	RegisterTodoRoutes(router, todoService, &stubAuthService{userID: userID})
	return router, todoService, userID
}

func doRequest(router *gin.Engine, method, path string, body []byte, authenticated bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(models.TodoCreateInput{
		Title:       "Write report",
		Description: "Quarterly numbers",
		DueDate:     "2025-06-01",
		Priority:    models.PriorityHigh,
	})
	assert.NoError(t, err)
	return body
}

func TestTodoRoutes_Unauthenticated(t *testing.T) {
	router, _, _ := setupTodoRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/todos", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTodoRoute(t *testing.T) {
	router, _, _ := setupTodoRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/todos", validCreateBody(t), true)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Todo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Write report", created.Title)
	assert.False(t, created.Completed)
}

func TestCreateTodoRoute_ValidationError(t *testing.T) {
	router, _, _ := setupTodoRouter(t)

	body, _ := json.Marshal(models.TodoCreateInput{
		Title:       "  ",
		Description: "Quarterly numbers",
		DueDate:     "2025-06-01",
		Priority:    models.PriorityHigh,
	})

	w := doRequest(router, http.MethodPost, "/api/v1/todos", body, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "title", response["field"])
}

func TestGetTodosRoute(t *testing.T) {
	router, todoService, userID := setupTodoRouter(t)

	for i := 0; i < 3; i++ {
		_, err := todoService.CreateTodo(userID, models.TodoCreateInput{
			Title:       "Task",
			Description: "d",
			DueDate:     "2025-06-01",
			Priority:    models.PriorityMedium,
		})
		assert.NoError(t, err)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/todos?page=1&limit=2", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var result models.PaginatedTodos
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Todos, 2)
	assert.Equal(t, int64(3), result.TotalCount)
	assert.GreaterOrEqual(t, result.TotalPages, 2)
}

func TestGetTodosRoute_InvalidQuery(t *testing.T) {
	router, _, _ := setupTodoRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/todos?limit=101", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "limit", response["field"])

	w = doRequest(router, http.MethodGet, "/api/v1/todos?page=abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/todos?page=0", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTodoByIDRoute_NotFound(t *testing.T) {
	router, _, _ := setupTodoRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/todos/"+uuid.NewString(), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTodoRoute(t *testing.T) {
	router, todoService, userID := setupTodoRouter(t)

	created, err := todoService.CreateTodo(userID, models.TodoCreateInput{
		Title:       "Old",
		Description: "d",
		DueDate:     "2025-06-01",
		Priority:    models.PriorityMedium,
	})
	assert.NoError(t, err)

	body := []byte(`{"title":"New"}`)
	w := doRequest(router, http.MethodPut, "/api/v1/todos/"+created.ID.String(), body, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Todo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "d", updated.Description)
}

func TestDeleteTodoRoute(t *testing.T) {
	router, todoService, userID := setupTodoRouter(t)

	created, err := todoService.CreateTodo(userID, models.TodoCreateInput{
		Title:       "Doomed",
		Description: "d",
		DueDate:     "2025-06-01",
		Priority:    models.PriorityMedium,
	})
	assert.NoError(t, err)

	w := doRequest(router, http.MethodDelete, "/api/v1/todos/"+created.ID.String(), nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/todos/"+created.ID.String(), nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleTodoRoute(t *testing.T) {
	router, todoService, userID := setupTodoRouter(t)

	created, err := todoService.CreateTodo(userID, models.TodoCreateInput{
		Title:       "Flip me",
		Description: "d",
		DueDate:     "2025-06-01",
		Priority:    models.PriorityMedium,
	})
	assert.NoError(t, err)

	w := doRequest(router, http.MethodPatch, "/api/v1/todos/"+created.ID.String()+"/toggle", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var toggled models.Todo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.True(t, toggled.Completed)

	w = doRequest(router, http.MethodPatch, "/api/v1/todos/"+uuid.NewString()+"/toggle", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
