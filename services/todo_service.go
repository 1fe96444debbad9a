package services

import (
	"log"
	"strings"

	"daylist-app/daylist/broker"
	"daylist-app/daylist/models"
	"daylist-app/daylist/repositories"

	"github.com/google/uuid"
)

type TodoServiceInterface interface {
	CreateTodo(userID uuid.UUID, input models.TodoCreateInput) (models.Todo, error)
	GetTodos(userID uuid.UUID, sort models.SortOptions, pagination models.PaginationOptions) (models.PaginatedTodos, error)
	GetTodoByID(userID uuid.UUID, id string) (*models.Todo, error)
	UpdateTodo(userID uuid.UUID, id string, input models.TodoUpdateInput) (*models.Todo, error)
	DeleteTodo(userID uuid.UUID, id string) (bool, error)
	ToggleTodoCompletion(userID uuid.UUID, id string) (*models.Todo, error)
}

// TodoService guards every repository call with validation. It owns no
// storage; all reads and writes go through the injected repositories.
type TodoService struct {
	todos    repositories.TodoRepository
	users    repositories.UserRepository
	producer *broker.Producer
}

func NewTodoService(todos repositories.TodoRepository, users repositories.UserRepository, producer *broker.Producer) *TodoService {
	return &TodoService{todos: todos, users: users, producer: producer}
}

func (s *TodoService) CreateTodo(userID uuid.UUID, input models.TodoCreateInput) (models.Todo, error) {
	if userID == uuid.Nil {
		return models.Todo{}, NewValidationError("userId", "user id is required")
	}
	if err := validateCreateInput(input); err != nil {
		return models.Todo{}, err
	}
	if err := s.users.EnsureUser(userID); err != nil {
		return models.Todo{}, err
	}

	todo, err := s.todos.CreateTodo(userID, input)
	if err != nil {
		return models.Todo{}, err
	}

	s.publish(broker.TodoCreated, todo)
	return todo, nil
}

func (s *TodoService) GetTodos(userID uuid.UUID, sort models.SortOptions, pagination models.PaginationOptions) (models.PaginatedTodos, error) {
	if userID == uuid.Nil {
		return models.PaginatedTodos{}, NewValidationError("userId", "user id is required")
	}

	if sort == (models.SortOptions{}) {
		sort = models.DefaultSortOptions()
	}
	if pagination == (models.PaginationOptions{}) {
		pagination = models.DefaultPaginationOptions()
	}

	if !models.ValidSortBy(sort.SortBy) {
		return models.PaginatedTodos{}, NewValidationError("sortBy", "invalid sort field")
	}
	if !models.ValidSortOrder(sort.SortOrder) {
		return models.PaginatedTodos{}, NewValidationError("sortOrder", "invalid sort order")
	}
	if pagination.Page < 1 {
		return models.PaginatedTodos{}, NewValidationError("page", "page must be greater than 0")
	}
	if pagination.Limit < 1 || pagination.Limit > 100 {
		return models.PaginatedTodos{}, NewValidationError("limit", "limit must be between 1 and 100")
	}

	if err := s.users.EnsureUser(userID); err != nil {
		return models.PaginatedTodos{}, err
	}

	return s.todos.GetTodos(userID, sort, pagination)
}

func (s *TodoService) GetTodoByID(userID uuid.UUID, id string) (*models.Todo, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "id is required")
	}
	return s.todos.GetTodoByID(userID, id)
}

func (s *TodoService) UpdateTodo(userID uuid.UUID, id string, input models.TodoUpdateInput) (*models.Todo, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "id is required")
	}
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	todo, err := s.todos.UpdateTodo(userID, id, input)
	if err != nil || todo == nil {
		return nil, err
	}

	s.publish(broker.TodoUpdated, *todo)
	return todo, nil
}

func (s *TodoService) DeleteTodo(userID uuid.UUID, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, NewValidationError("id", "id is required")
	}

	deleted, err := s.todos.DeleteTodo(userID, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.publishDeleted(userID, id)
	}
	return deleted, nil
}

// ToggleTodoCompletion flips the completed flag. An absent todo stays an
// absent result; the update path is never entered for it.
func (s *TodoService) ToggleTodoCompletion(userID uuid.UUID, id string) (*models.Todo, error) {
	todo, err := s.GetTodoByID(userID, id)
	if err != nil || todo == nil {
		return nil, err
	}

	completed := !todo.Completed
	return s.UpdateTodo(userID, id, models.TodoUpdateInput{Completed: &completed})
}

func validateCreateInput(input models.TodoCreateInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return NewValidationError("description", "description is required")
	}
	if input.DueDate == "" {
		return NewValidationError("dueDate", "due date is required")
	}
	if _, err := models.ParseDate(input.DueDate); err != nil {
		return NewValidationError("dueDate", "due date must be in YYYY-MM-DD format")
	}
	if !models.ValidPriority(input.Priority) {
		return NewValidationError("priority", "priority must be 1, 2, or 3")
	}
	return nil
}

// validateUpdateInput revalidates any present field with the create-time
// rules. Absent fields are left untouched.
func validateUpdateInput(input models.TodoUpdateInput) error {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return NewValidationError("title", "title cannot be empty")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return NewValidationError("description", "description cannot be empty")
	}
	if input.DueDate != nil {
		if _, err := models.ParseDate(*input.DueDate); err != nil {
			return NewValidationError("dueDate", "due date must be in YYYY-MM-DD format")
		}
	}
	if input.Priority != nil && !models.ValidPriority(*input.Priority) {
		return NewValidationError("priority", "priority must be 1, 2, or 3")
	}
	return nil
}

func (s *TodoService) publish(eventType broker.EventType, todo models.Todo) {
	if s.producer == nil {
		return
	}

	event, err := broker.NewEvent(eventType, todo.UserID.String(), todo)
	if err != nil {
		log.Printf("Failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.producer.Publish(broker.TodoEventsSubject, event); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

func (s *TodoService) publishDeleted(userID uuid.UUID, id string) {
	if s.producer == nil {
		return
	}

	event, err := broker.NewEvent(broker.TodoDeleted, userID.String(), map[string]interface{}{
		"todo_id": id,
	})
	if err != nil {
		log.Printf("Failed to build %s event: %v", broker.TodoDeleted, err)
		return
	}
	if err := s.producer.Publish(broker.TodoEventsSubject, event); err != nil {
		log.Printf("Failed to publish %s event: %v", broker.TodoDeleted, err)
	}
}
