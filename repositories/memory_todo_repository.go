package repositories

import (
	"sync"
	"time"

	"daylist-app/daylist/models"

	"github.com/google/uuid"
)

// MemoryTodoRepository keeps todos in an owned slice and answers queries
// with linear scans. It is a development and test backend; it takes a
// single mutex rather than attempting real concurrent-store semantics.
type MemoryTodoRepository struct {
	mu    sync.RWMutex
	todos []models.Todo
}

// NewMemoryTodoRepository copies seed into an owned collection, so callers
// keep no aliased handle on the repository's state.
func NewMemoryTodoRepository(seed []models.Todo) *MemoryTodoRepository {
	todos := make([]models.Todo, len(seed))
	copy(todos, seed)
	return &MemoryTodoRepository{todos: todos}
}

func (r *MemoryTodoRepository) CreateTodo(userID uuid.UUID, input models.TodoCreateInput) (models.Todo, error) {
	dueDate, err := models.ParseDate(input.DueDate)
	if err != nil {
		return models.Todo{}, err
	}

	now := time.Now().UTC()
	todo := models.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    input.Priority,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.todos = append(r.todos, todo)
	r.mu.Unlock()

	return todo, nil
}

func (r *MemoryTodoRepository) GetTodos(userID uuid.UUID, sort models.SortOptions, pagination models.PaginationOptions) (models.PaginatedTodos, error) {
	r.mu.RLock()
	var scoped []models.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			scoped = append(scoped, todo)
		}
	}
	r.mu.RUnlock()

	return PaginateTodos(SortTodos(scoped, sort), pagination), nil
}

func (r *MemoryTodoRepository) GetTodoByID(userID uuid.UUID, id string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, todo := range r.todos {
		if todo.UserID == userID && todo.ID.String() == id {
			found := todo
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryTodoRepository) UpdateTodo(userID uuid.UUID, id string, input models.TodoUpdateInput) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].UserID != userID || r.todos[i].ID.String() != id {
			continue
		}

		todo := &r.todos[i]
		if input.Title != nil {
			todo.Title = *input.Title
		}
		if input.Description != nil {
			todo.Description = *input.Description
		}
		if input.DueDate != nil {
			dueDate, err := models.ParseDate(*input.DueDate)
			if err != nil {
				return nil, err
			}
			todo.DueDate = dueDate
		}
		if input.Priority != nil {
			todo.Priority = *input.Priority
		}
		if input.Completed != nil {
			todo.Completed = *input.Completed
		}
		todo.UpdatedAt = time.Now().UTC()

		updated := *todo
		return &updated, nil
	}
	return nil, nil
}

func (r *MemoryTodoRepository) DeleteTodo(userID uuid.UUID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].UserID == userID && r.todos[i].ID.String() == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
