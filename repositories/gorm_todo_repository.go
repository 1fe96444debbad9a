package repositories

import (
	"errors"
	"strings"
	"time"

	"daylist-app/daylist/database"
	"daylist-app/daylist/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTodoRepository translates the todo storage contract into filtered,
// ordered, offset-limit queries against the relational store. Date values
// cross the boundary through the models.Date scanner/valuer, so the store
// keeps a native date column while the wire format stays YYYY-MM-DD.
type GormTodoRepository struct {
	db *database.Database
}

func NewGormTodoRepository(db *database.Database) *GormTodoRepository {
	return &GormTodoRepository{db: db}
}

func (r *GormTodoRepository) CreateTodo(userID uuid.UUID, input models.TodoCreateInput) (models.Todo, error) {
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

	if err := r.db.DB.Create(&todo).Error; err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (r *GormTodoRepository) GetTodos(userID uuid.UUID, sort models.SortOptions, pagination models.PaginationOptions) (models.PaginatedTodos, error) {
	var totalCount int64
	if err := r.db.DB.Model(&models.Todo{}).Where("user_id = ?", userID).Count(&totalCount).Error; err != nil {
		return models.PaginatedTodos{}, err
	}

	var todos []models.Todo
	err := r.db.DB.
		Where("user_id = ?", userID).
		Order(orderClause(sort)).
		Offset((pagination.Page - 1) * pagination.Limit).
		Limit(pagination.Limit).
		Find(&todos).Error
	if err != nil {
		return models.PaginatedTodos{}, err
	}

	totalPages := 0
	if pagination.Limit > 0 {
		totalPages = int((totalCount + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	}

	return models.PaginatedTodos{
		Todos:       todos,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: pagination.Page,
	}, nil
}

func (r *GormTodoRepository) GetTodoByID(userID uuid.UUID, id string) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.DB.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *GormTodoRepository) UpdateTodo(userID uuid.UUID, id string, input models.TodoUpdateInput) (*models.Todo, error) {
	existing, err := r.GetTodoByID(userID, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DueDate != nil {
		dueDate, err := models.ParseDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		updates["due_date"] = dueDate
	}
	if input.Priority != nil {
		updates["priority"] = *input.Priority
	}
	if input.Completed != nil {
		updates["completed"] = *input.Completed
	}

	err = r.db.DB.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return r.GetTodoByID(userID, id)
}

func (r *GormTodoRepository) DeleteTodo(userID uuid.UUID, id string) (bool, error) {
	result := r.db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// orderClause builds the ORDER BY chain matching CompareTodos, including
// the full tie-break inversion under desc.
func orderClause(opts models.SortOptions) string {
	type key struct {
		column string
		desc   bool
	}

	var chain []key
	switch opts.SortBy {
	case models.SortByPriority:
		chain = []key{{"priority", false}, {"due_date", false}, {"created_at", true}}
	case models.SortByCreatedAt:
		chain = []key{{"created_at", false}, {"due_date", false}, {"priority", false}}
	default:
		chain = []key{{"due_date", false}, {"priority", false}, {"created_at", true}}
	}

	invert := opts.SortOrder == models.SortOrderDesc
	parts := make([]string, 0, len(chain))
	for _, k := range chain {
		desc := k.desc != invert
		if desc {
			parts = append(parts, k.column+" DESC")
		} else {
			parts = append(parts, k.column+" ASC")
		}
	}
	return strings.Join(parts, ", ")
}
