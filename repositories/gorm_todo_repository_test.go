package repositories

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"daylist-app/daylist/models"
	"daylist-app/daylist/testutils"
)

func TestOrderClause(t *testing.T) {
	testCases := []struct {
		name string
		opts models.SortOptions
		want string
	}{
		{
			name: "Due date ascending",
			opts: models.SortOptions{SortBy: models.SortByDueDate, SortOrder: models.SortOrderAsc},
			want: "due_date ASC, priority ASC, created_at DESC",
		},
		{
			name: "Due date descending inverts the whole chain",
			opts: models.SortOptions{SortBy: models.SortByDueDate, SortOrder: models.SortOrderDesc},
			want: "due_date DESC, priority DESC, created_at ASC",
		},
		{
			name: "Priority ascending",
			opts: models.SortOptions{SortBy: models.SortByPriority, SortOrder: models.SortOrderAsc},
			want: "priority ASC, due_date ASC, created_at DESC",
		},
		{
			name: "Priority descending",
			opts: models.SortOptions{SortBy: models.SortByPriority, SortOrder: models.SortOrderDesc},
			want: "priority DESC, due_date DESC, created_at ASC",
		},
		{
			name: "Created at ascending",
			opts: models.SortOptions{SortBy: models.SortByCreatedAt, SortOrder: models.SortOrderAsc},
			want: "created_at ASC, due_date ASC, priority ASC",
		},
		{
			name: "Created at descending",
			opts: models.SortOptions{SortBy: models.SortByCreatedAt, SortOrder: models.SortOrderDesc},
			want: "created_at DESC, due_date DESC, priority DESC",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.opts))
		})
	}
}

func TestGormGetTodoByID_NotFound(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	userID := uuid.New()
	todoID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = (.+) AND user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewGormTodoRepository(db)
	todo, err := repo.GetTodoByID(userID, todoID.String())
	assert.NoError(t, err)
	assert.Nil(t, todo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGetTodoByID_Found(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	userID := uuid.New()
	todoID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "due_date", "priority", "completed", "created_at", "updated_at"}).
		AddRow(todoID.String(), userID.String(), "Buy milk", "2 liters", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = (.+) AND user_id = (.+)`).
		WillReturnRows(rows)

	repo := NewGormTodoRepository(db)
	todo, err := repo.GetTodoByID(userID, todoID.String())
	assert.NoError(t, err)
	assert.NotNil(t, todo)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2025-06-01", todo.DueDate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGetTodos(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "todos" WHERE user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "due_date", "priority", "completed", "created_at", "updated_at"}).
		AddRow(uuid.NewString(), userID.String(), "First", "d", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 2, false, now, now).
		AddRow(uuid.NewString(), userID.String(), "Second", "d", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 2, false, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE user_id = (.+) ORDER BY due_date ASC, priority ASC, created_at DESC LIMIT (.+) OFFSET (.+)`).
		WillReturnRows(rows)

	repo := NewGormTodoRepository(db)
	result, err := repo.GetTodos(userID,
		models.SortOptions{SortBy: models.SortByDueDate, SortOrder: models.SortOrderAsc},
		models.PaginationOptions{Page: 2, Limit: 2})

	assert.NoError(t, err)
	assert.Len(t, result.Todos, 2)
	assert.Equal(t, int64(7), result.TotalCount)
	assert.Equal(t, 4, result.TotalPages)
	assert.Equal(t, 2, result.CurrentPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeleteTodo(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	userID := uuid.New()
	todoID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE id = (.+) AND user_id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewGormTodoRepository(db)
	deleted, err := repo.DeleteTodo(userID, todoID.String())
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeleteTodo_Absent(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "todos" WHERE id = (.+) AND user_id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewGormTodoRepository(db)
	deleted, err := repo.DeleteTodo(uuid.New(), uuid.NewString())
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUpdateTodo_Absent(t *testing.T) {
	db, mock, cleanup := testutils.SetupMockDB()
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "todos" WHERE id = (.+) AND user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewGormTodoRepository(db)
	title := "Updated"
	todo, err := repo.UpdateTodo(uuid.New(), uuid.NewString(), models.TodoUpdateInput{Title: &title})
	assert.NoError(t, err)
	assert.Nil(t, todo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
