package repositories

import (
	"fmt"

	"daylist-app/daylist/config"
	"daylist-app/daylist/database"
	"daylist-app/daylist/models"

	"github.com/google/uuid"
)

// TodoRepository is the storage contract for todos, scoped by owner.
// Absent records are reported as nil results, not errors.
type TodoRepository interface {
	CreateTodo(userID uuid.UUID, input models.TodoCreateInput) (models.Todo, error)
	GetTodos(userID uuid.UUID, sort models.SortOptions, pagination models.PaginationOptions) (models.PaginatedTodos, error)
	GetTodoByID(userID uuid.UUID, id string) (*models.Todo, error)
	UpdateTodo(userID uuid.UUID, id string, input models.TodoUpdateInput) (*models.Todo, error)
	DeleteTodo(userID uuid.UUID, id string) (bool, error)
}

type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	// EnsureUser creates the account record for id if it does not exist yet.
	EnsureUser(id uuid.UUID) error
}

type Repositories struct {
	Todos TodoRepository
	Users UserRepository
}

// New selects the storage backend from the configured data source. The
// database handle is required for the relational backends and ignored by
// the in-memory one.
func New(cfg config.Config, db *database.Database) (Repositories, error) {
	switch cfg.DataSource {
	case config.DataSourceMemory:
		return Repositories{
			Todos: NewMemoryTodoRepository(nil),
			Users: NewMemoryUserRepository(),
		}, nil
	case config.DataSourcePostgres, config.DataSourceSQLite:
		if db == nil {
			return Repositories{}, fmt.Errorf("data source %q requires a database connection", cfg.DataSource)
		}
		return Repositories{
			Todos: NewGormTodoRepository(db),
			Users: NewGormUserRepository(db),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unsupported data source: %q", cfg.DataSource)
	}
}
