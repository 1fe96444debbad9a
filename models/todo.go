package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// Priority levels. Lower values sort first.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

const (
	SortByDueDate   = "dueDate"
	SortByPriority  = "priority"
	SortByCreatedAt = "createdAt"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Date is a calendar date stored as a native date column and transmitted
// as a YYYY-MM-DD string.
type Date struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

// Value implements the driver.Valuer interface for date column storage
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements the sql.Scanner interface for date column retrieval
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v}
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+DateLayout+`"`, string(data))
	if err != nil {
		return err
	}
	*d = Date{Time: t}
	return nil
}

type Todo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	DueDate     Date      `gorm:"type:date;not null" json:"due_date"`
	Priority    int       `gorm:"not null;default:2" json:"priority"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TodoCreateInput carries the caller-supplied fields for a new todo. The
// due date stays a string here; it is validated and converted at the
// storage boundary.
type TodoCreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    int    `json:"priority"`
}

// TodoUpdateInput is a partial update; nil fields are left untouched.
type TodoUpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type SortOptions struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type PaginationOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PaginatedTodos is the envelope returned by list operations.
type PaginatedTodos struct {
	Todos       []Todo `json:"todos"`
	TotalCount  int64  `json:"total_count"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}

func DefaultSortOptions() SortOptions {
	return SortOptions{SortBy: SortByDueDate, SortOrder: SortOrderAsc}
}

func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{Page: 1, Limit: 10}
}

func ValidSortBy(field string) bool {
	switch field {
	case SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

func ValidSortOrder(order string) bool {
	return order == SortOrderAsc || order == SortOrderDesc
}

func ValidPriority(priority int) bool {
	return priority == PriorityHigh || priority == PriorityMedium || priority == PriorityLow
}
