package repositories

import (
	"sort"

	"daylist-app/daylist/models"
)

// CompareTodos returns a negative value when a orders before b under the
// given sort options. Each primary field carries a fixed tie-break chain:
//
//	dueDate   -> priority asc -> createdAt desc
//	priority  -> dueDate asc  -> createdAt desc
//	createdAt -> dueDate asc  -> priority asc
//
// SortOrder desc negates the whole composite result, so tie-break
// directions invert along with the primary field. That is the contract;
// the relational backend reproduces it in its ORDER BY chain.
func CompareTodos(a, b models.Todo, opts models.SortOptions) int {
	var c int
	switch opts.SortBy {
	case models.SortByPriority:
		c = a.Priority - b.Priority
		if c == 0 {
			c = a.DueDate.Compare(b.DueDate)
			if c == 0 {
				c = b.CreatedAt.Compare(a.CreatedAt)
			}
		}
	case models.SortByCreatedAt:
		c = a.CreatedAt.Compare(b.CreatedAt)
		if c == 0 {
			c = a.DueDate.Compare(b.DueDate)
			if c == 0 {
				c = a.Priority - b.Priority
			}
		}
	default: // dueDate
		c = a.DueDate.Compare(b.DueDate)
		if c == 0 {
			c = a.Priority - b.Priority
			if c == 0 {
				c = b.CreatedAt.Compare(a.CreatedAt)
			}
		}
	}
	if opts.SortOrder == models.SortOrderDesc {
		c = -c
	}
	return c
}

// SortTodos returns a sorted copy; the input slice is left untouched.
func SortTodos(todos []models.Todo, opts models.SortOptions) []models.Todo {
	sorted := make([]models.Todo, len(todos))
	copy(sorted, todos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareTodos(sorted[i], sorted[j], opts) < 0
	})
	return sorted
}

// PaginateTodos slices out the requested page. Out-of-range pages yield an
// empty page, never an error.
func PaginateTodos(todos []models.Todo, opts models.PaginationOptions) models.PaginatedTodos {
	total := len(todos)

	start := (opts.Page - 1) * opts.Limit
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	totalPages := 0
	if opts.Limit > 0 {
		totalPages = (total + opts.Limit - 1) / opts.Limit
	}

	return models.PaginatedTodos{
		Todos:       todos[start:end],
		TotalCount:  int64(total),
		TotalPages:  totalPages,
		CurrentPage: opts.Page,
	}
}
