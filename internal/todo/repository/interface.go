package repository

import (
	"context"

	"todo-service/internal/model"
)

// Repository is the storage contract for the todo domain. Backends are
// interchangeable: in-memory, sqlite, or a caching decorator over either.
type Repository interface {
	// SaveTodo persists the item keyed by ID, inserting or replacing as
	// needed, and returns the persisted value.
	SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error)
	// GetOneTodo retrieves a single item by the provided filters.
	// Returns zero-value TodoItem (ID == "") when not found — not-found
	// is not an error at this layer.
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (model.TodoItem, error)
	// ListTodos returns every stored item. Order is unspecified.
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.TodoItem, error)
}
