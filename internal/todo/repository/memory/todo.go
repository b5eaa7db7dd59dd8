package memory

import (
	"context"

	"todo-service/internal/model"
	repo "todo-service/internal/todo/repository"
)

// SaveTodo stores the item keyed by ID. An existing entry with the same ID
// is replaced wholesale (last write wins).
func (r *implRepository) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos[item.ID] = item
	return item, nil
}

// GetOneTodo returns the item with the given ID, or a zero-value item when
// absent.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.todos[opt.ID]
	if !ok {
		return model.TodoItem{}, nil
	}
	return item, nil
}

// ListTodos returns a snapshot of all stored items. Map iteration order
// applies, so callers must not rely on ordering.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.TodoItem, 0, len(r.todos))
	for _, item := range r.todos {
		if opt.Completed != nil && item.Completed != *opt.Completed {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
