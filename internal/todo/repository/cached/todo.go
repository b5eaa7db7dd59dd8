package cached

import (
	"context"

	"todo-service/internal/model"
	repo "todo-service/internal/todo/repository"
)

// SaveTodo writes through to the backing store and refreshes the cache entry
// only on success, so the cache never holds state the store rejected.
func (r *implRepository) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	saved, err := r.next.SaveTodo(ctx, item)
	if err != nil {
		return model.TodoItem{}, err
	}
	r.cache.Add(saved.ID, saved)
	return saved, nil
}

// GetOneTodo serves cache hits directly and fills the cache on a miss that
// finds a row.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.TodoItem, error) {
	if item, ok := r.cache.Get(opt.ID); ok {
		return item, nil
	}

	item, err := r.next.GetOneTodo(ctx, opt)
	if err != nil {
		return model.TodoItem{}, err
	}
	if item.ID != "" {
		r.cache.Add(item.ID, item)
	}
	return item, nil
}

// ListTodos bypasses the cache: the LRU holds a subset and cannot answer a
// full scan.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.TodoItem, error) {
	return r.next.ListTodos(ctx, opt)
}
