package sqlite

import (
	"context"
	"database/sql"

	"todo-service/internal/model"
	repo "todo-service/internal/todo/repository"
)

// SaveTodo upserts the item keyed by ID in a single statement, so each save
// is one implicit transaction.
func (r *implRepository) SaveTodo(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	const query = `
		INSERT INTO todos (id, title, completed)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, completed = excluded.completed`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Completed); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTodo"), err)
		return model.TodoItem{}, repo.ErrFailedToSave
	}
	return item, nil
}

// GetOneTodo retrieves a single item by ID.
// Returns zero-value TodoItem (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.TodoItem, error) {
	const query = `SELECT id, title, completed FROM todos WHERE id = ? LIMIT 1`

	var item model.TodoItem
	err := r.db.QueryRowContext(ctx, query, opt.ID).Scan(&item.ID, &item.Title, &item.Completed)
	if err == sql.ErrNoRows {
		return model.TodoItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.TodoItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListTodos maps every row back into entity values.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.TodoItem, error) {
	query := `SELECT id, title, completed FROM todos`
	var args []any
	if opt.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, *opt.Completed)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.TodoItem
	for rows.Next() {
		var item model.TodoItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Completed); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}
