package usecase

import (
	"context"

	"todo-service/internal/todo"
	repo "todo-service/internal/todo/repository"
)

// List returns every stored todo as-is.
func (uc *implUseCase) List(ctx context.Context) (todo.ListTodosOutput, error) {
	items, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListTodosOutput{}, err
	}

	return todo.ListTodosOutput{Todos: items}, nil
}
