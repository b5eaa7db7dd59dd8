package usecase

import (
	"context"
	"strings"

	"todo-service/internal/model"
	"todo-service/internal/todo"
)

// Create builds a new TodoItem and persists it.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return todo.CreateTodoOutput{}, todo.ErrEmptyTitle
	}

	item := model.NewTodoItem(input.Title)

	saved, err := uc.repo.SaveTodo(ctx, item)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create SaveTodo: %v", err)
		return todo.CreateTodoOutput{}, err
	}

	return todo.CreateTodoOutput{Todo: saved}, nil
}
