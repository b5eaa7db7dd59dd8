package usecase

import (
	"context"

	"todo-service/internal/todo"
	repo "todo-service/internal/todo/repository"
)

// Complete marks the todo with the given ID as done and persists the new
// value. Returns ErrTodoNotFound for an unknown ID and propagates
// model.ErrAlreadyCompleted untouched; in both cases stored state is
// unchanged.
func (uc *implUseCase) Complete(ctx context.Context, id string) (todo.CompleteTodoOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTodo: %v", err)
		return todo.CompleteTodoOutput{}, err
	}
	if existing.ID == "" {
		return todo.CompleteTodoOutput{}, todo.ErrTodoNotFound
	}

	completed, err := existing.MarkAsCompleted()
	if err != nil {
		return todo.CompleteTodoOutput{}, err
	}

	saved, err := uc.repo.SaveTodo(ctx, completed)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete SaveTodo: %v", err)
		return todo.CompleteTodoOutput{}, err
	}

	return todo.CompleteTodoOutput{Todo: saved}, nil
}
