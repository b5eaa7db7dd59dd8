package todo

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create builds a new todo and persists it.
	Create(ctx context.Context, input CreateTodoInput) (CreateTodoOutput, error)
	// List returns every stored todo. Order is unspecified.
	List(ctx context.Context) (ListTodosOutput, error)
	// Complete marks the todo with the given ID as done.
	Complete(ctx context.Context, id string) (CompleteTodoOutput, error)
}
