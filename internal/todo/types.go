package todo

import "todo-service/internal/model"

// --- UseCase Inputs ---

type CreateTodoInput struct {
	Title string
}

// --- UseCase Outputs ---

type CreateTodoOutput struct {
	Todo model.TodoItem
}

type ListTodosOutput struct {
	Todos []model.TodoItem
}

type CompleteTodoOutput struct {
	Todo model.TodoItem
}
