package http

import (
	"todo-service/internal/model"
	"todo-service/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() todo.CreateTodoInput {
	return todo.CreateTodoInput{
		Title: r.Title,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func newTodoResp(item model.TodoItem) todoResp {
	return todoResp{
		ID:        item.ID,
		Title:     item.Title,
		Completed: item.Completed,
	}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func newListResp(out todo.ListTodosOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, item := range out.Todos {
		todos[i] = newTodoResp(item)
	}
	return listResp{
		Todos: todos,
		Total: len(todos),
	}
}
