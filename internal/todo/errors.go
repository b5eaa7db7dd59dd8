package todo

import "errors"

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrEmptyTitle   = errors.New("title must not be empty")
)
