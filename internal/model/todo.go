package model

import (
	"errors"

	"github.com/google/uuid"
)

// ErrAlreadyCompleted is returned by MarkAsCompleted on an item that is
// already done. It is a domain-rule violation, not a storage failure.
var ErrAlreadyCompleted = errors.New("todo is already completed")

// TodoItem is the core domain entity. Values are immutable by convention:
// state changes go through methods that return a new value.
type TodoItem struct {
	ID        string
	Title     string
	Completed bool
}

// NewTodoItem constructs a fresh item with a generated ID and Completed=false.
func NewTodoItem(title string) TodoItem {
	return TodoItem{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
	}
}

// MarkAsCompleted returns a copy of the item with Completed set. The
// receiver is left untouched. Completing an already-completed item is a
// domain-rule violation and returns ErrAlreadyCompleted.
func (t TodoItem) MarkAsCompleted() (TodoItem, error) {
	if t.Completed {
		return TodoItem{}, ErrAlreadyCompleted
	}
	return TodoItem{
		ID:        t.ID,
		Title:     t.Title,
		Completed: true,
	}, nil
}
