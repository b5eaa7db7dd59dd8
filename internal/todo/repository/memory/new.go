package memory

import (
	"sync"

	"todo-service/internal/model"
	"todo-service/internal/todo/repository"
	"todo-service/pkg/log"
)

// implRepository is a process-local Repository backed by a keyed map.
// State lives only for the lifetime of the process.
type implRepository struct {
	mu    sync.RWMutex
	todos map[string]model.TodoItem
	l     log.Logger
}

// New creates an empty in-memory Repository for the todo domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		todos: make(map[string]model.TodoItem),
		l:     l,
	}
}
