package cached

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"todo-service/internal/model"
	"todo-service/internal/todo/repository"
	"todo-service/pkg/log"
)

// implRepository is a read-through LRU cache in front of another Repository.
// Saves write through and refresh the cached entry; lookups by ID hit the
// cache first; listings always go to the backing store.
type implRepository struct {
	next  repository.Repository
	cache *lru.Cache[string, model.TodoItem]
	l     log.Logger
}

// New wraps next with an LRU cache of the given size.
func New(next repository.Repository, size int, l log.Logger) (repository.Repository, error) {
	if next == nil {
		panic("todo/repository/cached: next repository is required")
	}

	cache, err := lru.New[string, model.TodoItem](size)
	if err != nil {
		return nil, err
	}
	return &implRepository{next: next, cache: cache, l: l}, nil
}
