package http

import (
	"errors"
	"net/http"

	"todo-service/internal/model"
	"todo-service/internal/todo"
	pkgErrors "todo-service/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
	case errors.Is(err, model.ErrAlreadyCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, "todo is already completed")
	case errors.Is(err, todo.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	default:
		// Storage errors and anything unclassified stay opaque to clients.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
