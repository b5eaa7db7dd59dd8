package repository

// GetOneTodoOptions holds filter parameters for fetching a single todo.
type GetOneTodoOptions struct {
	ID string
}

// ListTodosOptions holds filter parameters for listing todos.
// Completed, when set, restricts the result to matching items.
type ListTodosOptions struct {
	Completed *bool
}
