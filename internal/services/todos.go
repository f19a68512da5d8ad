package services

import "github.com/adanyl0v/go-todo-store/internal/models"

type TodoService interface {
	// AddTodo appends a new uncompleted todo with the given title.
	//
	// The todo gets the next id from the store's counter, so ids
	// are never reused after deletions. It returns a copy of the
	// created todo.
	AddTodo(title string) *models.Todo

	// UpdateTodo applies the non-nil fields of params to the todo
	// with the given id and refreshes its update time.
	//
	// A nil field is left untouched, while an empty title or a false
	// completion flag is applied as is. It returns false if the todo
	// with the given id doesn't exist.
	UpdateTodo(id int64, params UpdateTodoParams) (*models.Todo, bool)

	// RemoveTodo deletes the todo with the given id.
	//
	// It returns false if the todo with the given id doesn't exist.
	RemoveTodo(id int64) bool

	GetTodoByID(id int64) (*models.Todo, bool)

	// GetOrderedTodos returns all todos sorted by creation time,
	// newest first for models.OrderNewest (also used for an empty
	// order) and oldest first for models.OrderOldest. Any other
	// order returns the todos as they are stored.
	//
	// The stored order is never changed.
	GetOrderedTodos(order models.Order) []*models.Todo

	GetCompletedTodos() []*models.Todo

	// Todos returns all todos in the stored order.
	Todos() []*models.Todo

	// Reset removes all todos and restarts the id counter.
	Reset()
}

type UpdateTodoParams struct {
	Title     *string
	Completed *bool
}
