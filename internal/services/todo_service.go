package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-store/internal/models"
)

type todoServiceImpl struct {
	logger zerolog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	todos  []models.Todo
	lastID int64
}

var _ TodoService = (*todoServiceImpl)(nil)

func NewTodoService(
	logger zerolog.Logger,
	now func() time.Time,
) TodoService {
	if now == nil {
		now = time.Now
	}

	return &todoServiceImpl{
		logger: logger.With().
			Str("store_id", uuid.NewString()).
			Logger(),
		now:   now,
		todos: make([]models.Todo, 0),
	}
}

func (s *todoServiceImpl) AddTodo(title string) *models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastID++
	todo := models.Todo{
		ID:        s.lastID,
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.todos = append(s.todos, todo)
	s.logger.Debug().
		Int64("todo_id", todo.ID).
		Int("count", len(s.todos)).
		Msg("appended todo")

	s.logger.Info().
		Int64("todo_id", todo.ID).
		Msg("created todo")
	return &todo
}

func (s *todoServiceImpl) UpdateTodo(id int64, params UpdateTodoParams) (*models.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		s.logger.Warn().
			Int64("todo_id", id).
			Msg("todo not found")
		return nil, false
	}

	todo := s.todos[i]
	if params.Title != nil {
		todo.Title = *params.Title
	}
	if params.Completed != nil {
		todo.Completed = *params.Completed
	}
	todo.UpdatedAt = s.now()
	s.todos[i] = todo
	s.logger.Debug().
		Int64("todo_id", id).
		Bool("title_changed", params.Title != nil).
		Bool("completed_changed", params.Completed != nil).
		Msg("replaced todo")

	s.logger.Info().
		Int64("todo_id", id).
		Msg("updated todo")
	return &todo, true
}

func (s *todoServiceImpl) RemoveTodo(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		s.logger.Warn().
			Int64("todo_id", id).
			Msg("todo not found")
		return false
	}

	s.todos = slices.Delete(s.todos, i, i+1)
	s.logger.Debug().
		Int64("todo_id", id).
		Int("count", len(s.todos)).
		Msg("spliced todo")

	s.logger.Info().
		Int64("todo_id", id).
		Msg("removed todo")
	return true
}

func (s *todoServiceImpl) GetTodoByID(id int64) (*models.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		s.logger.Debug().
			Int64("todo_id", id).
			Msg("todo not found")
		return nil, false
	}

	todo := s.todos[i]
	return &todo, true
}

func (s *todoServiceImpl) GetOrderedTodos(order models.Order) []*models.Todo {
	if order == "" {
		order = models.OrderNewest
	}

	s.mu.RLock()
	todos := s.copyTodos(func(models.Todo) bool { return true })
	s.mu.RUnlock()

	switch order {
	case models.OrderNewest:
		slices.SortStableFunc(todos, func(a, b *models.Todo) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case models.OrderOldest:
		slices.SortStableFunc(todos, func(a, b *models.Todo) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	default:
		s.logger.Debug().
			Str("order", string(order)).
			Msg("unknown order, keeping stored order")
	}

	s.logger.Debug().
		Str("order", string(order)).
		Int("count", len(todos)).
		Msg("ordered todos")
	return todos
}

func (s *todoServiceImpl) GetCompletedTodos() []*models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyTodos(func(todo models.Todo) bool {
		return todo.Completed
	})
}

func (s *todoServiceImpl) Todos() []*models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyTodos(func(models.Todo) bool { return true })
}

func (s *todoServiceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.todos)
	s.todos = make([]models.Todo, 0)
	s.lastID = 0

	s.logger.Info().
		Int("count", count).
		Msg("reset todos")
}

// indexOf must be called with s.mu held.
func (s *todoServiceImpl) indexOf(id int64) int {
	return slices.IndexFunc(s.todos, func(todo models.Todo) bool {
		return todo.ID == id
	})
}

// copyTodos must be called with s.mu held.
func (s *todoServiceImpl) copyTodos(keep func(models.Todo) bool) []*models.Todo {
	todos := make([]*models.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		todo := todo
		if keep(todo) {
			todos = append(todos, &todo)
		}
	}
	return todos
}
