package services_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"

	"github.com/adanyl0v/go-todo-store/internal/models"
	"github.com/adanyl0v/go-todo-store/internal/services"
)

var clockStart = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// newTestClock returns a clock that moves one second forward on every call.
func newTestClock() func() time.Time {
	var ticks int
	return func() time.Time {
		ticks++
		return clockStart.Add(time.Duration(ticks) * time.Second)
	}
}

func newTestService() services.TodoService {
	return services.NewTodoService(zerolog.Nop(), newTestClock())
}

func titles(todos []*models.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		out = append(out, todo.Title)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func TestTodoService_Init(t *testing.T) {
	t.Parallel()
	s := services.NewTodoService(zerolog.Nop(), nil)

	require.NotNil(t, s)
	assert.Equal(t, 0, len(s.Todos()))
}

func TestTodoService_AddTodo(t *testing.T) {
	t.Parallel()
	s := newTestService()

	for i, title := range []string{"test1", "test2", "test3"} {
		created := s.AddTodo(title)
		require.NotNil(t, created)

		todos := s.Todos()
		assert.Equal(t, i+1, len(todos))
		assert.Equal(t, title, todos[i].Title)
		assert.Equal(t, int64(i+1), created.ID)
		assert.Equal(t, false, created.Completed)
		assert.Assert(t, created.CreatedAt.Equal(created.UpdatedAt))
	}
}

func TestTodoService_AddTodo_DoesNotReuseIDs(t *testing.T) {
	t.Parallel()
	s := newTestService()

	first := s.AddTodo("first")
	second := s.AddTodo("second")
	require.True(t, s.RemoveTodo(first.ID))
	third := s.AddTodo("third")

	assert.Equal(t, int64(3), third.ID)
	assert.Assert(t, third.ID != second.ID)

	got, ok := s.GetTodoByID(second.ID)
	require.True(t, ok)
	assert.Equal(t, "second", got.Title)
}

func TestTodoService_UpdateTodo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setup         func(s services.TodoService) int64
		params        services.UpdateTodoParams
		wantFound     bool
		wantTitle     string
		wantCompleted bool
	}{
		{
			name: "title only",
			setup: func(s services.TodoService) int64 {
				return s.AddTodo("test").ID
			},
			params:        services.UpdateTodoParams{Title: ptr("test2")},
			wantFound:     true,
			wantTitle:     "test2",
			wantCompleted: false,
		},
		{
			name: "completed only",
			setup: func(s services.TodoService) int64 {
				return s.AddTodo("test").ID
			},
			params:        services.UpdateTodoParams{Completed: ptr(true)},
			wantFound:     true,
			wantTitle:     "test",
			wantCompleted: true,
		},
		{
			name: "clears completed",
			setup: func(s services.TodoService) int64 {
				id := s.AddTodo("test").ID
				s.UpdateTodo(id, services.UpdateTodoParams{Completed: ptr(true)})
				return id
			},
			params:        services.UpdateTodoParams{Completed: ptr(false)},
			wantFound:     true,
			wantTitle:     "test",
			wantCompleted: false,
		},
		{
			name: "clears title",
			setup: func(s services.TodoService) int64 {
				return s.AddTodo("test").ID
			},
			params:        services.UpdateTodoParams{Title: ptr("")},
			wantFound:     true,
			wantTitle:     "",
			wantCompleted: false,
		},
		{
			name: "no fields still touches update time",
			setup: func(s services.TodoService) int64 {
				return s.AddTodo("test").ID
			},
			params:        services.UpdateTodoParams{},
			wantFound:     true,
			wantTitle:     "test",
			wantCompleted: false,
		},
		{
			name: "unknown id",
			setup: func(s services.TodoService) int64 {
				s.AddTodo("test")
				return 42
			},
			params:    services.UpdateTodoParams{Title: ptr("nope")},
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newTestService()
			id := tc.setup(s)
			before, _ := s.GetTodoByID(id)

			updated, ok := s.UpdateTodo(id, tc.params)

			assert.Equal(t, tc.wantFound, ok)
			if !tc.wantFound {
				require.Nil(t, updated)
				assert.DeepEqual(t, []string{"test"}, titles(s.Todos()))
				return
			}

			require.NotNil(t, updated)
			got, found := s.GetTodoByID(id)
			require.True(t, found)
			assert.DeepEqual(t, updated, got)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, tc.wantTitle, got.Title)
			assert.Equal(t, tc.wantCompleted, got.Completed)
			assert.Assert(t, got.CreatedAt.Equal(before.CreatedAt), "creation time changed")
			assert.Assert(t, got.UpdatedAt.After(before.UpdatedAt), "update time not refreshed")
		})
	}
}

func TestTodoService_RemoveTodo(t *testing.T) {
	t.Parallel()
	s := newTestService()

	todo := s.AddTodo("test")
	require.True(t, s.RemoveTodo(todo.ID))

	_, ok := s.GetTodoByID(todo.ID)
	assert.Equal(t, false, ok)
	assert.Equal(t, 0, len(s.Todos()))

	assert.Equal(t, false, s.RemoveTodo(todo.ID))
}

func TestTodoService_RemoveTodo_KeepsOthersInOrder(t *testing.T) {
	t.Parallel()
	s := newTestService()

	s.AddTodo("test1")
	middle := s.AddTodo("test2")
	s.AddTodo("test3")

	require.True(t, s.RemoveTodo(middle.ID))
	assert.DeepEqual(t, []string{"test1", "test3"}, titles(s.Todos()))
}

func TestTodoService_GetTodoByID(t *testing.T) {
	t.Parallel()
	s := newTestService()

	s.AddTodo("test")
	todo := s.Todos()[0]

	found, ok := s.GetTodoByID(todo.ID)
	require.True(t, ok)
	assert.DeepEqual(t, todo, found)

	missing, ok := s.GetTodoByID(todo.ID + 1)
	assert.Equal(t, false, ok)
	require.Nil(t, missing)
}

func TestTodoService_ReturnsCopies(t *testing.T) {
	t.Parallel()
	s := newTestService()

	created := s.AddTodo("test")
	created.Title = "hacked"
	created.Completed = true

	got, ok := s.GetTodoByID(created.ID)
	require.True(t, ok)
	got.Title = "hacked again"

	for _, todo := range s.Todos() {
		assert.Equal(t, "test", todo.Title)
		assert.Equal(t, false, todo.Completed)
	}
	assert.Equal(t, 0, len(s.GetCompletedTodos()))
}

func TestTodoService_GetOrderedTodos(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		order models.Order
		want  []string
	}{
		{name: "default", order: "", want: []string{"test3", "test2", "test1"}},
		{name: "newest", order: models.OrderNewest, want: []string{"test3", "test2", "test1"}},
		{name: "oldest", order: models.OrderOldest, want: []string{"test1", "test2", "test3"}},
		{name: "invalid order", order: "invalidOrder", want: []string{"test1", "test2", "test3"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newTestService()
			s.AddTodo("test1")
			s.AddTodo("test2")
			s.AddTodo("test3")
			stored := s.Todos()

			ordered := s.GetOrderedTodos(tc.order)

			assert.DeepEqual(t, tc.want, titles(ordered))
			assert.DeepEqual(t, stored, s.Todos())
		})
	}
}

func TestTodoService_GetOrderedTodos_IsMonotonic(t *testing.T) {
	t.Parallel()
	s := newTestService()
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		s.AddTodo(title)
	}
	s.RemoveTodo(2)
	s.AddTodo("f")

	newest := s.GetOrderedTodos(models.OrderNewest)
	for i := 1; i < len(newest); i++ {
		assert.Assert(t, !newest[i].CreatedAt.After(newest[i-1].CreatedAt))
	}

	oldest := s.GetOrderedTodos(models.OrderOldest)
	for i := 1; i < len(oldest); i++ {
		assert.Assert(t, !oldest[i].CreatedAt.Before(oldest[i-1].CreatedAt))
	}

	assert.DeepEqual(t, titles(s.Todos()), titles(s.GetOrderedTodos("bogus")))
}

func TestTodoService_GetCompletedTodos(t *testing.T) {
	t.Parallel()
	s := newTestService()

	first := s.AddTodo("test1")
	s.AddTodo("test2")
	s.UpdateTodo(first.ID, services.UpdateTodoParams{Completed: ptr(true)})

	completed := s.GetCompletedTodos()

	require.Len(t, completed, 1)
	assert.Equal(t, "test1", completed[0].Title)
	assert.Equal(t, true, completed[0].Completed)
	assert.Equal(t, 2, len(s.Todos()))
}

func TestTodoService_Reset(t *testing.T) {
	t.Parallel()
	s := newTestService()

	s.AddTodo("test1")
	s.AddTodo("test2")
	s.Reset()

	assert.Equal(t, 0, len(s.Todos()))
	assert.Equal(t, int64(1), s.AddTodo("again").ID)
}
