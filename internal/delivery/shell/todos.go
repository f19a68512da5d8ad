package shell

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-todo-store/internal/models"
	"github.com/adanyl0v/go-todo-store/internal/services"
)

func (h *handlerImpl) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return errTitleRequired
			}

			todo := h.todos.AddTodo(title)
			fmt.Fprintf(cmd.OutOrStdout(), "added todo %d\n", todo.ID)
			return nil
		},
	}
}

func (h *handlerImpl) newUpdateCommand() *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "update <id> [title...] [--completed=true|false]",
		Short: "Change the title or completion of a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var params services.UpdateTodoParams
			if len(args) > 1 {
				title := strings.Join(args[1:], " ")
				params.Title = &title
			}
			if cmd.Flags().Changed("completed") {
				params.Completed = &completed
			}

			h.update(cmd, id, params)
			return nil
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "set the completion flag")
	return cmd
}

func (h *handlerImpl) newSetCompletedCommand(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			h.update(cmd, id, services.UpdateTodoParams{Completed: &completed})
			return nil
		},
	}
}

func (h *handlerImpl) update(cmd *cobra.Command, id int64, params services.UpdateTodoParams) {
	todo, ok := h.todos.UpdateTodo(id, params)
	if !ok {
		writeNotFound(cmd, id)
		return
	}
	h.render(cmd.OutOrStdout(), []*models.Todo{todo})
}

func (h *handlerImpl) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !h.todos.RemoveTodo(id) {
				writeNotFound(cmd, id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed todo %d\n", id)
			return nil
		},
	}
}

func (h *handlerImpl) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			todo, ok := h.todos.GetTodoByID(id)
			if !ok {
				writeNotFound(cmd, id)
				return nil
			}
			h.render(cmd.OutOrStdout(), []*models.Todo{todo})
			return nil
		},
	}
}

func (h *handlerImpl) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [newest|oldest|stored]",
		Short: "List all todos by creation time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := h.defaultOrder
			if len(args) == 1 {
				order = models.Order(args[0])
			}

			h.render(cmd.OutOrStdout(), h.todos.GetOrderedTodos(order))
			return nil
		},
	}
}

func (h *handlerImpl) newCompletedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completed",
		Short: "List completed todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h.render(cmd.OutOrStdout(), h.todos.GetCompletedTodos())
			return nil
		},
	}
}

func (h *handlerImpl) newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove all todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h.todos.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "removed all todos")
			return nil
		},
	}
}

func writeNotFound(cmd *cobra.Command, id int64) {
	fmt.Fprintf(cmd.OutOrStdout(), "todo %d not found\n", id)
}
