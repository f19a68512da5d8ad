package shell

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/adanyl0v/go-todo-store/internal/models"
)

func (h *handlerImpl) render(out io.Writer, todos []*models.Todo) {
	if len(todos) == 0 {
		fmt.Fprintln(out, "no todos")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDONE\tCREATED\tUPDATED")
	for _, todo := range todos {
		done := "no"
		if todo.Completed {
			done = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			todo.ID,
			todo.Title,
			done,
			todo.CreatedAt.Format(h.timeFormat),
			todo.UpdatedAt.Format(h.timeFormat),
		)
	}

	err := tw.Flush()
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to flush table")
	}
}
