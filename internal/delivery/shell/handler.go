package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-todo-store/internal/models"
	"github.com/adanyl0v/go-todo-store/internal/services"
)

type Handler interface {
	// Serve reads commands from in line by line and writes the
	// results to out.
	//
	// It returns nil when the input ends or a quit command is read,
	// and the context error when ctx is done first.
	Serve(ctx context.Context, in io.Reader, out io.Writer) error

	// HandleLine runs a single command. Command failures are
	// written to out, so the only error it returns is ErrQuit.
	HandleLine(out io.Writer, line string) error
}

type handlerImpl struct {
	logger       zerolog.Logger
	todos        services.TodoService
	prompt       string
	defaultOrder models.Order
	timeFormat   string
}

func New(
	logger zerolog.Logger,
	todoService services.TodoService,
	prompt string,
	defaultOrder models.Order,
	timeFormat string,
) Handler {
	return &handlerImpl{
		logger:       logger,
		todos:        todoService,
		prompt:       prompt,
		defaultOrder: defaultOrder,
		timeFormat:   timeFormat,
	}
}

func (h *handlerImpl) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		h.writePrompt(out)

		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
					return nil
				default:
					return ctx.Err()
				}
			}

			err := h.HandleLine(out, line)
			if errors.Is(err, ErrQuit) {
				h.logger.Debug().Msg("quit requested")
				return nil
			}
		}
	}
}

func (h *handlerImpl) HandleLine(out io.Writer, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	cmd := h.newCommand(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}

		h.logger.Debug().
			Err(err).
			Str("line", line).
			Msg("command failed")
		fmt.Fprintf(out, "error: %v\n", err)
	}
	return nil
}

func (h *handlerImpl) writePrompt(out io.Writer) {
	if h.prompt == "" {
		return
	}
	fmt.Fprint(out, h.prompt+" ")
}

// newCommand builds a fresh command tree, since cobra keeps parsed
// flag values between executions.
func (h *handlerImpl) newCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Manage the todos of this session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(
		h.newAddCommand(),
		h.newUpdateCommand(),
		h.newSetCompletedCommand("done", "Mark a todo as completed", true),
		h.newSetCompletedCommand("undo", "Mark a todo as not completed", false),
		h.newRemoveCommand(),
		h.newGetCommand(),
		h.newListCommand(),
		h.newCompletedCommand(),
		h.newResetCommand(),
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "End the session",
			Args:    cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return ErrQuit
			},
		},
	)
	return root
}
