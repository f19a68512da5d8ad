package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/adanyl0v/go-todo-store/internal/delivery/shell"
	"github.com/adanyl0v/go-todo-store/internal/models"
	"github.com/adanyl0v/go-todo-store/internal/services"
)

// RunShell serves one shell session until the input ends, the user
// quits or the process receives SIGINT or SIGTERM.
func RunShell(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shellCfg := globalConfig.Shell
	todoService := services.NewTodoService(globalLogger, nil)
	handler := shell.New(
		globalLogger,
		todoService,
		shellCfg.Prompt,
		models.Order(shellCfg.DefaultOrder),
		shellCfg.TimeFormat,
	)

	globalLogger.Info().
		Str("prompt", shellCfg.Prompt).
		Str("default_order", shellCfg.DefaultOrder).
		Msg("starting shell session")

	err := handler.Serve(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		globalLogger.Error().
			Err(err).
			Msg("shell session failed")
		return err
	}

	globalLogger.Info().
		Int("todos", len(todoService.Todos())).
		Msg("shell session ended")
	return nil
}
