package main

import (
	"context"
	"fmt"
	"os"

	"github.com/adanyl0v/go-todo-store/internal/app"
)

var version = "dev"

func main() {
	app.InitDefaultLogger()

	err := app.NewRootCommand(version).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
