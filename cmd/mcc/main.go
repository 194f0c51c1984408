package main

import (
	"context"
	"os"

	"github.com/skillcoder/minecraft-compose/internal/cli"
	"github.com/skillcoder/minecraft-compose/internal/infra/shutdown"
)

func main() {
	// Subscribe before anything else so an early Ctrl-C is not lost.
	signals := shutdown.Notify()

	os.Exit(cli.Execute(context.Background(), signals, os.Args[1:]))
}
