package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mantw/mantw-cli/cmd"
	"github.com/mantw/mantw-cli/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		logging.Error(err.Error())
	}
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
