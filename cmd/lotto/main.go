package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fystack/lotto-analyzer/pkg/common/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
