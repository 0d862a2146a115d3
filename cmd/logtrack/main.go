package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/songminj/logtrack/protocol"
	"github.com/songminj/logtrack/utils/logger"
	"github.com/songminj/logtrack/utils/safego"
)

func main() {
	defer safego.Recovery(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := protocol.Execute(ctx); err != nil {
		stop()
		logger.Fatal(err)
	}
}
