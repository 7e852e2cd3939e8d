package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pfrederiksen/isfdb-awards/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewCrawlCmd()
	cmd.Version = version
	code := cli.Execute(ctx, cmd)

	stop()
	os.Exit(code)
}
