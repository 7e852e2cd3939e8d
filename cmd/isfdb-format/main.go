package main

import (
	"context"
	"os"

	"github.com/pfrederiksen/isfdb-awards/internal/cli"
)

var version = "dev"

func main() {
	cmd := cli.NewFormatCmd()
	cmd.Version = version
	os.Exit(cli.Execute(context.Background(), cmd))
}
