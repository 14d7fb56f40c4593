package main

import (
	"log/slog"
	"os"

	"github.com/mmynk/petlinks/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
