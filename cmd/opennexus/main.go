package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/config"
	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/launcher"
)

// Version will be set at build time via -ldflags
var Version = ""

func main() {
	// Cancel an in-flight download on Ctrl-C so its temp file is removed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args, os.Stderr, launcher.Options{}); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the settings and launches the binary. Every argument is
// forwarded; the launcher defines no flags of its own.
func run(ctx context.Context, args []string, stderr io.Writer, opts launcher.Options) error {
	settings, err := config.Load(ctx, config.LoadOptions{
		Version: Version,
		Stderr:  stderr,
	})
	if err != nil {
		return err
	}

	l, err := launcher.New(settings, opts)
	if err != nil {
		return err
	}

	return l.Run(ctx, args)
}
