package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/eieluploader/internal/client/cli"
	"github.com/dmitrijs2005/eieluploader/internal/client/config"
	"github.com/dmitrijs2005/eieluploader/internal/flagx"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return cli.ExitUsage
	}

	logger := logging.New(os.Stderr, !term.IsTerminal(int(os.Stderr.Fd())), logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailed
	}
	defer app.Close()

	return app.Run(ctx, flagx.StripArgs(args, config.FlagNames))
}
