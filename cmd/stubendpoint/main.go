package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dmitrijs2005/eieluploader/internal/filex"
	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"github.com/dmitrijs2005/eieluploader/internal/stubendpoint"
	"github.com/dmitrijs2005/eieluploader/internal/stubendpoint/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, true, logging.ParseLevel("info"))

	dir := cfg.Dir
	if filepath.IsAbs(dir) {
		err = os.MkdirAll(dir, 0o770)
	} else {
		dir, err = filex.EnsureSubdDir(dir)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	err = stubendpoint.NewApp(cfg, dir, logger).Run(ctx)
	stop()

	if err != nil {
		log.Fatalf("%v", err)
	}
}
