package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/credkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/credkeeper/internal/client/cli"
	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	runLog := logger.With("run_id", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, runLog)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
