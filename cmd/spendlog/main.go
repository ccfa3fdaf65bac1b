package main

import (
	"context"
	"fmt"
	"os"

	"spendlog/internal/backend"
	"spendlog/internal/cli"
	"spendlog/internal/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitError
	}
	logger := cli.SetupLogger(cfg, os.Stderr)

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.LogError(ctx, "Invalid backend configuration", err, log.OpStartup, log.ErrorTypeConfiguration, nil)
		return cli.ExitError
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.LogError(ctx, "Failed to initialize backend", err, log.OpStartup, log.ErrorTypeStorage,
			log.NewFields().WithBackend(cfg.DataBackend))
		return cli.ExitError
	}
	defer func() {
		if err := result.Close(); err != nil {
			logger.LogError(ctx, "Failed to close backend", err, log.OpShutdown, log.ErrorTypeStorage, nil)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, result.Store, logger)
	if err != nil {
		logger.LogError(ctx, "Failed to load data", err, log.OpLoad, log.ErrorTypeStorage, nil)
		return cli.ExitError
	}
	return app.Run(ctx, args)
}
