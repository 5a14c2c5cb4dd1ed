package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/accountbook/internal/accounts"
	"github.com/dmitrijs2005/accountbook/internal/buildinfo"
	"github.com/dmitrijs2005/accountbook/internal/cli"
	"github.com/dmitrijs2005/accountbook/internal/config"
	"github.com/dmitrijs2005/accountbook/internal/logging"
	"github.com/dmitrijs2005/accountbook/internal/repositories/repomanager"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer z.Sync()
	}

	openCtx, cancel := context.WithTimeout(ctx, cfg.StorageTimeout)
	repo, err := repomanager.OpenKV(openCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("%v", err)
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.StorageTimeout)
	store, err := accounts.New(loadCtx, accounts.NewKVPersister(repo, accounts.Key(cfg.StorageNamespace)), accounts.WithLogger(logger))
	cancel()
	if err != nil {
		repo.Close()
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			logger.Error(ctx, "close store", "error", err)
		}
	}()

	app, err := cli.NewApp(store, accounts.NewCatalog(repo), cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
