// Package repomanager turns a Config into a ready-to-use kv.Repository,
// opening the selected backend and running its migrations.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountbook/internal/common"
	"github.com/dmitrijs2005/accountbook/internal/config"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv/memory"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv/postgres"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv/s3store"
	"github.com/dmitrijs2005/accountbook/internal/repositories/kv/sqlite"
)

// Backend constructors, replaceable in tests.
var (
	openSQLite = func(ctx context.Context, path string) (kv.Repository, error) {
		return sqlite.Open(ctx, path)
	}
	openPostgres = func(ctx context.Context, dsn string) (kv.Repository, error) {
		return postgres.Open(ctx, dsn)
	}
	openS3 = func(ctx context.Context, opts s3store.Options) (kv.Repository, error) {
		return s3store.Open(ctx, opts)
	}
)

// OpenKV opens the backend named by cfg.Backend. The caller owns the
// returned repository and must Close it.
func OpenKV(ctx context.Context, cfg *config.Config) (kv.Repository, error) {
	var (
		repo kv.Repository
		err  error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		repo, err = openSQLite(ctx, cfg.SQLitePath)
	case config.BackendPostgres:
		repo, err = openPostgres(ctx, cfg.DatabaseDSN)
	case config.BackendS3:
		repo, err = openS3(ctx, s3store.Options{
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.Backend)
	}

	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	return repo, nil
}
