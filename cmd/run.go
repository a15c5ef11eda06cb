package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathsprint/internal/app"
	"github.com/abhisek/mathsprint/internal/config"
	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/store"
	"github.com/abhisek/mathsprint/internal/store/redisstore"
)

// deps holds the dependencies shared by every command.
type deps struct {
	cfg     config.Config
	logger  *zap.Logger
	history *store.History
	closers []func() error
}

// setup loads config, builds the logger, opens the record store and
// hydrates the history. Callers must Close the result.
func setup(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	rt := &deps{cfg: cfg, logger: logger}

	blobs, closeFn, err := openBlobStore(cmd.Context(), cfg.Store)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	if closeFn != nil {
		rt.closers = append(rt.closers, closeFn)
	}

	rt.history = store.NewHistory(blobs, store.WithLogger(logger.Named("history")))
	rt.history.Load(cmd.Context())
	logger.Info("store ready",
		zap.String("backend", cfg.Store.Backend),
		zap.Int("records", rt.history.Len()))
	return rt, nil
}

// Close releases the store and flushes the logger.
func (rt *deps) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c())
	}
	_ = rt.logger.Sync()
	return errors.Join(errs...)
}

// openBlobStore connects the configured backend.
func openBlobStore(ctx context.Context, sc config.StoreConfig) (store.BlobStore, func() error, error) {
	switch sc.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
		})
		rs := redisstore.New(client, sc.Redis.Prefix)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", sc.Redis.Addr, err)
		}
		return rs, rs.Close, nil

	default:
		dbPath := sc.Path
		if dbPath == "" {
			p, err := store.DefaultDBPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve DB path: %w", err)
			}
			dbPath = p
		} else if err := store.EnsureDir(dbPath); err != nil {
			return nil, nil, fmt.Errorf("create DB dir: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st.Close, nil
	}
}

// runApp builds the session engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts, err := rt.cfg.SessionOptions()
	if err != nil {
		return err
	}

	engine := session.NewEngine(problemgen.New(nil), rt.history,
		session.WithOptions(opts),
		session.WithConfig(rt.cfg.Drill),
		session.WithLogger(rt.logger.Named("session")),
	)
	return app.Run(cmd.Context(), engine)
}
