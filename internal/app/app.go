package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/catalog/remote"
	"github.com/five82/vidly/internal/catalog/sqlite"
	"github.com/five82/vidly/internal/config"
	"github.com/five82/vidly/internal/logging"
	"github.com/five82/vidly/internal/prefs"
	"github.com/five82/vidly/internal/state"
	"github.com/five82/vidly/internal/ui"
)

// Options configure the interactive browser.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/vidly/prefs.toml
}

// Run boots the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}
	defer env.close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		env.logger.Warn("using default preferences", zap.Error(err))
	}

	src, label, closeSrc, err := openSource(env.cfg, env.logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	env.logger.Info("starting browser", zap.String("source", label), zap.Int("page_size", env.cfg.PageSize))

	store := &state.Store{}
	store.SetSource(label)
	return runWithLoader(ctx, store, src, env.logger.Named("loader"), defaultRetryInterval, func(ctx context.Context) error {
		return ui.Run(ui.Options{
			Context:   ctx,
			Store:     store,
			PageSize:  env.cfg.PageSize,
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
			LogPath:   env.cfg.LogFile,
			Logger:    env.logger.Named("ui"),
		})
	})
}

// runWithLoader runs fn while the loader fills store, then stops the loader
// and waits for it to exit, so the caller can close src safely.
func runWithLoader(ctx context.Context, store *state.Store, src catalog.Source, logger *zap.Logger, interval time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	done := StartLoader(ctx, store, src, logger, interval)
	defer func() {
		cancel()
		<-done
	}()
	return fn(ctx)
}

// environment is what every command needs before it can touch a catalog.
type environment struct {
	cfg     config.Config
	logger  *zap.Logger
	cleanup func()
}

func (e environment) close() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

func setup(configPath string) (environment, error) {
	if err := config.LoadDotEnv(); err != nil {
		return environment{}, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return environment{}, fmt.Errorf("load config: %w", err)
	}
	logger, cleanup, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return environment{}, fmt.Errorf("init logging: %w", err)
	}
	return environment{cfg: cfg, logger: logger, cleanup: cleanup}, nil
}

// openSource builds the catalog source cfg selects. The returned label
// describes it for the header and logs; the close func releases it.
func openSource(cfg config.Config, logger *zap.Logger) (catalog.Source, string, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() {}
	switch cfg.Source {
	case config.SourceEmbedded, "":
		return catalog.Embedded(), "sample catalog", noop, nil
	case config.SourceFile:
		return &catalog.FileSource{Path: cfg.CatalogPath}, "file " + cfg.CatalogPath, noop, nil
	case config.SourceSQLite:
		store, err := sqlite.Open(cfg.DatabasePath, logger.Named("sqlite"))
		if err != nil {
			return nil, "", nil, fmt.Errorf("open catalog database: %w", err)
		}
		closeStore := func() {
			if err := store.Close(); err != nil {
				logger.Warn("close catalog database", zap.Error(err))
			}
		}
		return store, "sqlite " + cfg.DatabasePath, closeStore, nil
	case config.SourceHTTP:
		client, err := remote.NewClient(cfg.APIURL)
		if err != nil {
			return nil, "", nil, fmt.Errorf("init catalog client: %w", err)
		}
		return client, "api " + client.BaseURL(), noop, nil
	default:
		return nil, "", nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
