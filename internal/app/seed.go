package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/catalog/sqlite"
)

// SeedOptions describe a seed run.
type SeedOptions struct {
	ConfigPath   string
	DatabasePath string // empty uses the configured database
	From         string // TOML catalog file; empty uses the sample catalog
}

// Seed writes a catalog into the SQLite database and reports what it wrote.
func Seed(ctx context.Context, w io.Writer, opts SeedOptions) error {
	env, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}
	defer env.close()

	dbPath := strings.TrimSpace(opts.DatabasePath)
	if dbPath == "" {
		dbPath = env.cfg.DatabasePath
	}

	var src catalog.Source = catalog.Embedded()
	if from := strings.TrimSpace(opts.From); from != "" {
		src = &catalog.FileSource{Path: from}
	}

	written, rejected, err := seedDatabase(ctx, dbPath, src, env.logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Seeded %d movies into %s (%d rejected)\n", written, dbPath, rejected)
	return err
}

func seedDatabase(ctx context.Context, dbPath string, src catalog.Source, logger *zap.Logger) (written, rejected int, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return 0, 0, fmt.Errorf("load seed catalog: %w", err)
	}
	for _, r := range cat.Rejected {
		logger.Warn("skipping invalid movie", zap.String("title", r.Movie.Title), zap.Error(r.Err))
	}

	store, err := sqlite.Open(dbPath, logger.Named("sqlite"))
	if err != nil {
		return 0, 0, fmt.Errorf("open catalog database: %w", err)
	}
	defer func() { _ = store.Close() }()

	written, skipped, err := store.Seed(ctx, cat.Genres, cat.Movies)
	if err != nil {
		return 0, 0, fmt.Errorf("seed catalog database: %w", err)
	}
	return written, len(cat.Rejected) + skipped, nil
}
