package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/vidly/internal/catalog"
	"github.com/five82/vidly/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// StartLoader fetches the catalog in a background goroutine, retrying with
// exponential backoff until one fetch succeeds or ctx is cancelled. The
// returned channel closes when the goroutine exits.
func StartLoader(ctx context.Context, store *state.Store, src catalog.Source, logger *zap.Logger, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for attempt := 1; ; attempt++ {
			if err := load(ctx, store, src, logger); err == nil {
				return
			}
			if ctx.Err() != nil {
				return
			}

			wait := calculateBackoff(attempt-1, interval)
			store.ScheduleRetry(time.Now().Add(wait))
			logger.Info("retrying catalog fetch", zap.Int("attempt", attempt), zap.Duration("wait", wait))

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

// calculateBackoff doubles base once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func load(ctx context.Context, store *state.Store, src catalog.Source, logger *zap.Logger) error {
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		store.Update(nil, err)
		logger.Warn("catalog fetch failed", zap.Error(err))
		return err
	}
	for _, r := range cat.Rejected {
		logger.Warn("rejected movie",
			zap.String("id", r.Movie.ID),
			zap.String("title", r.Movie.Title),
			zap.Error(r.Err),
		)
	}
	store.Update(&cat, nil)
	logger.Info("catalog loaded",
		zap.Int("movies", len(cat.Movies)),
		zap.Int("genres", len(cat.Genres)),
		zap.Int("rejected", len(cat.Rejected)),
	)
	return nil
}
