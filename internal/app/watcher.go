package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/favorites"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// StartFavoritesWatcher launches a background goroutine that reloads the
// store when the favorites file changes on disk. A failed watcher is restarted
// with exponential backoff. It returns immediately.
func StartFavoritesWatcher(ctx context.Context, store *favorites.Store, storage favorites.FileStorage, logger *zap.Logger) {
	watch := func(ctx context.Context) error { return store.Watch(ctx, storage) }
	go supervise(ctx, watch, defaultRetryInterval, logger)
}

// supervise runs fn until ctx is cancelled, restarting it whenever it returns.
func supervise(ctx context.Context, fn func(context.Context) error, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	failures := 0
	for {
		err := fn(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			failures++
			logger.Warn("favorites watcher stopped", zap.Error(err), zap.Int("failures", failures))
		} else {
			failures = 0
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(calculateBackoff(failures, interval)):
		}
	}
}

// calculateBackoff doubles interval per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	if failures >= 16 {
		return maxBackoff
	}
	backoff := interval << failures
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
