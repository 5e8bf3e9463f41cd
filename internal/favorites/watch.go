package favorites

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the store whenever another process rewrites the favorites file
// in storage.Dir. It blocks until ctx is cancelled. The directory is watched
// rather than the file because writers replace the file by rename.
func (s *Store) Watch(ctx context.Context, storage FileStorage) error {
	if err := storage.ensureDir(); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(storage.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", storage.Dir, err)
	}
	target := filepath.Clean(storage.Path(Key))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("reload favorites failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("favorites watcher error", zap.Error(err))
		}
	}
}
