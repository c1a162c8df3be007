package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watch calls fn with the content of path once, then after every write
// to it, until ctx is done. Failures of fn are logged and do not stop the
// loop. The parent directory is watched so that editors replacing the file
// are seen.
func watch(ctx context.Context, path string, log *zap.Logger, fn func([]byte) error) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("icurves: watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("icurves: watch %s: %w", path, err)
	}

	apply := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("watched file unreadable", zap.String("path", path), zap.Error(err))

			return
		}
		if err := fn(data); err != nil {
			log.Error("re-render failed", zap.String("path", path), zap.Error(err))
		}
	}
	apply()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("watched file changed", zap.String("path", path), zap.Stringer("op", ev.Op))
			apply()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
