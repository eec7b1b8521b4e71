package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/vbauerster/clikit/clierr"
)

// Watch calls fn with the reloaded config each time path changes, until ctx
// is done. The parent directory is watched, so editors that replace the
// file are seen too. Reload errors are logged and skipped.
func Watch(ctx context.Context, path string, log logr.Logger, fn func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return clierr.IOError(err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return clierr.IOError(err)
	}
	log.V(1).Info("watching config", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			c, err := Load(path)
			if err != nil {
				log.Error(err, "reload config", "path", path)
				continue
			}
			log.V(1).Info("config reloaded", "path", path)
			fn(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watch config", "path", path)
		}
	}
}
