package gridkit

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pagecraft/gridkit/internal/debounce"
)

// WatchConfig watches a grid.toml file and reinstalls it through Configure
// whenever it changes, so breakpoint thresholds and strategy edits take
// effect in the running designer without a restart. Events are debounced;
// editors that write via rename-and-replace are covered by watching the
// parent directory. A config that fails to parse or validate is logged and
// skipped, keeping the last good configuration.
//
// The returned stop function detaches the watcher; it is idempotent.
func WatchConfig(path string, log *zap.Logger) (stop func(), err error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	deb := debounce.New(250 * time.Millisecond)
	done := make(chan struct{})

	reload := func() {
		cfg, err := LoadConfig(abs)
		if err != nil {
			log.Warn("config reload failed, keeping previous configuration",
				zap.String("path", abs), zap.Error(err))
			return
		}
		if err := Configure(cfg); err != nil {
			log.Warn("config rejected on reload", zap.String("path", abs), zap.Error(err))
			return
		}
		log.Info("configuration reloaded", zap.String("path", abs))
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				deb.Trigger(reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", zap.Error(err))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			deb.Cancel()
			w.Close()
		})
	}, nil
}
