package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 250 * time.Millisecond

// Watcher reloads the configuration when its YAML file changes and passes
// the new value to registered callbacks. Used by the long-running local
// server; Lambdas read configuration once per cold start.
type Watcher struct {
	mu        sync.RWMutex
	current   *Config
	callbacks []func(*Config)
	logger    *zap.Logger
	fs        *fsnotify.Watcher
	load      func() (*Config, error)
	done      chan struct{}
}

// NewWatcher starts watching initial.ConfigFile. It fails when the config
// was not loaded from a file.
func NewWatcher(initial *Config, logger *zap.Logger) (*Watcher, error) {
	if initial.ConfigFile == "" {
		return nil, fmt.Errorf("configuration was not loaded from a file")
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory: editors replace files rather than writing in place
	if err := fs.Add(filepath.Dir(initial.ConfigFile)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", initial.ConfigFile, err)
	}

	w := &Watcher{
		current: initial,
		logger:  logger,
		fs:      fs,
		load:    LoadConfig,
		done:    make(chan struct{}),
	}
	go w.loop(filepath.Clean(initial.ConfigFile))

	logger.Info("Configuration hot reloading enabled", zap.String("file", initial.ConfigFile))
	return w, nil
}

// OnChange registers a callback run after every successful reload
func (w *Watcher) OnChange(fn func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Current returns the latest configuration
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Close stops watching
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) loop(file string) {
	var debounce *time.Timer

	for {
		select {
		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Config watcher error", zap.Error(err))
		}
	}
}

// reload loads the configuration again and notifies callbacks. An invalid
// file keeps the previous configuration.
func (w *Watcher) reload() {
	cfg, err := w.load()
	if err != nil {
		w.logger.Error("Configuration reload failed, keeping previous values", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = cfg
	callbacks := append([]func(*Config){}, w.callbacks...)
	w.mu.Unlock()

	w.logger.Info("Configuration reloaded", zap.String("file", cfg.ConfigFile))
	for _, fn := range callbacks {
		fn(cfg)
	}
}
