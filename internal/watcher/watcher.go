package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"gamereviews/internal/logging"
)

// Watcher watches a file for changes
type Watcher struct {
	path     string
	onChange func(ctx context.Context)
	debounce time.Duration
}

// New creates a new file watcher
func New(path string, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch starts watching the file for changes.
// It blocks until the context is cancelled or the watcher fails. onChange
// runs at most once per burst of writes and never concurrently with itself.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch the directory containing the file so replacements by editors
	// (write to temp, rename over) are still seen
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	log := logging.WithComponent("watcher")
	log.Info().Str("path", absPath).Msg("Watching file for changes")

	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absPath {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce rapid changes
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				log.Info().Str("path", absPath).Msg("File changed")
				w.onChange(ctx)
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watcher error")

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
