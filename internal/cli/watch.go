package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors produce on save.
const watchDebounce = 150 * time.Millisecond

// watcher reports changes to a fixed set of files. It watches their parent
// directories, so files replaced by rename are still seen.
type watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	changed chan string
}

func newWatcher(files []string) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &watcher{fs: fsw, files: make(map[string]bool), changed: make(chan string, 1)}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// run forwards debounced changes until ctx is done. The last changed path
// of a burst is sent.
func (w *watcher) run(ctx context.Context, onError func(error)) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			select {
			case w.changed <- pending:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			onError(err)
		}
	}
}

func (w *watcher) Close() error {
	return w.fs.Close()
}

// watchBuild builds once, then again on every change until interrupted.
// Build failures are reported and the watch continues.
func (c *CLI) watchBuild(ctx context.Context, inputs []string, opts *buildOpts) error {
	files := append(append([]string(nil), inputs...), opts.settingsOpts.files()...)
	w, err := newWatcher(files)
	if err != nil {
		return err
	}
	defer w.Close()

	go w.run(ctx, func(err error) {
		c.Logger.Warn("watch error", "err", err)
	})

	rebuild := func() {
		if err := c.runBuild(ctx, inputs, opts); err != nil {
			printError("%v", err)
		}
	}

	rebuild()
	printInfo("Watching %d files (Ctrl+C to stop)", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-w.changed:
			c.Logger.Debug("change detected", "path", path)
			rebuild()
		}
	}
}
