/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/tokensync/config"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/variables"
)

// DefaultDebounce groups bursts of file events into one rebuild.
const DefaultDebounce = 200 * time.Millisecond

// ErrNothingToWatch is returned by Run when no directory could be watched.
var ErrNothingToWatch = errors.New("no directories to watch")

// Watcher calls a function when files in the watched directories change.
// Events within the debounce window trigger a single call, and calls never
// overlap.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	ticks    chan struct{}

	mu     sync.Mutex
	ignore map[string]bool
	trees  []string
	timer  *time.Timer
}

// NewWatcher creates a watcher. A zero debounce means DefaultDebounce.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  w,
		debounce: debounce,
		ticks:    make(chan struct{}, 1),
		ignore:   make(map[string]bool),
	}, nil
}

// Add watches dirs but not their subdirectories. Directories that cannot be
// watched are skipped with a warning.
func (w *Watcher) Add(dirs ...string) {
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			logger.Warn("failed to watch %s: %v", dir, err)
		}
	}
}

// AddRecursive watches each root and every directory below it, including
// directories created after the watch starts.
func (w *Watcher) AddRecursive(roots ...string) {
	for _, root := range roots {
		root = filepath.Clean(root)
		w.mu.Lock()
		if !slices.Contains(w.trees, root) {
			w.trees = append(w.trees, root)
		}
		w.mu.Unlock()
		w.addTree(root)
	}
}

// Dirs returns the watched directories, sorted.
func (w *Watcher) Dirs() []string {
	dirs := w.watcher.WatchList()
	slices.Sort(dirs)
	return dirs
}

// Ignore skips events for the given paths, such as generated outputs.
func (w *Watcher) Ignore(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		w.ignore[filepath.Clean(p)] = true
	}
}

// Run calls fn after each debounced change until ctx is done. fn runs on the
// calling goroutine; changes made while it runs start a new debounce.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	if len(w.watcher.WatchList()) == 0 {
		return ErrNothingToWatch
	}
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.ticks:
			fn()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || w.ignored(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) && w.inTree(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name)
				}
			}
			logger.Debug("file event %s %s", event.Op, event.Name)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

// addTree watches dir and the directories below it.
func (w *Watcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("failed to watch %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			logger.Warn("failed to watch %s: %v", path, err)
			return fs.SkipDir
		}
		return nil
	})
}

func (w *Watcher) inTree(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, root := range w.trees {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignored(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ignore[filepath.Clean(name)]
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.ticks <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// WatchDirs returns the directories holding the project's config and its
// local variable files. Patterns whose glob spans directories, such as
// figma/**/*.json, yield recursive roots in trees; the rest yield dirs.
// Both are sorted.
func (p *Project) WatchDirs() (dirs, trees []string) {
	dirs = []string{filepath.Join(p.root, config.ConfigDir)}
	patterns := slices.Concat(p.config.Base, p.config.Light, p.config.Dark)
	for _, pattern := range patterns {
		if variables.IsURL(pattern) {
			continue
		}
		path := p.Path(pattern)
		dir := path
		for strings.ContainsAny(dir, "*?[{") {
			dir = filepath.Dir(dir)
		}
		if dir == path {
			dirs = append(dirs, filepath.Dir(path))
			continue
		}
		rest := strings.TrimPrefix(path, dir+string(filepath.Separator))
		if strings.ContainsRune(rest, filepath.Separator) {
			trees = append(trees, dir)
		} else {
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs)
	slices.Sort(trees)
	return slices.Compact(dirs), slices.Compact(trees)
}

// OutputPaths returns the resolved paths of the configured outputs.
func (p *Project) OutputPaths() []string {
	paths := make([]string, len(p.config.Outputs))
	for i, out := range p.config.Outputs {
		paths[i] = p.Path(out.Path)
	}
	return paths
}
