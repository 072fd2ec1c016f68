// Package inbox watches a drop folder and imports markdown files that appear
// under <root>/<module>/ into that module's target tab. Files are never
// moved or deleted.
package inbox

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/boreacrutis/internal/checksum"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/service"
	"github.com/starford/boreacrutis/internal/storage"
)

// Modules lists the module folders created under the inbox root.
var Modules = []domain.ModuleType{domain.ModuleProfiles, domain.ModuleJobAds, domain.ModuleCaseStudies}

// DefaultSettle is how long a file must be quiet before it is imported.
const DefaultSettle = 200 * time.Millisecond

// Importer adds a parsed document to the workspace.
type Importer interface {
	Import(ctx context.Context, module domain.ModuleType, tabID, text string) (service.Imported, error)
}

// Result reports the outcome for one inbox file.
type Result struct {
	Path     string
	Imported service.Imported
	Err      error
}

// Callback is called after every import attempt.
type Callback func(Result)

// Watcher imports new inbox files until its context is cancelled.
type Watcher struct {
	fs       *storage.FS
	importer Importer
	logger   *slog.Logger
	settle   time.Duration
	cb       Callback

	// seen holds "<module>/<checksum>" for every file already imported or
	// present at startup.
	seen map[string]struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSettle overrides DefaultSettle.
func WithSettle(d time.Duration) Option {
	return func(w *Watcher) { w.settle = d }
}

// WithCallback registers cb for import results.
func WithCallback(cb Callback) Option {
	return func(w *Watcher) { w.cb = cb }
}

// New prepares a watcher over root, creating one folder per module.
func New(root *storage.FS, importer Importer, logger *slog.Logger, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		fs:       root,
		importer: importer,
		logger:   logger,
		settle:   DefaultSettle,
		seen:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	for _, m := range Modules {
		if err := os.MkdirAll(filepath.Join(root.Root(), string(m)), 0o755); err != nil {
			return nil, fmt.Errorf("inbox: create %s folder: %w", m, err)
		}
	}
	existing, err := root.List("")
	if err != nil {
		return nil, fmt.Errorf("inbox: scan existing files: %w", err)
	}
	for _, f := range existing {
		if m, ok := moduleOf(f.Path); ok {
			w.seen[seenKey(m, f.Checksum)] = struct{}{}
		}
	}
	return w, nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inbox: watcher: %w", err)
	}
	defer fw.Close()

	for _, m := range Modules {
		if err := addDirsRecursive(fw, filepath.Join(w.fs.Root(), string(m))); err != nil {
			return fmt.Errorf("inbox: watch %s: %w", m, err)
		}
	}
	w.logger.Info("inbox: started", slog.String("root", w.fs.Root()))

	pending := make(map[string]struct{})
	var settleTimer *time.Timer
	var settleCh <-chan time.Time

	schedule := func(rel string) {
		pending[rel] = struct{}{}
		if settleTimer == nil {
			settleTimer = time.NewTimer(w.settle)
			settleCh = settleTimer.C
		} else {
			settleTimer.Reset(w.settle)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if settleTimer != nil {
				settleTimer.Stop()
			}
			w.logger.Info("inbox: stopped")
			return nil

		case <-settleCh:
			for rel := range pending {
				w.process(ctx, rel)
			}
			clear(pending)

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(fw, ev.Name); addErr != nil {
						w.logger.Warn("inbox: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					w.scheduleDir(ev.Name, schedule)
					continue
				}
			}
			if !storage.IsMarkdown(ev.Name) {
				continue
			}
			rel, relErr := w.fs.Rel(ev.Name)
			if relErr != nil {
				continue
			}
			schedule(rel)

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("inbox: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// process imports rel unless it is empty or its content was seen before.
func (w *Watcher) process(ctx context.Context, rel string) {
	module, ok := moduleOf(rel)
	if !ok {
		return
	}
	data, err := w.fs.Read(rel)
	if err != nil {
		w.logger.Warn("inbox: read failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	if strings.TrimSpace(string(data)) == "" {
		w.logger.Debug("inbox: skipping empty file", slog.String("path", rel))
		return
	}
	key := seenKey(module, checksum.Sum(data))
	if _, dup := w.seen[key]; dup {
		return
	}

	imp, err := w.importer.Import(ctx, module, "", string(data))
	if err != nil {
		w.logger.Warn("inbox: import failed", slog.String("path", rel), slog.String("error", err.Error()))
	} else {
		w.seen[key] = struct{}{}
		w.logger.Info("inbox: imported",
			slog.String("path", rel),
			slog.String("module", string(module)),
			slog.String("tab_id", imp.TabID),
			slog.String("entity_id", imp.EntityID))
	}
	if w.cb != nil {
		w.cb(Result{Path: rel, Imported: imp, Err: err})
	}
}

// scheduleDir queues markdown files already inside a newly created directory.
func (w *Watcher) scheduleDir(dir string, schedule func(string)) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !storage.IsMarkdown(path) {
			return nil
		}
		if rel, relErr := w.fs.Rel(path); relErr == nil {
			schedule(rel)
		}
		return nil
	})
}

// moduleOf maps a root-relative path to the module named by its first
// component.
func moduleOf(rel string) (domain.ModuleType, bool) {
	first, _, found := strings.Cut(filepath.ToSlash(rel), "/")
	if !found {
		return "", false
	}
	m := domain.ModuleType(first)
	return m, m.HasTabs()
}

func seenKey(m domain.ModuleType, sum string) string {
	return string(m) + "/" + sum
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
