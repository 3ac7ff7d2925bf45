package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/snipsync/snipsync/internal/models"
)

// Watcher ingests files dropped into an inbox directory as new records. It is
// the daemon's mutation path: every ingested file goes through the record
// service, whose notifier debounces bursts of drops into one sync session.
type Watcher struct {
	dir    string
	svc    Service
	logger *slog.Logger
}

// NewWatcher creates an inbox watcher over dir, creating the directory if it
// does not exist yet.
func NewWatcher(dir string, svc Service, logger *slog.Logger) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create inbox directory: %w", err)
	}
	return &Watcher{dir: dir, svc: svc, logger: logger}, nil
}

// Run watches the inbox until ctx is cancelled. Files already present at
// startup are ingested before the watch loop takes over.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start inbox watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch inbox %s: %w", w.dir, err)
	}

	w.sweep(ctx)
	w.logger.Info("watching inbox", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
				w.ingest(ctx, event.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("inbox watch error", "error", err)
		}
	}
}

// sweep ingests whatever the inbox already holds.
func (w *Watcher) sweep(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Error("failed to read inbox", "error", err)
		return
	}
	for _, entry := range entries {
		w.ingest(ctx, filepath.Join(w.dir, entry.Name()))
	}
}

// ingest reads one inbox file into a new record and removes the file. A
// create event for a still-empty file is skipped; the following write event
// picks it up. A file removed by an earlier event reads as not-exist and is
// skipped too.
func (w *Watcher) ingest(ctx context.Context, path string) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		w.logger.Error("failed to read inbox file", "file", name, "error", err)
		return
	}
	if len(payload) == 0 {
		return
	}

	record, err := w.svc.Save(ctx, "", kindFromName(name), payload)
	if err != nil {
		w.logger.Error("failed to ingest inbox file", "file", name, "error", err)
		return
	}
	if err := os.Remove(path); err != nil {
		w.logger.Error("failed to remove ingested file", "file", name, "error", err)
	}

	w.logger.Info("inbox file ingested",
		"file", name,
		"record_id", record.ID,
		"kind", record.Kind)
}

// kindFromName maps an inbox filename to a record kind via its prefix, e.g.
// template-greeting.txt. Files without a kind prefix become snippets.
func kindFromName(name string) string {
	prefix, _, found := strings.Cut(name, "-")
	if found && models.ValidKind(prefix) {
		return prefix
	}
	return models.KindSnippet
}
