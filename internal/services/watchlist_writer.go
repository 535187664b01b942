package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmcb87/earnings-tv/internal/models"
	log "github.com/sirupsen/logrus"
)

// WatchlistWriter persists formatted watchlists under a single output directory
type WatchlistWriter struct {
	dir string
}

// NewWatchlistWriter creates a writer rooted at dir. A relative dir is
// resolved against the working directory at write time.
func NewWatchlistWriter(dir string) *WatchlistWriter {
	return &WatchlistWriter{dir: dir}
}

// FileName returns the watchlist file name for week
func FileName(week models.Week) string {
	return fmt.Sprintf("Earnings %s to %s.txt", week.Start, week.End)
}

// Save writes watchlist to "<dir>/Earnings <start> to <end>.txt", creating dir
// if needed and overwriting any previous file for the same week.
// The error is logged and recorded as a warning before it is returned.
func (w *WatchlistWriter) Save(ctx context.Context, watchlist string, week models.Week) (string, error) {
	path := filepath.Join(w.dir, FileName(week))

	if err := w.write(path, watchlist); err != nil {
		log.Errorf("Error saving file: %v", err)
		AddWarning(ctx, models.Warning{
			Code:    models.WarnWriteFailed,
			Message: fmt.Sprintf("watchlist for %v not saved: %v", week, err),
		})
		return "", err
	}

	log.Infof("Saved file: %s", path)
	return path, nil
}

func (w *WatchlistWriter) write(path, watchlist string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(watchlist), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
