// Package file implements roster and activity log persistence on the local
// filesystem.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/infrastructure/storage"
)

// RosterRepository keeps the roster snapshot in a single JSON file.
type RosterRepository struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

var _ ports.RosterRepository = (*RosterRepository)(nil)

func NewRosterRepository(path string, log zerolog.Logger) *RosterRepository {
	return &RosterRepository{
		path: path,
		log:  log.With().Str("component", "roster_file").Str("path", path).Logger(),
	}
}

// Save replaces the snapshot file. The new content is written to a
// temporary file and renamed over the old one.
func (r *RosterRepository) Save(_ context.Context, clients []domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("roster snapshot dir: %w", err)
	}
	if err := atomicWriteFileJSON(r.path, storage.ToRecords(clients)); err != nil {
		return fmt.Errorf("write roster snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot. A missing, empty, or corrupt file yields an
// empty roster.
func (r *RosterRepository) Load(_ context.Context) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn().Err(err).Msg("roster snapshot unreadable")
		}
		return []domain.Client{}, nil
	}
	defer f.Close()

	var records []storage.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		if !errors.Is(err, io.EOF) {
			r.log.Warn().Err(err).Msg("roster snapshot corrupt, starting empty")
		}
		return []domain.Client{}, nil
	}
	return storage.FromRecords(records), nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
