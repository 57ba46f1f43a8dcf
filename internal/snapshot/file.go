package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mcdev12/auctiontracker/internal/models"
)

// FileStore keeps the snapshot as a JSON document in a single file, written
// atomically via a temp file and rename.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed snapshot store at path.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Save writes the current state, replacing any previous snapshot.
func (s *FileStore) Save(_ context.Context, state models.AuctionState) error {
	data, err := json.MarshalIndent(envelope{Version: Version, State: state}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted state. An absent file or a snapshot written under
// a different schema version yields the zero-value default state.
func (s *FileStore) Load(_ context.Context) (models.AuctionState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.AuctionState{}, nil
	}
	if err != nil {
		return models.AuctionState{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.AuctionState{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if env.Version != Version {
		s.logger.Warn().Str("version", env.Version).Msg("ignoring snapshot with unknown version")
		return models.AuctionState{}, nil
	}
	return env.State, nil
}
