package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/screening-assistant/internal/schemas"
	"github.com/jonathan/screening-assistant/internal/types"
)

// FileStore keeps one JSON file per session in a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// backed by it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory sessions are stored in.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(sessionID string) string {
	return filepath.Join(s.dir, "candidate_"+sessionID+".json")
}

// Load reads a session file. Missing files and files that fail schema
// validation both return nil so the caller starts a fresh interview.
func (s *FileStore) Load(_ context.Context, sessionID string) (*types.CandidateRecord, error) {
	if !ValidSessionID(sessionID) {
		return nil, fmt.Errorf("invalid session id %q", sessionID)
	}

	data, err := os.ReadFile(s.path(sessionID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}

	if err := schemas.ValidateCandidateRecord(data); err != nil {
		log.Printf("Stored session %s is invalid, starting fresh: %v", sessionID, err)
		return nil, nil
	}

	var record types.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Stored session %s is unreadable, starting fresh: %v", sessionID, err)
		return nil, nil
	}
	return &record, nil
}

// Save writes the record to its session file, refreshing the timestamp.
func (s *FileStore) Save(_ context.Context, sessionID string, record *types.CandidateRecord) error {
	if !ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session id %q", sessionID)
	}

	record.Timestamp = time.Now().UTC()
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}
	if err := os.WriteFile(s.path(sessionID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes the session file if present.
func (s *FileStore) Delete(_ context.Context, sessionID string) error {
	if !ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session id %q", sessionID)
	}

	err := os.Remove(s.path(sessionID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
