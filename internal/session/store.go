// Package session persists candidate records between conversation turns.
// Sessions are JSON files on disk by default; a PostgreSQL store is used
// when a database URL is configured.
package session

import (
	"context"
	"regexp"

	"github.com/jonathan/screening-assistant/internal/config"
	"github.com/jonathan/screening-assistant/internal/types"
)

// Store reads and writes candidate records keyed by session ID.
type Store interface {
	// Load returns the record for a session, or nil when none exists.
	// Corrupt stored records also load as nil so the interview restarts
	// instead of failing.
	Load(ctx context.Context, sessionID string) (*types.CandidateRecord, error)

	// Save persists the record, stamping it with the current time.
	Save(ctx context.Context, sessionID string, record *types.CandidateRecord) error

	// Delete removes a stored session. Unknown sessions delete cleanly.
	Delete(ctx context.Context, sessionID string) error
}

// Session IDs become file names and database keys, so they are restricted
// to a safe character set.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,99}$`)

// ValidSessionID reports whether id is safe to use as a storage key.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}

// Open selects a store from configuration: PostgreSQL when a database URL
// is set, the file store otherwise.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.DatabaseURL != "" {
		return OpenPostgres(ctx, cfg.DatabaseURL)
	}
	dir := cfg.DataDir
	if dir == "" {
		dir = config.Defaults().DataDir
	}
	return NewFileStore(dir)
}

// Close releases resources for stores that hold any.
func Close(s Store) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}
