package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/screening-assistant/internal/schemas"
	"github.com/jonathan/screening-assistant/internal/types"
)

// PostgresStore persists sessions as JSONB rows in a sessions table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    record     JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// OpenPostgres establishes a connection pool and ensures the sessions
// table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createSessionsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Load reads a session row. Missing rows and rows that fail schema
// validation both return nil so the caller starts a fresh interview.
func (s *PostgresStore) Load(ctx context.Context, sessionID string) (*types.CandidateRecord, error) {
	if !ValidSessionID(sessionID) {
		return nil, fmt.Errorf("invalid session id %q", sessionID)
	}

	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM sessions WHERE session_id = $1`,
		sessionID,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
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

// Save upserts the session row, refreshing the timestamp.
func (s *PostgresStore) Save(ctx context.Context, sessionID string, record *types.CandidateRecord) error {
	if !ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session id %q", sessionID)
	}

	record.Timestamp = time.Now().UTC()
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", sessionID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (session_id, record)
		 VALUES ($1, $2)
		 ON CONFLICT (session_id) DO UPDATE SET record = $2, updated_at = NOW()`,
		sessionID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes the session row if present.
func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	if !ValidSessionID(sessionID) {
		return fmt.Errorf("invalid session id %q", sessionID)
	}

	if _, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE session_id = $1`, sessionID,
	); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
