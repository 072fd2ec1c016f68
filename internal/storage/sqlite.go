package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/checksum"
)

const snapshotSchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	checksum   TEXT NOT NULL DEFAULT '',
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLite stores the snapshot as one row keyed by the storage key.
type SQLite struct {
	conn *sql.DB
	key  string
}

// OpenSQLite opens (or creates) the database at dsn and applies the schema.
func OpenSQLite(dsn, key string) (*SQLite, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("storage: sqlite open: %w", err)
	}
	if _, err := conn.Exec(snapshotSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("storage: sqlite schema: %w", err)
	}
	return &SQLite{conn: conn, key: key}, nil
}

// Load implements Provider.
func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.conn.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, s.key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: sqlite %s: %w", s.key, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: sqlite load: %w", err)
	}
	return data, nil
}

// Save implements Provider.
func (s *SQLite) Save(ctx context.Context, data []byte) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, checksum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data       = excluded.data,
			checksum   = excluded.checksum,
			updated_at = excluded.updated_at
	`, s.key, data, checksum.Sum(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storage: sqlite save: %w", err)
	}
	return nil
}

// Checksum returns the checksum recorded with the stored snapshot.
func (s *SQLite) Checksum(ctx context.Context) (string, error) {
	var sum string
	err := s.conn.QueryRowContext(ctx, `SELECT checksum FROM snapshots WHERE key = ?`, s.key).Scan(&sum)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("storage: sqlite %s: %w", s.key, apperr.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("storage: sqlite checksum: %w", err)
	}
	return sum, nil
}

// Close implements Provider.
func (s *SQLite) Close() error { return s.conn.Close() }
