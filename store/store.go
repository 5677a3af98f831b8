// Package store persists editor documents in a SQLite key-value table.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

//go:embed schema/schema.sql
var schemaSQL string

const (
	maxRetries   = 5
	initialWait  = 100 * time.Millisecond
	maxOpenConns = 10
	maxIdleConns = 5
	busyTimeout  = 5000 // milliseconds
)

// DefaultKey is the key the editor saves its document under.
const DefaultKey = "editorContent"

// OpenOptions configures Open.
type OpenOptions struct {
	// FileName is the database file inside the data directory.
	FileName string
	Logger   *zerolog.Logger
}

func DefaultOpenOptions() OpenOptions {
	return OpenOptions{FileName: "demo-editor.db"}
}

// Store is a key-value store backed by SQLite. It is safe for concurrent use.
type Store struct {
	conn *sql.DB
	path string
	log  zerolog.Logger
}

// Open creates the data directory if needed, opens the database with WAL
// journaling and applies the schema.
func Open(dataDir string, opts OpenOptions) (*Store, error) {
	if opts.FileName == "" {
		opts.FileName = DefaultOpenOptions().FileName
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	dbPath := filepath.Join(dataDir, opts.FileName)

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", dbPath, busyTimeout)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(0)

	s := &Store{conn: conn, path: dbPath, log: log}

	if err := s.pingWithRetry(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.initSchema(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("store opened")
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	return s.conn.Close()
}

// pingWithRetry attempts to ping the database with exponential backoff.
func (s *Store) pingWithRetry(ctx context.Context) error {
	wait := initialWait
	for i := 0; i < maxRetries; i++ {
		if err := s.conn.PingContext(ctx); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			time.Sleep(wait)
			wait *= 2
		}
	}

	return fmt.Errorf("failed to ping database after %d retries", maxRetries)
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	s.log.Debug().Msg("schema applied")
	return nil
}

// withBusyRetry runs fn again while SQLite reports the database busy,
// backing off between attempts.
func (s *Store) withBusyRetry(ctx context.Context, fn func() error) error {
	wait := initialWait
	for i := 0; ; i++ {
		err := fn()
		if err == nil || !IsBusyError(err) || i == maxRetries-1 {
			return err
		}

		s.log.Warn().Err(err).Int("attempt", i+1).Msg("database busy, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}
