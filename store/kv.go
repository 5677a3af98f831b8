package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Entry is a stored value with its metadata.
type Entry struct {
	Key       string
	Value     json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Size is the stored value size in bytes.
func (e Entry) Size() int { return len(e.Value) }

// Get retrieves and deserializes a value by key.
// Returns an error wrapping ErrNotFound if the key does not exist.
func (s *Store) Get(ctx context.Context, key string, dest any) error {
	e, err := s.GetRaw(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(e.Value, dest); err != nil {
		return fmt.Errorf("kv get %q unmarshal: %w", key, err)
	}
	return nil
}

// GetRaw retrieves a raw entry with metadata.
// Returns an error wrapping ErrNotFound if the key does not exist.
func (s *Store) GetRaw(ctx context.Context, key string) (Entry, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT key, value, created_at, updated_at FROM kv_store WHERE key = ?`, key)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("kv get %q: %w", key, ErrNotFound)
		}
		return Entry{}, fmt.Errorf("kv get %q: %w", key, err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e                    Entry
		value                []byte
		createdAt, updatedAt int64
	)
	if err := sc.Scan(&e.Key, &value, &createdAt, &updatedAt); err != nil {
		return Entry{}, err
	}
	e.Value = json.RawMessage(value)
	e.CreatedAt = time.Unix(0, createdAt)
	e.UpdatedAt = time.Unix(0, updatedAt)
	return e, nil
}

// Set serializes value as JSON and stores it under key, replacing any
// previous value. The creation time of an existing key is kept.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q marshal: %w", key, err)
	}
	return s.setBytes(ctx, key, data)
}

func (s *Store) setBytes(ctx context.Context, key string, data []byte) error {
	now := time.Now().UnixNano()
	err := s.withBusyRetry(ctx, func() error {
		_, err := s.conn.ExecContext(ctx, `
			INSERT INTO kv_store (key, value, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			key, data, now, now)
		return err
	})
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.withBusyRetry(ctx, func() error {
		_, err := s.conn.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Has returns whether a key exists.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	var count int
	row := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store WHERE key = ?`, key)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("kv has %q: %w", key, err)
	}
	return count > 0, nil
}

// List returns every entry ordered by key.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT key, value, created_at, updated_at FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("kv list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("kv list scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv list: %w", err)
	}
	return entries, nil
}
