// Package cache keeps the last good backend payloads in a local sqlite file
// so the shell can still show something when the backend is unreachable.
// Display only: the session manager never reads from here.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/KingTechFoundation/fitlife-cli/internal/dbx"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Well-known snapshot keys.
const (
	KeyUser      = "user"
	KeyDashboard = "dashboard"
)

type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*Cache, error) {
	if dir := filepath.Dir(dsn); dir != "" && dir != "." && !isMemoryDSN(dsn) {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func isMemoryDSN(dsn string) bool {
	return len(dsn) >= 5 && dsn[:5] == "file:"
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Set stores value under key, overwriting any previous snapshot.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	return c.set(ctx, c.db, key, value)
}

func (c *Cache) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to set snapshot[%s]: %w", key, err)
	}
	return nil
}

// Get returns the snapshot and its write time. A miss is (nil, zero, nil).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	var value []byte
	var unix int64
	err := c.db.QueryRowContext(ctx, `SELECT value, updated_at FROM snapshots WHERE key = ?`, key).Scan(&value, &unix)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get snapshot[%s]: %w", key, err)
	}
	return value, time.Unix(unix, 0).UTC(), nil
}

// Clear drops every snapshot. Called on logout so nothing from the previous
// account survives locally.
func (c *Cache) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
			return fmt.Errorf("failed to clear snapshots: %w", err)
		}
		return nil
	})
}

// SetJSON marshals v and stores it under key.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, b)
}

// GetJSON loads key into v. Returns false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) (bool, time.Time, error) {
	b, at, err := c.Get(ctx, key)
	if err != nil || b == nil {
		return false, time.Time{}, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, time.Time{}, err
	}
	return true, at, nil
}
