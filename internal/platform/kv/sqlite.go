package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteGateway keeps every record in a single key/value table. The cgo-free
// driver keeps the binary self-contained.
type SQLiteGateway struct {
	db *sql.DB
}

func NewSQLiteGateway(dbPath string) (*SQLiteGateway, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	g := &SQLiteGateway{db: db}
	if err := g.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *SQLiteGateway) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := g.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

func (g *SQLiteGateway) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get record %q: %w", key, err)
	}
	return value, nil
}

func (g *SQLiteGateway) Set(ctx context.Context, key, value string) error {
	const stmt = `
INSERT INTO records (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;
`
	if _, err := g.db.ExecContext(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}

func (g *SQLiteGateway) Delete(ctx context.Context, key string) error {
	if _, err := g.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
