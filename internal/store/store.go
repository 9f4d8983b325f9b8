// Package store handles SQLite persistence of user preferences.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/verte-zerg/tuimul/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	keyTable     = "table"
	keyQuestions = "questions"
)

// Store wraps SQLite access for preferences.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadPreferences returns the stored preferences. The bool is false when none were saved.
func (s *Store) LoadPreferences(ctx context.Context) (model.Preferences, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE key IN (?, ?)`, keyTable, keyQuestions)
	if err != nil {
		return model.Preferences{}, false, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var prefs model.Preferences
	found := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return model.Preferences{}, false, err
		}
		switch key {
		case keyTable:
			table, err := strconv.Atoi(value)
			if err != nil {
				return model.Preferences{}, false, fmt.Errorf("stored table %q: %w", value, err)
			}
			prefs.Table = table
		case keyQuestions:
			prefs.Questions = value
		}
		found++
	}
	if err := rows.Err(); err != nil {
		return model.Preferences{}, false, err
	}
	if found < 2 {
		return model.Preferences{}, false, nil
	}
	return prefs, true, nil
}

// SavePreferences stores prefs, replacing any previous values.
func (s *Store) SavePreferences(ctx context.Context, prefs model.Preferences) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	now := time.Now().Format(time.RFC3339Nano)
	values := [][2]string{
		{keyTable, strconv.Itoa(prefs.Table)},
		{keyQuestions, prefs.Questions},
	}
	for _, kv := range values {
		if _, err = stmt.ExecContext(ctx, kv[0], kv[1], now); err != nil {
			return err
		}
	}
	return tx.Commit()
}
