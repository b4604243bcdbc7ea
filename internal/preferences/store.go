package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Persisted keys
const (
	KeyDarkMode     = "weatherDarkMode"
	KeyFavoriteCity = "favoriteCity"
)

// Preferences survive restarts. An empty FavoriteCity means none is stored.
type Preferences struct {
	DarkMode     bool   `json:"darkMode"`
	FavoriteCity string `json:"favoriteCity,omitempty"`
}

// Store loads and saves preferences
type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
	Close() error
}

// SQLiteStore keeps preferences in a key/value table (pure Go driver modernc.org/sqlite).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences db: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and writes serialized
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS preferences (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create preferences schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the stored preferences. Missing keys and unparseable values
// fall back to defaults.
func (s *SQLiteStore) Load(ctx context.Context) (Preferences, error) {
	var prefs Preferences

	darkMode, ok, err := s.get(ctx, KeyDarkMode)
	if err != nil {
		return Preferences{}, err
	}
	if ok {
		// "true"/"false" as written by Save; anything else is false
		if b, err := strconv.ParseBool(darkMode); err == nil {
			prefs.DarkMode = b
		}
	}

	favorite, ok, err := s.get(ctx, KeyFavoriteCity)
	if err != nil {
		return Preferences{}, err
	}
	if ok {
		prefs.FavoriteCity = favorite
	}

	return prefs, nil
}

// Save overwrites both keys. An empty FavoriteCity removes the stored one.
func (s *SQLiteStore) Save(ctx context.Context, prefs Preferences) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO preferences(key, value, updated_at) VALUES(?,?,?)`,
		KeyDarkMode, strconv.FormatBool(prefs.DarkMode), now); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyDarkMode, err)
	}

	if prefs.FavoriteCity == "" {
		_, err = tx.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, KeyFavoriteCity)
	} else {
		_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO preferences(key, value, updated_at) VALUES(?,?,?)`,
			KeyFavoriteCity, prefs.FavoriteCity, now)
	}
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyFavoriteCity, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}
