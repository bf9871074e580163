package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"time"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry is a single password record.
type Entry struct {
	ID        int64
	Title     string
	User      string
	URL       string
	Password  string
	Notes     string
	CreatedAt time.Time
}

// Store is an open record container.
type Store struct {
	db   *sql.DB
	path string
}

// Init creates a new, empty record container at path. The file must not
// already exist.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, terrors.ErrStoreExists)
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Open opens an existing record container and runs an integrity check.
// A sealed or damaged file fails with ErrCorruptDatabase.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", terrors.ErrIO, path, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, path: path}
	if err := s.CheckIntegrity(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps the file consistent for sealing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = DELETE",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %q: %v", terrors.ErrCorruptDatabase, pragma, err)
		}
	}

	return db, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CheckIntegrity runs PRAGMA integrity_check and verifies the entries table
// exists.
func (s *Store) CheckIntegrity(ctx context.Context) error {
	var result string
	if err := s.db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("%w: %v", terrors.ErrCorruptDatabase, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check reported %q", terrors.ErrCorruptDatabase, result)
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'entries'").Scan(&name)
	if err != nil {
		return fmt.Errorf("%w: entries table missing: %v", terrors.ErrCorruptDatabase, err)
	}

	return nil
}
