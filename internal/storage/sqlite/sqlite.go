// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/petlinks/internal/models"
	"github.com/mmynk/petlinks/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != MemoryPath {
		// Create parent directory if it doesn't exist
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Foreign keys are enabled per connection, so the pragma goes in the DSN
	// rather than a one-off PRAGMA statement.
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	s := newStore(db)
	if err := s.CreateSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func newStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSchema creates the tables and indexes if they don't exist.
func (s *SQLiteStore) CreateSchema(ctx context.Context) error {
	if err := runMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SaveAll persists people, dogs and links in one transaction.
func (s *SQLiteStore) SaveAll(ctx context.Context, records ...models.Record) (err error) {
	var (
		people []*models.Person
		dogs   []*models.Dog
		links  []*models.PersonDogLink
	)
	for _, r := range records {
		switch rec := r.(type) {
		case *models.Person:
			people = append(people, rec)
		case *models.Dog:
			dogs = append(dogs, rec)
		case *models.PersonDogLink:
			links = append(links, rec)
		default:
			return fmt.Errorf("unsupported record type %T", r)
		}
	}

	// IDs handed out in this call are taken back if the transaction fails.
	var assigned []*int64
	defer func() {
		if err != nil {
			for _, id := range assigned {
				*id = 0
			}
		}
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range people {
		if p.ID != 0 {
			continue
		}
		id, err := insertRow(ctx, tx, "person", "INSERT INTO person (name) VALUES (?)", p.Name)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
		p.ID = id
		assigned = append(assigned, &p.ID)
	}

	for _, d := range dogs {
		if d.ID != 0 {
			continue
		}
		id, err := insertRow(ctx, tx, "dog", "INSERT INTO dog (name) VALUES (?)", d.Name)
		if err != nil {
			return fmt.Errorf("failed to insert dog: %w", err)
		}
		d.ID = id
		assigned = append(assigned, &d.ID)
	}

	for _, l := range links {
		l.ResolveKeys()
		_, err := insertRow(ctx, tx, "persondoglink",
			"INSERT INTO persondoglink (person_id, dog_id, is_owner) VALUES (?, ?, ?)",
			l.PersonID, l.DogID, l.IsOwner,
		)
		if err != nil {
			return fmt.Errorf("failed to insert link (person %d, dog %d): %w", l.PersonID, l.DogID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classify("persondoglink", err))
	}

	return nil
}

// insertRow executes an INSERT and returns the rowid it produced.
func insertRow(ctx context.Context, tx *sql.Tx, table, query string, args ...any) (int64, error) {
	echo(ctx, query, args)
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(table, err)
	}
	return res.LastInsertId()
}

// echo logs a statement at debug level.
func echo(ctx context.Context, query string, args []any) {
	slog.DebugContext(ctx, "SQL", "query", strings.Join(strings.Fields(query), " "), "args", args)
}

// notFound translates sql.ErrNoRows into storage.ErrNotFound.
func notFound(err error, what string, key ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, fmt.Sprint(key...), storage.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
