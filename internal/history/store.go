// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite record of manifest runs so that successive
// registry updates can be compared.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// dbFile is the database name inside the output directory.
const dbFile = "history.db"

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded manifest.
type Run struct {
	ID             int64     `json:"id" yaml:"id"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	RegistryPath   string    `json:"registry_path" yaml:"registry_path"`
	RegistrySHA256 string    `json:"registry_sha256" yaml:"registry_sha256"`
	Profile        string    `json:"profile" yaml:"profile"`
	StopVersion    string    `json:"stop_version" yaml:"stop_version"`
	Extensions     []string  `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Count is the manifest size; filled by List, where Extensions is not.
	Count int `json:"count" yaml:"count"`
}

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates dir/history.db and its schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return OpenPath(filepath.Join(dir, dbFile))
}

// OpenPath opens or creates the database at dbPath.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			registry_path TEXT NOT NULL,
			registry_sha256 TEXT NOT NULL,
			profile TEXT NOT NULL,
			stop_version TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_extensions (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_extensions_name ON run_extensions(name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and its extensions in one transaction and returns the
// new run ID. A zero CreatedAt is set to the current time.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, registry_path, registry_sha256, profile, stop_version)
		 VALUES (?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339Nano), run.RegistryPath, run.RegistrySHA256,
		run.Profile, run.StopVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_extensions (run_id, position, name) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, name := range run.Extensions {
		if _, err := stmt.ExecContext(ctx, id, i, name); err != nil {
			return 0, fmt.Errorf("inserting extension %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// List returns all runs, newest first, without their extension lists.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.created_at, r.registry_path, r.registry_sha256, r.profile, r.stop_version,
		        (SELECT count(*) FROM run_extensions e WHERE e.run_id = r.id)
		 FROM runs r ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			createdAt string
		)
		if err := rows.Scan(&r.ID, &createdAt, &r.RegistryPath, &r.RegistrySHA256, &r.Profile, &r.StopVersion, &r.Count); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns the run with the given ID, extensions included.
func (s *Store) Get(ctx context.Context, id int64) (*Run, error) {
	var (
		r         Run
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, registry_path, registry_sha256, profile, stop_version
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &createdAt, &r.RegistryPath, &r.RegistrySHA256, &r.Profile, &r.StopVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", id, err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM run_extensions WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying extensions of run %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning extension: %w", err)
		}
		r.Extensions = append(r.Extensions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.Count = len(r.Extensions)
	return &r, nil
}

// Latest returns the IDs of the two most recent runs, newest last. It fails
// when fewer than two runs are recorded.
func (s *Store) Latest(ctx context.Context) (from, to int64, err error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 2`)
	if err != nil {
		return 0, 0, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, 0, fmt.Errorf("scanning run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}
	if len(ids) < 2 {
		return 0, 0, fmt.Errorf("%w: need two recorded runs, have %d", ErrRunNotFound, len(ids))
	}
	return ids[1], ids[0], nil
}
