// Package sqlite implements the trip, block, and experience catalog
// services on an embedded SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrDataDirEmpty    = errors.New("data dir must not be empty")
)

// Config holds the backend parameters for Attach.
type Config struct {
	// DataDir is the directory holding the database file. Created if
	// missing.
	DataDir string
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// dbFileName is the SQLite database file inside DataDir.
const dbFileName = "wanderplan.db"

// Backend owns the database handle and hands out service accessors.
// Attach before use, Detach when done.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// NewBackend creates a detached backend; call Attach to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database under config.DataDir, creating the
// directory and schema when missing, and seeds the experience catalog
// on first run. Returns ErrAlreadyAttached when called twice.
func (b *Backend) Attach(config Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := seedExperiences(db); err != nil {
		db.Close()
		return fmt.Errorf("seed catalog: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: repeated calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	b.db = nil
	return nil
}

// Trips returns the trip persistence service.
func (b *Backend) Trips() (*TripStore, error) {
	if err := b.requireAttached(); err != nil {
		return nil, err
	}
	return &TripStore{backend: b}, nil
}

// Blocks returns the block persistence service.
func (b *Backend) Blocks() (*BlockStore, error) {
	if err := b.requireAttached(); err != nil {
		return nil, err
	}
	return &BlockStore{backend: b}, nil
}

// Experiences returns the catalog listing service.
func (b *Backend) Experiences() (*ExperienceStore, error) {
	if err := b.requireAttached(); err != nil {
		return nil, err
	}
	return &ExperienceStore{backend: b}, nil
}

func (b *Backend) requireAttached() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return ErrDetached
	}
	return nil
}
