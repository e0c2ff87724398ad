// Shared helpers for wanderplan CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/wanderplan/wanderplan/internal/snapshot"
	"github.com/wanderplan/wanderplan/internal/sqlite"
	"github.com/wanderplan/wanderplan/pkg/itinerary"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// snapshotDirName is the snapshot subdirectory inside the data dir.
const snapshotDirName = "snapshots"

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(sqlite.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openSnapshot returns the snapshot store under the data directory.
func openSnapshot() (*snapshot.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return snapshot.Open(filepath.Join(dataDir, snapshotDirName)), nil
}

// loadStore restores the in-progress planning session from its
// snapshot. Returns a friendly error when there is none.
func loadStore() (*itinerary.Store, error) {
	snap, err := openSnapshot()
	if err != nil {
		return nil, err
	}

	store, err := itinerary.Load(snap)
	if err != nil {
		if errors.Is(err, types.ErrNoSnapshot) {
			return nil, errors.New("no trip in progress (run 'wanderplan new' first)")
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return store, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
