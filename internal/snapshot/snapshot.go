// Package snapshot implements the local durable slot the in-progress
// trip lives in between remote saves. The slot is a single fixed key
// in a diskv store: overwritten on every mutation, cleared on discard
// or successful remote save, so a crash or reload resumes the
// in-progress plan.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// currentKey is the fixed logical slot for the trip in progress.
const currentKey = "current-trip"

// Store is a diskv-backed snapshot slot.
type Store struct {
	d *diskv.Diskv
}

// Open returns a snapshot store rooted at basePath, creating the
// directory lazily on first write.
func Open(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Save overwrites the slot with the given trip.
func (s *Store) Save(trip *types.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("snapshot: marshal trip: %w", err)
	}
	if err := s.d.Write(currentKey, data); err != nil {
		return fmt.Errorf("snapshot: write slot: %w", err)
	}
	return nil
}

// Load reads the slot. The loaded itinerary is normalized on the way
// out, so corrupt or duplicated snapshot contents cannot smuggle
// duplicate ids into the store. Returns types.ErrNoSnapshot when the
// slot is empty.
func (s *Store) Load() (*types.Trip, error) {
	data, err := s.d.Read(currentKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.ErrNoSnapshot
		}
		return nil, fmt.Errorf("snapshot: read slot: %w", err)
	}

	var trip types.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("snapshot: decode slot: %w", err)
	}
	trip.Itinerary = identity.Normalize(trip.Itinerary)
	return &trip, nil
}

// Clear empties the slot. Clearing an already-empty slot succeeds.
func (s *Store) Clear() error {
	if err := s.d.Erase(currentKey); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("snapshot: clear slot: %w", err)
	}
	return nil
}
