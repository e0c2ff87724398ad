// Package itinerary owns the Trip aggregate and its durable snapshot.
//
// The store assumes a single active editor: operations are applied one
// at a time and the type is not safe for concurrent use. Every
// mutation re-normalizes the whole itinerary first, so the id
// uniqueness invariant holds even when a load or a drag payload
// introduced duplicates upstream.
package itinerary

import (
	"fmt"
	"log"
	"time"

	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// Snapshotter is the durable local slot the in-progress trip lives in
// between mutations. Implementations overwrite on Save, return
// types.ErrNoSnapshot from Load when empty, and Clear on discard or
// successful remote save.
type Snapshotter interface {
	Save(trip *types.Trip) error
	Load() (*types.Trip, error)
	Clear() error
}

// Store holds the current in-progress trip.
type Store struct {
	trip *types.Trip
	snap Snapshotter
}

// New returns an empty store bound to the given snapshot slot. A nil
// Snapshotter disables durability; useful in tests.
func New(snap Snapshotter) *Store {
	return &Store{snap: snap}
}

// Load resumes the in-progress trip from the snapshot slot. The loaded
// itinerary is normalized before use, tolerating corrupt or duplicated
// snapshot contents. Returns types.ErrNoSnapshot when the slot is
// empty.
func Load(snap Snapshotter) (*Store, error) {
	if snap == nil {
		return nil, types.ErrNoSnapshot
	}
	trip, err := snap.Load()
	if err != nil {
		return nil, err
	}
	trip.Itinerary = identity.Normalize(trip.Itinerary)
	return &Store{trip: trip, snap: snap}, nil
}

// Create validates the details and starts a new empty trip, replacing
// whatever the store previously held.
func (s *Store) Create(details types.TripDetails) (*types.Trip, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	visibility := details.Visibility
	if visibility == "" {
		visibility = types.VisibilityPrivate
	}

	now := time.Now().UTC()
	s.trip = &types.Trip{
		ID:         identity.NewID(),
		Name:       details.Name,
		Location:   details.Location,
		StartDate:  types.Day(details.StartDate),
		EndDate:    types.Day(details.EndDate),
		Budget:     details.Budget,
		Visibility: visibility,
		Itinerary:  []types.ItineraryItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.persist()
	return s.Trip(), nil
}

// Open replaces the store's trip with an externally supplied one (for
// example a trip fetched from the persistence service). The itinerary
// is normalized on the way in.
func (s *Store) Open(trip *types.Trip) {
	trip.Itinerary = identity.Normalize(trip.Itinerary)
	s.trip = trip
	s.persist()
}

// Trip returns a copy of the current trip, or nil when no trip is
// open. The itinerary slice is copied so callers cannot mutate store
// state through it.
func (s *Store) Trip() *types.Trip {
	if s.trip == nil {
		return nil
	}
	cp := *s.trip
	cp.Itinerary = append([]types.ItineraryItem(nil), s.trip.Itinerary...)
	return &cp
}

// Items returns a copy of the current itinerary.
func (s *Store) Items() []types.ItineraryItem {
	if s.trip == nil {
		return nil
	}
	return append([]types.ItineraryItem(nil), s.trip.Itinerary...)
}

// AddItem appends a candidate to the itinerary. The candidate keeps
// its id only when it carries one not already present in the trip;
// otherwise a fresh id is issued. A missing end time is computed from
// the start time plus the parsed duration string.
func (s *Store) AddItem(candidate types.ItineraryItem) (types.ItineraryItem, error) {
	if s.trip == nil {
		return types.ItineraryItem{}, fmt.Errorf("add item: no trip open")
	}

	s.trip.Itinerary = identity.Normalize(s.trip.Itinerary)

	id := candidate.ID
	if id == "" {
		id = candidate.LegacyID
	}
	if id == "" || s.hasItem(id) {
		id = identity.NewID()
	}
	candidate.ID = id
	candidate.LegacyID = ""
	candidate.Day = types.Day(candidate.Day)
	candidate.Media.Sanitize()

	if candidate.EndTime <= candidate.StartTime {
		candidate.EndTime = candidate.StartTime + geometry.ParseDurationHours(candidate.Duration)
	}
	if err := candidate.Validate(); err != nil {
		return types.ItineraryItem{}, err
	}
	if !s.trip.ContainsDay(candidate.Day) {
		return types.ItineraryItem{}, types.ErrDayOutOfRange
	}

	s.trip.Itinerary = append(s.trip.Itinerary, candidate)
	s.touch()
	return candidate, nil
}

// ItemPatch is the partial update applied by UpdateItem. Nil fields
// are left unchanged.
type ItemPatch struct {
	Day       *time.Time
	StartTime *float64
	EndTime   *float64
}

// UpdateItem merges the patch into the item with the given id.
// Returns types.ErrItemNotFound when no such item exists.
func (s *Store) UpdateItem(id string, patch ItemPatch) (types.ItineraryItem, error) {
	if s.trip == nil {
		return types.ItineraryItem{}, types.ErrItemNotFound
	}

	s.trip.Itinerary = identity.Normalize(s.trip.Itinerary)

	idx := -1
	for i := range s.trip.Itinerary {
		if s.trip.Itinerary[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ItineraryItem{}, types.ErrItemNotFound
	}

	updated := s.trip.Itinerary[idx]
	if patch.Day != nil {
		updated.Day = types.Day(*patch.Day)
	}
	if patch.StartTime != nil {
		updated.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		updated.EndTime = *patch.EndTime
	}

	if err := updated.Validate(); err != nil {
		return types.ItineraryItem{}, err
	}
	if !s.trip.ContainsDay(updated.Day) {
		return types.ItineraryItem{}, types.ErrDayOutOfRange
	}

	s.trip.Itinerary[idx] = updated
	s.touch()
	return updated, nil
}

// RemoveItem filters the item out of the itinerary. Removing an absent
// id is a no-op, not an error.
func (s *Store) RemoveItem(id string) error {
	if s.trip == nil {
		return nil
	}

	s.trip.Itinerary = identity.Normalize(s.trip.Itinerary)

	kept := s.trip.Itinerary[:0]
	for _, it := range s.trip.Itinerary {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.trip.Itinerary = kept
	s.touch()
	return nil
}

// HasItem reports whether the itinerary contains the given id.
func (s *Store) HasItem(id string) bool {
	if s.trip == nil {
		return false
	}
	return s.hasItem(id)
}

// Discard drops the in-progress trip and clears the snapshot slot.
func (s *Store) Discard() error {
	s.trip = nil
	if s.snap == nil {
		return nil
	}
	return s.snap.Clear()
}

// ClearSnapshot empties the snapshot slot without touching the
// in-memory trip. Called after a successful remote save.
func (s *Store) ClearSnapshot() error {
	if s.snap == nil {
		return nil
	}
	return s.snap.Clear()
}

func (s *Store) hasItem(id string) bool {
	for i := range s.trip.Itinerary {
		if s.trip.Itinerary[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) touch() {
	s.trip.UpdatedAt = time.Now().UTC()
	s.persist()
}

// persist writes the snapshot. A write failure is logged but does not
// fail the mutation: the editor stays usable from memory.
func (s *Store) persist() {
	if s.snap == nil || s.trip == nil {
		return
	}
	if err := s.snap.Save(s.trip); err != nil {
		log.Printf("itinerary: snapshot save failed: %v", err)
	}
}
