// Package identity generates itinerary item identifiers and enforces
// the id-uniqueness invariant at every store boundary.
package identity

import (
	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// NewID returns a fresh item identifier: a UUID v7, whose millisecond
// timestamp prefix plus random suffix makes a collision between two
// calls in one process implausible. Falls back to a random v4 on the
// v7 error path.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Normalize resolves each item's id from either the current or the
// legacy field, issues a fresh id for items with no id or an id already
// seen in this pass, strips the legacy field, and re-sanitizes media.
// The returned slice always has pairwise-distinct ids, even on
// corrupt or duplicated input such as the same catalog entry dragged
// twice.
func Normalize(items []types.ItineraryItem) []types.ItineraryItem {
	seen := make(map[string]bool, len(items))
	out := make([]types.ItineraryItem, len(items))
	for i, it := range items {
		id := it.ID
		if id == "" {
			id = it.LegacyID
		}
		if id == "" || seen[id] {
			id = NewID()
		}
		seen[id] = true

		it.ID = id
		it.LegacyID = ""
		it.Media.Sanitize()
		out[i] = it
	}
	return out
}
