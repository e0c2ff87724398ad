// Package lanes lays out same-day itinerary items into non-overlapping
// horizontal rendering lanes.
//
// The assignment is a greedy coloring of the interval overlap graph,
// run in start-time order. It is deterministic for any input order and
// O(n²), but does not promise the minimal lane count an optimal
// coloring could reach.
package lanes

import (
	"sort"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// Placement annotates one item with its lane and the day's lane count.
// Every placement on a day reports the same TotalLanes, since that
// value drives a uniform column width.
type Placement struct {
	Item       types.ItineraryItem
	Lane       int
	TotalLanes int
}

// WidthPercent is the horizontal share of the day column occupied by
// this placement.
func (p Placement) WidthPercent() float64 {
	if p.TotalLanes <= 0 {
		return 100
	}
	return 100 / float64(p.TotalLanes)
}

// LeftPercent is the horizontal offset of this placement within the
// day column.
func (p Placement) LeftPercent() float64 {
	return float64(p.Lane) * p.WidthPercent()
}

// Overlaps reports whether two items' time intervals intersect.
// Intervals are half-open: touching endpoints do not overlap.
func Overlaps(a, b types.ItineraryItem) bool {
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}

// Assign computes lanes for the given same-day items. Items are sorted
// by start time (stable, so ties keep insertion order), each item takes
// the smallest lane not used by an already-placed overlapping neighbor,
// and every result reports the day-wide maximum lane count.
//
// Guarantee: no two mutually-overlapping items share a lane.
func Assign(items []types.ItineraryItem) []Placement {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]types.ItineraryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	lanes := make([]int, len(sorted))
	maxLane := 0
	for i := range sorted {
		used := make(map[int]bool)
		for j := 0; j < i; j++ {
			if Overlaps(sorted[i], sorted[j]) {
				used[lanes[j]] = true
			}
		}
		lane := 0
		for used[lane] {
			lane++
		}
		lanes[i] = lane
		if lane > maxLane {
			maxLane = lane
		}
	}

	total := maxLane + 1
	placements := make([]Placement, len(sorted))
	for i, it := range sorted {
		placements[i] = Placement{Item: it, Lane: lanes[i], TotalLanes: total}
	}
	return placements
}
