// Package saver flushes a finished trip to the persistence services:
// one durable block record per itinerary item, then the trip header.
//
// The batch is sequential, independent, and best-effort. A failed
// block write is logged and recorded in the report; it never aborts or
// rolls back the other writes. Whether partial success counts as
// success is the caller's policy, read off the report.
package saver

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// Block is the durable remote record created per itinerary item on
// save.
type Block struct {
	ID             string    `json:"id,omitempty"`
	TripID         string    `json:"tripId"`
	ItemID         string    `json:"itemId"`
	ExperienceID   string    `json:"experienceId,omitempty"`
	ExperienceName string    `json:"experienceName"`
	Day            time.Time `json:"day"`
	StartTime      float64   `json:"startTime"`
	EndTime        float64   `json:"endTime"`
	Price          float64   `json:"price"`
	Category       string    `json:"category,omitempty"`
}

// BlockFromItem builds the durable record for one item of a trip.
func BlockFromItem(trip *types.Trip, it types.ItineraryItem) Block {
	return Block{
		TripID:         trip.ID,
		ItemID:         it.ID,
		ExperienceID:   it.ExperienceID,
		ExperienceName: it.ExperienceName,
		Day:            it.Day,
		StartTime:      it.StartTime,
		EndTime:        it.EndTime,
		Price:          it.Price,
		Category:       it.Category,
	}
}

// TripService persists trip headers.
type TripService interface {
	Create(ctx context.Context, trip *types.Trip) (string, error)
	List(ctx context.Context) ([]types.Trip, error)
}

// BlockService persists per-item block records.
type BlockService interface {
	Create(ctx context.Context, block Block) (string, error)
}

// ItemResult records the outcome of one block write.
type ItemResult struct {
	ItemID  string
	BlockID string
	Err     error
}

// SaveReport is the per-item outcome list of a save batch.
type SaveReport struct {
	TripID string
	Items  []ItemResult
}

// AllSaved reports whether every block write succeeded.
func (r SaveReport) AllSaved() bool {
	for _, it := range r.Items {
		if it.Err != nil {
			return false
		}
	}
	return true
}

// Failed returns the results that carry an error.
func (r SaveReport) Failed() []ItemResult {
	var failed []ItemResult
	for _, it := range r.Items {
		if it.Err != nil {
			failed = append(failed, it)
		}
	}
	return failed
}

// Saver writes trips through the persistence services.
type Saver struct {
	trips  TripService
	blocks BlockService
}

// New returns a Saver over the given services.
func New(trips TripService, blocks BlockService) *Saver {
	return &Saver{trips: trips, blocks: blocks}
}

// Save writes one block per itinerary item, then the trip header.
// Block failures are logged, recorded, and skipped past. The returned
// error is non-nil only when the trip header write itself fails; the
// report is valid either way.
func (s *Saver) Save(ctx context.Context, trip *types.Trip) (SaveReport, error) {
	report := SaveReport{Items: make([]ItemResult, 0, len(trip.Itinerary))}

	for _, it := range trip.Itinerary {
		blockID, err := s.blocks.Create(ctx, BlockFromItem(trip, it))
		if err != nil {
			log.Printf("saver: block for item %s failed: %v", it.ID, err)
			report.Items = append(report.Items, ItemResult{ItemID: it.ID, Err: err})
			continue
		}
		report.Items = append(report.Items, ItemResult{ItemID: it.ID, BlockID: blockID})
	}

	tripID, err := s.trips.Create(ctx, trip)
	if err != nil {
		return report, fmt.Errorf("save trip header: %w", err)
	}
	report.TripID = tripID
	return report, nil
}
