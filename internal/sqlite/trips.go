package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// TripStore persists trip headers. Implements saver.TripService.
type TripStore struct {
	backend *Backend
}

// Create inserts a trip header and returns the durable id the service
// assigned to it.
func (ts *TripStore) Create(ctx context.Context, trip *types.Trip) (string, error) {
	if err := ts.backend.requireAttached(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating trip id: %w", err)
	}

	_, err = ts.backend.db.ExecContext(ctx,
		`INSERT INTO trips (trip_id, name, location, start_date, end_date, budget, visibility, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(),
		trip.Name,
		trip.Location,
		types.FormatDay(trip.StartDate),
		types.FormatDay(trip.EndDate),
		trip.Budget,
		trip.Visibility,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting trip: %w", err)
	}
	return id.String(), nil
}

// List returns all saved trip headers, newest first. Itineraries are
// not hydrated; blocks are the per-item records.
func (ts *TripStore) List(ctx context.Context) ([]types.Trip, error) {
	if err := ts.backend.requireAttached(); err != nil {
		return nil, err
	}

	rows, err := ts.backend.db.QueryContext(ctx,
		`SELECT trip_id, name, location, start_date, end_date, budget, visibility, created_at
         FROM trips ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	var trips []types.Trip
	for rows.Next() {
		var (
			t                  types.Trip
			start, end, create string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &start, &end, &t.Budget, &t.Visibility, &create); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		if t.StartDate, err = types.ParseDay(start); err != nil {
			return nil, fmt.Errorf("parsing start date: %w", err)
		}
		if t.EndDate, err = types.ParseDay(end); err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, create); err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}
