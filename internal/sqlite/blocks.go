package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/pkg/saver"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// BlockStore persists the per-item durable records created on trip
// save. Implements saver.BlockService.
type BlockStore struct {
	backend *Backend
}

// Create inserts one block and returns its assigned id.
func (bs *BlockStore) Create(ctx context.Context, block saver.Block) (string, error) {
	if err := bs.backend.requireAttached(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating block id: %w", err)
	}

	_, err = bs.backend.db.ExecContext(ctx,
		`INSERT INTO blocks (block_id, trip_id, item_id, experience_id, experience_name,
                             day, start_time, end_time, price, category, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(),
		block.TripID,
		block.ItemID,
		block.ExperienceID,
		block.ExperienceName,
		types.FormatDay(block.Day),
		block.StartTime,
		block.EndTime,
		block.Price,
		block.Category,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting block: %w", err)
	}
	return id.String(), nil
}

// ListByTrip returns the blocks saved for one trip, in day and start
// order.
func (bs *BlockStore) ListByTrip(ctx context.Context, tripID string) ([]saver.Block, error) {
	if err := bs.backend.requireAttached(); err != nil {
		return nil, err
	}

	rows, err := bs.backend.db.QueryContext(ctx,
		`SELECT block_id, trip_id, item_id, experience_id, experience_name,
                day, start_time, end_time, price, category
         FROM blocks WHERE trip_id = ? ORDER BY day, start_time`, tripID)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer rows.Close()

	var blocks []saver.Block
	for rows.Next() {
		var (
			b   saver.Block
			day string
		)
		if err := rows.Scan(&b.ID, &b.TripID, &b.ItemID, &b.ExperienceID, &b.ExperienceName,
			&day, &b.StartTime, &b.EndTime, &b.Price, &b.Category); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		if b.Day, err = types.ParseDay(day); err != nil {
			return nil, fmt.Errorf("parsing block day: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
