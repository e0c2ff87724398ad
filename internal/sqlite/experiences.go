package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/pkg/catalog"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// ExperienceStore serves the experience catalog. Implements
// catalog.Lister.
type ExperienceStore struct {
	backend *Backend
}

// List returns a page of catalog entries. Category filters by exact
// match when set; zero page and limit fall back to the client
// defaults.
func (es *ExperienceStore) List(ctx context.Context, opts catalog.ListOptions) ([]types.Experience, error) {
	if err := es.backend.requireAttached(); err != nil {
		return nil, err
	}

	page := opts.Page
	if page <= 0 {
		page = catalog.DefaultPage
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = catalog.DefaultLimit
	}
	offset := (page - 1) * limit

	var (
		rows *sql.Rows
		err  error
	)
	if opts.Category != "" {
		rows, err = es.backend.db.QueryContext(ctx,
			`SELECT experience_id, name, duration, price, category, is_location, address, images
             FROM experiences WHERE category = ? ORDER BY name LIMIT ? OFFSET ?`,
			opts.Category, limit, offset)
	} else {
		rows, err = es.backend.db.QueryContext(ctx,
			`SELECT experience_id, name, duration, price, category, is_location, address, images
             FROM experiences ORDER BY name LIMIT ? OFFSET ?`,
			limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("querying experiences: %w", err)
	}
	defer rows.Close()

	var out []types.Experience
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

// Add inserts a catalog entry and returns its id. Used for user-added
// location entries, which are retained locally across catalog
// refreshes.
func (es *ExperienceStore) Add(ctx context.Context, exp types.Experience) (string, error) {
	if err := es.backend.requireAttached(); err != nil {
		return "", err
	}

	id := exp.ID
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating experience id: %w", err)
		}
		id = generated.String()
	}

	isLocation := 0
	if exp.IsLocation {
		isLocation = 1
	}
	address := ""
	if exp.Location != nil {
		address = exp.Location.Address
	}
	images := exp.Media.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("encoding experience images: %w", err)
	}

	_, err = es.backend.db.ExecContext(ctx,
		`INSERT INTO experiences (experience_id, name, duration, price, category, is_location, address, images)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, exp.Name, exp.Duration, exp.Price, exp.Category, isLocation, address, string(encoded))
	if err != nil {
		return "", fmt.Errorf("inserting experience: %w", err)
	}
	return id, nil
}

// ListUserLocations returns the user-added location entries, oldest
// first.
func (es *ExperienceStore) ListUserLocations(ctx context.Context) ([]types.Experience, error) {
	if err := es.backend.requireAttached(); err != nil {
		return nil, err
	}

	rows, err := es.backend.db.QueryContext(ctx,
		`SELECT experience_id, name, duration, price, category, is_location, address, images
         FROM experiences WHERE is_location = 1 ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var out []types.Experience
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

func scanExperience(rows *sql.Rows) (types.Experience, error) {
	var (
		exp        types.Experience
		isLocation int
		address    string
		images     string
	)
	if err := rows.Scan(&exp.ID, &exp.Name, &exp.Duration, &exp.Price,
		&exp.Category, &isLocation, &address, &images); err != nil {
		return types.Experience{}, fmt.Errorf("scanning experience: %w", err)
	}
	exp.IsLocation = isLocation != 0
	if address != "" {
		exp.Location = &types.LocationRef{Address: address}
	}
	if err := json.Unmarshal([]byte(images), &exp.Media.Images); err != nil {
		return types.Experience{}, fmt.Errorf("decoding experience images: %w", err)
	}
	exp.Media.Sanitize()
	return exp, nil
}
