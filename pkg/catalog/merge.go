// Package catalog supplies the draggable experience list: a fetched,
// read-only catalog page merged with user-added ad-hoc locations.
package catalog

import (
	"context"
	"log"
	"strings"

	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// Defaults for user-added location experiences.
const (
	defaultLocationDuration = "2 hours"
)

// LocationInput describes an ad-hoc place the user adds to the
// catalog. Name is required; Duration defaults to two hours and Price
// to zero.
type LocationInput struct {
	Name     string
	Address  string
	Duration string
	Price    float64
	Lat      float64
	Lng      float64
	PlaceRef string
	// PhotoURLs are plain image URL strings if the location provider
	// resolved any. Non-URL garbage is dropped, never stored.
	PhotoURLs []string
}

// Merger retains user-added location experiences for the session,
// keyed by normalized address, and prepends them to every fetched
// catalog page. A catalog refresh never evicts them.
type Merger struct {
	// ordered insertion sequence of user-added entries.
	added []types.Experience
	// byAddress indexes added entries with a usable address key.
	byAddress map[string]int
}

// NewMerger returns an empty merge layer.
func NewMerger() *Merger {
	return &Merger{byAddress: make(map[string]int)}
}

// AddLocation records a user-added location experience and returns it.
// A second add with the same normalized address replaces the first.
func (m *Merger) AddLocation(input LocationInput) (types.Experience, error) {
	if strings.TrimSpace(input.Name) == "" {
		return types.Experience{}, types.ErrLocationNameRequired
	}

	duration := input.Duration
	if strings.TrimSpace(duration) == "" {
		duration = defaultLocationDuration
	}
	price := input.Price
	if price < 0 {
		price = 0
	}

	exp := types.Experience{
		ID:         identity.NewID(),
		Name:       strings.TrimSpace(input.Name),
		Duration:   duration,
		Price:      price,
		Category:   "location",
		IsLocation: true,
		Media:      types.Media{Images: sanitizeURLs(input.PhotoURLs)},
	}
	if strings.TrimSpace(input.Address) != "" {
		exp.Location = &types.LocationRef{
			Address:  strings.TrimSpace(input.Address),
			Lat:      input.Lat,
			Lng:      input.Lng,
			PlaceRef: input.PlaceRef,
		}
	}

	if key := exp.AddressKey(); key != "" {
		if i, ok := m.byAddress[key]; ok {
			m.added[i] = exp
			return exp, nil
		}
		m.byAddress[key] = len(m.added)
	}
	m.added = append(m.added, exp)
	return exp, nil
}

// UserAdded returns the retained location experiences in insertion
// order.
func (m *Merger) UserAdded() []types.Experience {
	return append([]types.Experience(nil), m.added...)
}

// Merge prepends the user-added locations to a fetched catalog page,
// skipping fetched entries whose normalized address matches one
// already added by the user.
func (m *Merger) Merge(fetched []types.Experience) []types.Experience {
	out := make([]types.Experience, 0, len(m.added)+len(fetched))
	out = append(out, m.added...)
	for _, exp := range fetched {
		if key := exp.AddressKey(); key != "" {
			if _, dup := m.byAddress[key]; dup {
				continue
			}
		}
		out = append(out, exp)
	}
	return out
}

// MergeFetch lists a catalog page through the given lister and merges
// it. A fetch failure degrades to the user-added entries alone; the
// editor never hard-fails on catalog trouble.
func (m *Merger) MergeFetch(ctx context.Context, lister Lister, opts ListOptions) []types.Experience {
	fetched, err := lister.List(ctx, opts)
	if err != nil {
		log.Printf("catalog: fetch failed, showing user-added only: %v", err)
		return m.Merge(nil)
	}
	return m.Merge(fetched)
}

// Lister is the read side of the experience catalog service.
type Lister interface {
	List(ctx context.Context, opts ListOptions) ([]types.Experience, error)
}

// ListOptions filter and page a catalog listing. Category is an exact
// match; zero values mean no filter and server defaults.
type ListOptions struct {
	Category string
	Page     int
	Limit    int
}

func sanitizeURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			continue
		}
		out = append(out, u)
	}
	return out
}
