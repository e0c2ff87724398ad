package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/types"
)

func TestAddLocationRequiresName(t *testing.T) {
	m := NewMerger()
	_, err := m.AddLocation(LocationInput{Address: "Somewhere 1"})
	assert.ErrorIs(t, err, types.ErrLocationNameRequired)

	_, err = m.AddLocation(LocationInput{Name: "   "})
	assert.ErrorIs(t, err, types.ErrLocationNameRequired)
}

func TestAddLocationDefaults(t *testing.T) {
	m := NewMerger()
	exp, err := m.AddLocation(LocationInput{Name: "Corner café"})
	require.NoError(t, err)

	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, "2 hours", exp.Duration)
	assert.Equal(t, 0.0, exp.Price)
	assert.True(t, exp.IsLocation)
	assert.NotNil(t, exp.Media.Images, "photo list degrades to empty, never nil")
	assert.Empty(t, exp.Media.Images)
}

func TestAddLocationPhotoFiltering(t *testing.T) {
	m := NewMerger()
	exp, err := m.AddLocation(LocationInput{
		Name:      "Old lighthouse",
		Address:   "1 Cliff Rd",
		PhotoURLs: []string{"https://img.example/a.jpg", "", "not-a-url", "http://img.example/b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/a.jpg", "http://img.example/b.jpg"}, exp.Media.Images)
}

func TestMergePrependsAndDeduplicates(t *testing.T) {
	m := NewMerger()
	_, err := m.AddLocation(LocationInput{Name: "Corner café", Address: "12 Rue de Rivoli, Paris"})
	require.NoError(t, err)

	fetched := []types.Experience{
		{ID: "exp-1", Name: "Louvre tour"},
		{
			ID:       "exp-2",
			Name:     "Same café from provider",
			Location: &types.LocationRef{Address: "12 rue de rivoli,  PARIS"},
		},
	}

	merged := m.Merge(fetched)
	require.Len(t, merged, 2)
	assert.Equal(t, "Corner café", merged[0].Name, "user-added entries come first")
	assert.Equal(t, "exp-1", merged[1].ID)
}

func TestMergeSurvivesRefresh(t *testing.T) {
	m := NewMerger()
	_, err := m.AddLocation(LocationInput{Name: "Corner café", Address: "12 Rue"})
	require.NoError(t, err)

	// Two successive pages; the user entry is in both merges.
	first := m.Merge([]types.Experience{{ID: "a", Name: "A"}})
	second := m.Merge([]types.Experience{{ID: "b", Name: "B"}})
	assert.Equal(t, "Corner café", first[0].Name)
	assert.Equal(t, "Corner café", second[0].Name)
}

func TestAddLocationSameAddressReplaces(t *testing.T) {
	m := NewMerger()
	_, err := m.AddLocation(LocationInput{Name: "First name", Address: "12 Rue"})
	require.NoError(t, err)
	_, err = m.AddLocation(LocationInput{Name: "Corrected name", Address: "12 rue"})
	require.NoError(t, err)

	added := m.UserAdded()
	require.Len(t, added, 1)
	assert.Equal(t, "Corrected name", added[0].Name)
}

// failingLister always errors, standing in for an unreachable catalog
// service.
type failingLister struct{}

func (failingLister) List(context.Context, ListOptions) ([]types.Experience, error) {
	return nil, errors.New("connection refused")
}

func TestMergeFetchDegradesOnFailure(t *testing.T) {
	m := NewMerger()
	_, err := m.AddLocation(LocationInput{Name: "Corner café", Address: "12 Rue"})
	require.NoError(t, err)

	merged := m.MergeFetch(context.Background(), failingLister{}, ListOptions{})
	require.Len(t, merged, 1, "fetch failure degrades to user-added entries")
	assert.Equal(t, "Corner café", merged[0].Name)
}

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/experiences", r.URL.Path)
		assert.Equal(t, "outdoors", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"exp-1","name":"Kayak","duration":"2 hours","price":30,"media":{"images":["a.jpg",{"bad":"ref"}]}}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	got, err := c.List(context.Background(), ListOptions{Category: "outdoors", Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kayak", got[0].Name)
	assert.Equal(t, []string{"a.jpg"}, got[0].Media.Images, "non-string refs dropped on receive")
}

func TestClientListErrorsWrapCatalogUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.List(context.Background(), ListOptions{})
	assert.ErrorIs(t, err, types.ErrCatalogUnavailable)

	unreachable := NewClient("http://127.0.0.1:1", nil)
	_, err = unreachable.List(context.Background(), ListOptions{})
	assert.ErrorIs(t, err, types.ErrCatalogUnavailable)
}
