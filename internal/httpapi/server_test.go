package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/sqlite"
	"github.com/wanderplan/wanderplan/pkg/catalog"
	"github.com/wanderplan/wanderplan/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := sqlite.NewBackend()
	require.NoError(t, backend.Attach(sqlite.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { backend.Detach() })

	srv := httptest.NewServer(New(backend).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListExperiences(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/experiences?category=food&limit=50")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []types.Experience
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotEmpty(t, got, "seeded catalog should have food entries")
	for _, exp := range got {
		assert.Equal(t, "food", exp.Category)
		assert.NotNil(t, exp.Media.Images)
	}
}

func TestListExperiencesEmptyPageIsArray(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/experiences?category=no-such")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", buf.String(), "empty listing is a JSON array, not null")
}

func TestCatalogClientAgainstServer(t *testing.T) {
	srv := newTestServer(t)

	c := catalog.NewClient(srv.URL, srv.Client())
	got, err := c.List(context.Background(), catalog.ListOptions{Limit: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestCreateAndListTrips(t *testing.T) {
	srv := newTestServer(t)

	body := `{"name":"Kyoto week","location":"Japan","startDate":"2026-10-10","endDate":"2026-10-17","budget":4000}`
	resp, err := http.Post(srv.URL+"/api/trips", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "private", created["visibility"], "visibility defaults to private")

	listResp, err := http.Get(srv.URL + "/api/trips")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var trips []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&trips))
	require.Len(t, trips, 1)
	assert.Equal(t, "Kyoto week", trips[0]["name"])
	assert.Equal(t, "2026-10-10", trips[0]["startDate"])
}

func TestCreateTripValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"location":"Japan","startDate":"2026-10-10","endDate":"2026-10-17"}`},
		{"missing location", `{"name":"Trip","startDate":"2026-10-10","endDate":"2026-10-17"}`},
		{"inverted range", `{"name":"Trip","location":"Japan","startDate":"2026-10-17","endDate":"2026-10-10"}`},
		{"bad date format", `{"name":"Trip","location":"Japan","startDate":"10/10/2026","endDate":"2026-10-17"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/trips", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateAndListBlocks(t *testing.T) {
	srv := newTestServer(t)

	body := `{"tripId":"trip-1","itemId":"item-1","experienceName":"Harbor kayak rental","day":"2026-09-02","startTime":9.5,"endTime":11,"price":40,"category":"outdoors"}`
	resp, err := http.Post(srv.URL+"/api/blocks", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created["id"])

	listResp, err := http.Get(srv.URL + "/api/trips/trip-1/blocks")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var blocks []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "item-1", blocks[0]["itemId"])
	assert.Equal(t, 9.5, blocks[0]["startTime"])
}

func TestCreateBlockValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing trip id", `{"itemId":"item-1","day":"2026-09-02"}`},
		{"missing item id", `{"tripId":"trip-1","day":"2026-09-02"}`},
		{"bad day", `{"tripId":"trip-1","itemId":"item-1","day":"tomorrow"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/blocks", "application/json", bytes.NewBufferString(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
