package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/types"
)

func testTrip() *types.Trip {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &types.Trip{
		ID:        "trip-1",
		Name:      "Kyoto week",
		Location:  "Kyoto",
		StartDate: day,
		EndDate:   day.AddDate(0, 0, 6),
		Budget:    10000,
		Itinerary: []types.ItineraryItem{
			{ID: "a", Day: day, StartTime: 9, EndTime: 11, ExperienceName: "Market tour"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Open(t.TempDir())
	require.NoError(t, s.Save(testTrip()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Kyoto week", got.Name)
	require.Len(t, got.Itinerary, 1)
	assert.Equal(t, "a", got.Itinerary[0].ID)
	assert.NotNil(t, got.Itinerary[0].Media.Images)
}

func TestLoadEmptySlot(t *testing.T) {
	s := Open(t.TempDir())
	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrNoSnapshot)
}

func TestSaveOverwrites(t *testing.T) {
	s := Open(t.TempDir())
	require.NoError(t, s.Save(testTrip()))

	second := testTrip()
	second.Name = "Kyoto revised"
	require.NoError(t, s.Save(second))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Kyoto revised", got.Name)
}

func TestClearIdempotent(t *testing.T) {
	s := Open(t.TempDir())
	require.NoError(t, s.Clear(), "clearing an empty slot succeeds")

	require.NoError(t, s.Save(testTrip()))
	require.NoError(t, s.Clear())
	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrNoSnapshot)

	require.NoError(t, s.Clear())
}

func TestLoadNormalizesCorruptItinerary(t *testing.T) {
	s := Open(t.TempDir())
	trip := testTrip()
	trip.Itinerary = append(trip.Itinerary, trip.Itinerary[0]) // duplicated id
	require.NoError(t, s.Save(trip))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Itinerary, 2)
	assert.NotEqual(t, got.Itinerary[0].ID, got.Itinerary[1].ID)
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Open(dir).Save(testTrip()))

	got, err := Open(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "trip-1", got.ID)
}
