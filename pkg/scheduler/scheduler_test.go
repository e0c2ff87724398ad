package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/itinerary"
	"github.com/wanderplan/wanderplan/pkg/types"
)

func day(s string) time.Time {
	d, err := types.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// yFor converts a clock hour to the pixel coordinate a pointer would
// release at, using the default render scale.
func yFor(hour float64) float64 {
	return geometry.TimeToPosition(hour, geometry.DefaultPxPerHour)
}

func newTestScheduler(t *testing.T) (*Scheduler, *itinerary.Store) {
	t.Helper()
	store := itinerary.New(nil)
	_, err := store.Create(types.TripDetails{
		Name:      "Lisbon long weekend",
		Location:  "Lisbon",
		StartDate: day("2026-06-01"),
		EndDate:   day("2026-06-05"),
		Budget:    2500,
	})
	require.NoError(t, err)
	return New(store, 0), store
}

func TestDropInsertsCatalogExperience(t *testing.T) {
	s, store := newTestScheduler(t)

	s.BeginDrag(DragPayload{Experience: &types.Experience{
		ID:       "exp-surf",
		Name:     "Surf lesson",
		Duration: "1.5 hours",
		Price:    45,
		Category: "outdoors",
	}})
	require.Equal(t, Dragging, s.State())

	res, err := s.Drop(day("2026-06-02"), yFor(14.0))
	require.NoError(t, err)
	assert.False(t, res.NoOp)
	assert.False(t, res.Rescheduled)
	assert.Equal(t, 14.0, res.Item.StartTime)
	assert.Equal(t, 15.5, res.Item.EndTime)
	assert.Equal(t, "afternoon", res.TimeSlot)
	assert.Equal(t, "exp-surf", res.Item.ExperienceID)
	assert.Equal(t, Idle, s.State())

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, res.Item.ID, items[0].ID)
}

func TestDropReschedulesExistingItem(t *testing.T) {
	s, store := newTestScheduler(t)

	added, err := store.AddItem(types.ItineraryItem{
		ExperienceName: "Tram tour",
		Day:            day("2026-06-02"),
		StartTime:      11,
		EndTime:        13,
	})
	require.NoError(t, err)

	s.BeginDrag(DragPayload{Item: &added})
	res, err := s.Drop(day("2026-06-03"), yFor(9.25))
	require.NoError(t, err)

	assert.True(t, res.Rescheduled)
	assert.Equal(t, added.ID, res.Item.ID, "reschedule keeps the id")
	assert.True(t, types.SameDay(day("2026-06-03"), res.Item.Day))
	assert.Equal(t, 9.25, res.Item.StartTime)
	assert.Equal(t, 11.25, res.Item.EndTime, "end shifts by the original duration")
	assert.Equal(t, "morning", res.TimeSlot)

	require.Len(t, store.Items(), 1, "reschedule must not duplicate the item")
}

func TestDropForeignItemPayloadInserts(t *testing.T) {
	s, store := newTestScheduler(t)

	// An item payload whose id is unknown to this trip: insert, not
	// reschedule.
	s.BeginDrag(DragPayload{Item: &types.ItineraryItem{
		ID:             "from-another-trip",
		ExperienceName: "Borrowed plan",
		Duration:       "2 hours",
	}})
	res, err := s.Drop(day("2026-06-02"), yFor(10))
	require.NoError(t, err)
	assert.False(t, res.Rescheduled)
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "from-another-trip", store.Items()[0].ID)
}

func TestDropWithoutPayloadFallsBackToLastCapture(t *testing.T) {
	s, store := newTestScheduler(t)

	s.BeginDrag(DragPayload{Experience: &types.Experience{
		ID:       "exp-wine",
		Name:     "Wine tasting",
		Duration: "2 hours",
	}})
	// Simulate the transferable payload being lost mid-gesture.
	s.BeginDrag(DragPayload{})

	res, err := s.Drop(day("2026-06-02"), yFor(17))
	require.NoError(t, err)
	assert.False(t, res.NoOp, "last in-memory capture serves as fallback")
	assert.Equal(t, "exp-wine", res.Item.ExperienceID)
	assert.Equal(t, "evening", res.TimeSlot)
	require.Len(t, store.Items(), 1)
}

func TestDropWithNothingIsNoOp(t *testing.T) {
	s, store := newTestScheduler(t)

	s.BeginDrag(DragPayload{})
	res, err := s.Drop(day("2026-06-02"), yFor(10))
	require.NoError(t, err, "a lost drop is not an error")
	assert.True(t, res.NoOp)
	assert.Empty(t, store.Items())
}

func TestCancelLeavesStoreUntouched(t *testing.T) {
	s, store := newTestScheduler(t)

	s.BeginDrag(DragPayload{Experience: &types.Experience{ID: "exp-1", Name: "Walk"}})
	s.UpdateDragPosition(yFor(12))
	s.Cancel()

	assert.Equal(t, Idle, s.State())
	assert.Empty(t, store.Items())
}

func TestDropClampsPointerPastColumnEdges(t *testing.T) {
	s, _ := newTestScheduler(t)

	s.BeginDrag(DragPayload{Experience: &types.Experience{
		ID: "exp-early", Name: "Sunrise hike", Duration: "1 hour",
	}})
	res, err := s.Drop(day("2026-06-02"), -400)
	require.NoError(t, err)
	assert.Equal(t, geometry.DayStartHour, res.Item.StartTime, "above the column clamps to day start")
}

func TestBeginDragSanitizesMedia(t *testing.T) {
	s, store := newTestScheduler(t)

	exp := &types.Experience{
		ID:       "exp-photos",
		Name:     "Photo walk",
		Duration: "1 hour",
		Media:    types.Media{Images: []string{"", "a.jpg"}},
	}
	s.BeginDrag(DragPayload{Experience: exp})
	res, err := s.Drop(day("2026-06-02"), yFor(10))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, res.Item.Media.Images)
	require.Len(t, store.Items(), 1)
	assert.Equal(t, []string{"", "a.jpg"}, exp.Media.Images, "caller's payload is not mutated")
}

func TestDropTimeSlotBoundaries(t *testing.T) {
	tests := []struct {
		hour float64
		want string
	}{
		{9, "morning"},
		{12, "afternoon"},
		{17, "evening"},
		{21.5, "night"},
	}

	for _, tt := range tests {
		s, _ := newTestScheduler(t)
		s.BeginDrag(DragPayload{Experience: &types.Experience{
			ID: "exp-1", Name: "Anything", Duration: "1 hour",
		}})
		res, err := s.Drop(day("2026-06-02"), yFor(tt.hour))
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.TimeSlot, "hour %v", tt.hour)
	}
}
