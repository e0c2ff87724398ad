package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTripDetailsValidate(t *testing.T) {
	valid := TripDetails{
		Name:      "Kyoto week",
		Location:  "Kyoto",
		StartDate: day("2026-04-01"),
		EndDate:   day("2026-04-07"),
	}

	tests := []struct {
		name    string
		mutate  func(*TripDetails)
		wantErr error
	}{
		{
			name:   "valid details",
			mutate: func(d *TripDetails) {},
		},
		{
			name:    "missing name",
			mutate:  func(d *TripDetails) { d.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing location",
			mutate:  func(d *TripDetails) { d.Location = "" },
			wantErr: ErrLocationRequired,
		},
		{
			name:    "missing start date",
			mutate:  func(d *TripDetails) { d.StartDate = time.Time{} },
			wantErr: ErrStartDateRequired,
		},
		{
			name:    "missing end date",
			mutate:  func(d *TripDetails) { d.EndDate = time.Time{} },
			wantErr: ErrEndDateRequired,
		},
		{
			name: "inverted range",
			mutate: func(d *TripDetails) {
				d.StartDate, d.EndDate = d.EndDate, d.StartDate
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "single day trip",
			mutate: func(d *TripDetails) {
				d.EndDate = d.StartDate
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripContainsDay(t *testing.T) {
	trip := &Trip{StartDate: day("2026-04-01"), EndDate: day("2026-04-07")}

	assert.True(t, trip.ContainsDay(day("2026-04-01")), "first day inclusive")
	assert.True(t, trip.ContainsDay(day("2026-04-07")), "last day inclusive")
	assert.True(t, trip.ContainsDay(day("2026-04-03")))
	assert.False(t, trip.ContainsDay(day("2026-03-31")))
	assert.False(t, trip.ContainsDay(day("2026-04-08")))

	// Time-of-day on either side must not matter.
	afternoon := day("2026-04-07").Add(15 * time.Hour)
	assert.True(t, trip.ContainsDay(afternoon))
}

func TestTripDays(t *testing.T) {
	trip := &Trip{StartDate: day("2026-04-01"), EndDate: day("2026-04-03")}
	days := trip.Days()
	require.Len(t, days, 3)
	assert.Equal(t, "2026-04-01", FormatDay(days[0]))
	assert.Equal(t, "2026-04-03", FormatDay(days[2]))

	inverted := &Trip{StartDate: day("2026-04-03"), EndDate: day("2026-04-01")}
	assert.Nil(t, inverted.Days())
}

func TestTripItemsOn(t *testing.T) {
	trip := &Trip{
		StartDate: day("2026-04-01"),
		EndDate:   day("2026-04-03"),
		Itinerary: []ItineraryItem{
			{ID: "a", Day: day("2026-04-01"), StartTime: 9, EndTime: 11},
			{ID: "b", Day: day("2026-04-02"), StartTime: 9, EndTime: 11},
			{ID: "c", Day: day("2026-04-01"), StartTime: 13, EndTime: 14},
		},
	}

	got := trip.ItemsOn(day("2026-04-01"))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "insertion order preserved")
	assert.Equal(t, "c", got[1].ID)
	assert.Empty(t, trip.ItemsOn(day("2026-04-03")))
}

func TestTripValidateItemDays(t *testing.T) {
	trip := &Trip{
		Name:      "Lisbon",
		Location:  "Lisbon",
		StartDate: day("2026-05-01"),
		EndDate:   day("2026-05-02"),
		Itinerary: []ItineraryItem{
			{ID: "a", Day: day("2026-05-09"), StartTime: 9, EndTime: 10},
		},
	}
	assert.ErrorIs(t, trip.Validate(), ErrDayOutOfRange)

	trip.Itinerary[0].Day = day("2026-05-02")
	assert.NoError(t, trip.Validate())
}
