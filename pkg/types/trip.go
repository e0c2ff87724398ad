package types

import (
	"time"
)

// Trip visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// DayLayout is the date-only layout used for trip and item days.
const DayLayout = "2006-01-02"

// Trip is the aggregate owned by the itinerary store: a date range, a
// budget, and the mutable set of scheduled items.
type Trip struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Location   string          `json:"location"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Budget     float64         `json:"budget"`
	Visibility string          `json:"visibility"`
	Itinerary  []ItineraryItem `json:"itinerary"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// TripDetails is the creation input for a Trip. Budget and Visibility
// are optional; Visibility defaults to private.
type TripDetails struct {
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Budget     float64   `json:"budget"`
	Visibility string    `json:"visibility"`
}

// Validate checks that the details carry every required field and that
// the date range is ordered. Returns the first sentinel error found.
func (d TripDetails) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Location == "" {
		return ErrLocationRequired
	}
	if d.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	if d.EndDate.IsZero() {
		return ErrEndDateRequired
	}
	if Day(d.EndDate).Before(Day(d.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// Validate checks the trip-level invariants: required fields, ordered
// date range, and every item's day within [StartDate, EndDate].
func (t *Trip) Validate() error {
	details := TripDetails{
		Name:      t.Name,
		Location:  t.Location,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
	}
	if err := details.Validate(); err != nil {
		return err
	}
	for i := range t.Itinerary {
		if !t.ContainsDay(t.Itinerary[i].Day) {
			return ErrDayOutOfRange
		}
	}
	return nil
}

// ContainsDay reports whether d falls within the trip's inclusive
// [StartDate, EndDate] range. Only the calendar date is compared.
func (t *Trip) ContainsDay(d time.Time) bool {
	day := Day(d)
	return !day.Before(Day(t.StartDate)) && !day.After(Day(t.EndDate))
}

// Days returns one date-only entry per calendar day of the trip, in
// order. An inverted range yields nil.
func (t *Trip) Days() []time.Time {
	start := Day(t.StartDate)
	end := Day(t.EndDate)
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ItemsOn returns the items scheduled on the given day, in itinerary
// order.
func (t *Trip) ItemsOn(d time.Time) []ItineraryItem {
	var items []ItineraryItem
	for _, it := range t.Itinerary {
		if SameDay(it.Day, d) {
			items = append(items, it)
		}
	}
	return items
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ParseDay parses a YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// FormatDay renders a time as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
