package types

import "errors"

// Trip validation errors. These block the operation and are surfaced to
// the caller unchanged.
var (
	ErrNameRequired      = errors.New("trip name is required")
	ErrLocationRequired  = errors.New("trip location is required")
	ErrStartDateRequired = errors.New("trip start date is required")
	ErrEndDateRequired   = errors.New("trip end date is required")
	ErrInvalidDateRange  = errors.New("trip start date is after end date")
)

// Itinerary errors.
var (
	// ErrItemNotFound is returned by update operations on an unknown
	// item id. Remove treats an unknown id as a no-op instead.
	ErrItemNotFound = errors.New("itinerary item not found")

	// ErrDayOutOfRange is returned when an item's day falls outside the
	// trip's [StartDate, EndDate] range.
	ErrDayOutOfRange = errors.New("item day outside trip date range")

	// ErrInvalidInterval is returned when an item's end time is not
	// strictly after its start time.
	ErrInvalidInterval = errors.New("item end time must be after start time")
)

// Catalog errors.
var (
	// ErrCatalogUnavailable wraps catalog fetch failures. The merge
	// layer degrades to user-added entries; the editor never hard-fails
	// on it.
	ErrCatalogUnavailable = errors.New("experience catalog unavailable")

	// ErrLocationNameRequired is returned when adding an ad-hoc
	// location experience without a human-entered name.
	ErrLocationNameRequired = errors.New("location name is required")
)

// Snapshot errors.
var (
	// ErrNoSnapshot is returned by snapshot Load when the current-trip
	// slot is empty.
	ErrNoSnapshot = errors.New("no trip snapshot present")
)
