// Package geometry maps between clock hours and the linear render
// coordinate of a day column, and parses human duration strings.
//
// The visible day spans [DayStartHour, DayEndHour]. Items recorded with
// an end past 24 are not remapped: positions past the day edge are
// reported unchanged and it is up to the renderer what to do with the
// overhang. No wrap-around semantics are defined for them.
package geometry

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	// DayStartHour is the first visible clock hour of a day column.
	DayStartHour = 6.0
	// DayEndHour is the last visible clock hour of a day column.
	DayEndHour = 24.0

	// DefaultPxPerHour is the render scale used when a caller passes no
	// explicit scale.
	DefaultPxPerHour = 60.0

	// DefaultDurationHours is the fallback for unparseable duration
	// strings. A deliberate default, not a silent zero: a two-hour
	// block keeps a malformed catalog entry visible and schedulable.
	DefaultDurationHours = 2.0
)

// durationPattern matches the leading decimal number before "hour" or
// "hours", e.g. "1.5 hours", "2 Hour walk".
var durationPattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*hours?`)

// ParseDurationHours extracts the numeric hour count from a display
// duration string. Unparseable input yields DefaultDurationHours.
func ParseDurationHours(text string) float64 {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultDurationHours
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultDurationHours
	}
	return v
}

// FormatClock renders a decimal hour as "h:mm AM/PM". Hours 0 and 24
// render as 12; the fractional part becomes minutes.
func FormatClock(hour float64) string {
	h := int(hour)
	minutes := int(math.Round((hour - float64(h)) * 60))
	if minutes == 60 {
		h++
		minutes = 0
	}

	period := "AM"
	if h >= 12 && h < 24 {
		period = "PM"
	}

	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, period)
}

// TimeToPosition converts a clock hour to a vertical pixel offset in a
// day column. Hours before DayStartHour wrap by +24, so an item whose
// nominal start was recorded as 2 (2 AM of the next calendar slot)
// still lands inside the same rendered column. Pass pxPerHour <= 0 to
// use DefaultPxPerHour.
func TimeToPosition(hour, pxPerHour float64) float64 {
	if pxPerHour <= 0 {
		pxPerHour = DefaultPxPerHour
	}
	if hour < DayStartHour {
		hour += 24
	}
	return (hour - DayStartHour) * pxPerHour
}

// PositionToTime converts a vertical pixel offset back to a clock hour,
// clamped to [DayStartHour, DayEndHour]. Pass pxPerHour <= 0 to use
// DefaultPxPerHour. Inverse of TimeToPosition for hours in range.
func PositionToTime(y, pxPerHour float64) float64 {
	if pxPerHour <= 0 {
		pxPerHour = DefaultPxPerHour
	}
	hour := DayStartHour + y/pxPerHour
	if hour < DayStartHour {
		return DayStartHour
	}
	if hour > DayEndHour {
		return DayEndHour
	}
	return hour
}

// Coarse time-of-day boundaries used by TimeSlotLabel.
const (
	afternoonStart = 12.0
	eveningStart   = 17.0
	nightStart     = 21.0
)

// TimeSlotLabel derives the coarse display label for a drop time.
func TimeSlotLabel(hour float64) string {
	switch {
	case hour < afternoonStart:
		return "morning"
	case hour < eveningStart:
		return "afternoon"
	case hour < nightStart:
		return "evening"
	default:
		return "night"
	}
}
