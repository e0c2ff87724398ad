// Package budget aggregates itinerary spend against a trip budget.
package budget

import (
	"math"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// TotalSpent sums item prices. Missing, negative, or NaN prices count
// as zero.
func TotalSpent(items []types.ItineraryItem) float64 {
	total := 0.0
	for _, it := range items {
		if math.IsNaN(it.Price) || it.Price < 0 {
			continue
		}
		total += it.Price
	}
	return total
}

// Remaining is the budget minus total spend. Negative when over budget.
func Remaining(budget float64, items []types.ItineraryItem) float64 {
	return budget - TotalSpent(items)
}

// ProgressPercent is spend as a percentage of budget. Zero when the
// budget is not positive. The value is unclamped: over-budget trips
// report more than 100, and only a visual fill should ever be capped.
func ProgressPercent(budget float64, items []types.ItineraryItem) float64 {
	if budget <= 0 {
		return 0
	}
	return TotalSpent(items) / budget * 100
}
