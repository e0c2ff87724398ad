package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderplan/wanderplan/pkg/types"
)

func priced(prices ...float64) []types.ItineraryItem {
	items := make([]types.ItineraryItem, len(prices))
	for i, p := range prices {
		items[i] = types.ItineraryItem{Price: p}
	}
	return items
}

func TestTotalSpent(t *testing.T) {
	tests := []struct {
		name  string
		items []types.ItineraryItem
		want  float64
	}{
		{name: "empty", items: nil, want: 0},
		{name: "simple sum", items: priced(3000, 8000), want: 11000},
		{name: "zero prices", items: priced(0, 0, 150), want: 150},
		{name: "negative treated as zero", items: priced(-50, 100), want: 100},
		{name: "NaN treated as zero", items: priced(math.NaN(), 100), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalSpent(tt.items))
		})
	}
}

func TestRemaining(t *testing.T) {
	items := priced(3000, 8000)
	assert.Equal(t, -1000.0, Remaining(10000, items), "over budget goes negative")
	assert.Equal(t, 4000.0, Remaining(15000, items))
	assert.Less(t, Remaining(10000, items), 0.0)
	assert.GreaterOrEqual(t, Remaining(11000, items), 0.0)
}

func TestProgressPercent(t *testing.T) {
	items := priced(3000, 8000)
	assert.InDelta(t, 110, ProgressPercent(10000, items), 1e-9, "unclamped past 100")
	assert.InDelta(t, 55, ProgressPercent(20000, items), 1e-9)
	assert.Equal(t, 0.0, ProgressPercent(0, items), "no budget reports zero")
	assert.Equal(t, 0.0, ProgressPercent(-5, items))
}
