// Budget command: summarize spending on the current trip.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/budget"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the current trip's budget status",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "budget:", err)
			os.Exit(exitUserError)
		}

		trip := store.Trip()
		spent := budget.TotalSpent(trip.Itinerary)
		remaining := budget.Remaining(trip.Budget, trip.Itinerary)
		percent := budget.ProgressPercent(trip.Budget, trip.Itinerary)

		if flagJSON {
			return printJSON(map[string]float64{
				"budget":    trip.Budget,
				"spent":     spent,
				"remaining": remaining,
				"percent":   percent,
			})
		}

		fmt.Printf("Budget:    %.2f\n", trip.Budget)
		fmt.Printf("Spent:     %.2f\n", spent)
		fmt.Printf("Remaining: %.2f\n", remaining)
		if trip.Budget > 0 {
			fmt.Printf("Used:      %.0f%%\n", percent)
			if remaining < 0 {
				fmt.Println("Over budget")
			}
		}
		return nil
	},
}
