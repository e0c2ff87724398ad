// Show command: render the current trip's day timelines.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/budget"
	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/lanes"
	"github.com/wanderplan/wanderplan/pkg/types"
)

var showDay string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current trip's itinerary",
	Long: `Show the current trip day by day. Items that overlap in time are
placed in side-by-side lanes, the way the timeline renders them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitUserError)
		}

		trip := store.Trip()
		if flagJSON {
			return printJSON(trip)
		}

		days := trip.Days()
		if showDay != "" {
			day, err := types.ParseDay(showDay)
			if err != nil {
				fmt.Fprintf(os.Stderr, "show: --day must be YYYY-MM-DD, got %q\n", showDay)
				os.Exit(exitUserError)
			}
			days = []time.Time{types.Day(day)}
		}

		fmt.Printf("%s (%s), %s to %s\n",
			trip.Name, trip.Location,
			types.FormatDay(trip.StartDate), types.FormatDay(trip.EndDate))

		for _, day := range days {
			items := trip.ItemsOn(day)
			fmt.Printf("\n%s (%s)\n", types.FormatDay(day), day.Weekday())
			if len(items) == 0 {
				fmt.Println("  (nothing scheduled)")
				continue
			}

			for _, p := range lanes.Assign(items) {
				lane := ""
				if p.TotalLanes > 1 {
					lane = fmt.Sprintf("  [lane %d/%d, %.0f%% wide]",
						p.Lane+1, p.TotalLanes, p.WidthPercent())
				}
				fmt.Printf("  %s - %s  %-30s %9.2f%s\n",
					geometry.FormatClock(p.Item.StartTime),
					geometry.FormatClock(p.Item.EndTime),
					p.Item.ExperienceName, p.Item.Price, lane)
			}
		}

		spent := budget.TotalSpent(trip.Itinerary)
		if trip.Budget > 0 {
			fmt.Printf("\nBudget: %.2f spent of %.2f (%.0f%%)\n",
				spent, trip.Budget, budget.ProgressPercent(trip.Budget, trip.Itinerary))
		} else {
			fmt.Printf("\nTotal spent: %.2f\n", spent)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showDay, "day", "", "show a single day, YYYY-MM-DD")
}
