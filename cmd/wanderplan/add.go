// Add command: schedule an item on the current trip.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/types"
)

var (
	addName       string
	addDay        string
	addStart      float64
	addEnd        float64
	addDuration   string
	addPrice      float64
	addCategory   string
	addExperience string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the current trip",
	Long: `Add an item to the current trip's itinerary. When --end is omitted
the end time comes from --duration (e.g. "1.5 hours"), defaulting to
two hours.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := types.ParseDay(addDay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "add: --day must be YYYY-MM-DD, got %q\n", addDay)
			os.Exit(exitUserError)
		}

		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		item, err := store.AddItem(types.ItineraryItem{
			ExperienceID:   addExperience,
			ExperienceName: addName,
			Day:            day,
			StartTime:      addStart,
			EndTime:        addEnd,
			Duration:       addDuration,
			Price:          addPrice,
			Category:       addCategory,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(item)
		}
		fmt.Printf("Added %s on %s, %s to %s (%s)\n",
			item.ExperienceName, types.FormatDay(item.Day),
			geometry.FormatClock(item.StartTime), geometry.FormatClock(item.EndTime),
			geometry.TimeSlotLabel(item.StartTime))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "experience name (required)")
	addCmd.Flags().StringVar(&addDay, "day", "", "trip day, YYYY-MM-DD (required)")
	addCmd.Flags().Float64Var(&addStart, "start", 9, "start hour on the 24h clock (e.g. 14.5)")
	addCmd.Flags().Float64Var(&addEnd, "end", 0, "end hour; computed from --duration when omitted")
	addCmd.Flags().StringVar(&addDuration, "duration", "", `duration text, e.g. "2 hours"`)
	addCmd.Flags().Float64Var(&addPrice, "price", 0, "item price")
	addCmd.Flags().StringVar(&addCategory, "category", "", "item category")
	addCmd.Flags().StringVar(&addExperience, "experience", "", "catalog experience id")

	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("day")
}
