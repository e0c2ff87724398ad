// Move command: reschedule an item via the drag scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/scheduler"
	"github.com/wanderplan/wanderplan/pkg/types"
)

var (
	moveDay  string
	moveY    float64
	moveHour float64
)

var moveCmd = &cobra.Command{
	Use:   "move <item-id>",
	Short: "Move an item to a new day and time",
	Long: `Move an item through the drop scheduler. The target time is either
--start (an hour on the 24h clock) or --y (a pixel offset on the day
timeline, scaled by px_per_hour). The item keeps its duration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := types.ParseDay(moveDay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "move: --day must be YYYY-MM-DD, got %q\n", moveDay)
			os.Exit(exitUserError)
		}

		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitUserError)
		}

		var item *types.ItineraryItem
		for _, it := range store.Items() {
			if it.ID == args[0] {
				found := it
				item = &found
				break
			}
		}
		if item == nil {
			fmt.Fprintf(os.Stderr, "move: no item %q in the current trip\n", args[0])
			os.Exit(exitUserError)
		}

		y := moveY
		if cmd.Flags().Changed("start") {
			y = geometry.TimeToPosition(moveHour, configPxPerHour)
		}

		sched := scheduler.New(store, configPxPerHour)
		sched.BeginDrag(scheduler.DragPayload{Item: item})
		result, err := sched.Drop(day, y)
		if err != nil {
			fmt.Fprintln(os.Stderr, "move:", err)
			os.Exit(exitUserError)
		}
		if result.NoOp {
			fmt.Println("Nothing to move")
			return nil
		}

		if flagJSON {
			return printJSON(result.Item)
		}
		fmt.Printf("Moved %s to %s, %s to %s (%s)\n",
			result.Item.ExperienceName, types.FormatDay(result.Item.Day),
			geometry.FormatClock(result.Item.StartTime), geometry.FormatClock(result.Item.EndTime),
			result.TimeSlot)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveDay, "day", "", "target day, YYYY-MM-DD (required)")
	moveCmd.Flags().Float64Var(&moveY, "y", 0, "pixel offset on the day timeline")
	moveCmd.Flags().Float64Var(&moveHour, "start", 0, "target hour on the 24h clock (overrides --y)")

	moveCmd.MarkFlagRequired("day")
}
