// New command: start a planning session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/itinerary"
	"github.com/wanderplan/wanderplan/pkg/types"
)

var (
	newName       string
	newLocation   string
	newStart      string
	newEnd        string
	newBudget     float64
	newVisibility string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start planning a new trip",
	Long: `Start a new planning session. The trip becomes the current session,
snapshotted locally after every change until saved or discarded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		details := types.TripDetails{
			Name:       newName,
			Location:   newLocation,
			Budget:     newBudget,
			Visibility: newVisibility,
		}

		var err error
		if newStart != "" {
			if details.StartDate, err = types.ParseDay(newStart); err != nil {
				fmt.Fprintf(os.Stderr, "new: --start must be YYYY-MM-DD, got %q\n", newStart)
				os.Exit(exitUserError)
			}
		}
		if newEnd != "" {
			if details.EndDate, err = types.ParseDay(newEnd); err != nil {
				fmt.Fprintf(os.Stderr, "new: --end must be YYYY-MM-DD, got %q\n", newEnd)
				os.Exit(exitUserError)
			}
		}

		snap, err := openSnapshot()
		if err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitSysError)
		}

		store := itinerary.New(snap)
		trip, err := store.Create(details)
		if err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(trip)
		}
		fmt.Printf("Planning %s (%s), %s to %s\n",
			trip.Name, trip.Location, types.FormatDay(trip.StartDate), types.FormatDay(trip.EndDate))
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "trip name (required)")
	newCmd.Flags().StringVar(&newLocation, "location", "", "trip destination (required)")
	newCmd.Flags().StringVar(&newStart, "start", "", "first day, YYYY-MM-DD (required)")
	newCmd.Flags().StringVar(&newEnd, "end", "", "last day, YYYY-MM-DD (required)")
	newCmd.Flags().Float64Var(&newBudget, "budget", 0, "trip budget")
	newCmd.Flags().StringVar(&newVisibility, "visibility", "", "public or private (default private)")

	newCmd.MarkFlagRequired("name")
	newCmd.MarkFlagRequired("location")
	newCmd.MarkFlagRequired("start")
	newCmd.MarkFlagRequired("end")
}
