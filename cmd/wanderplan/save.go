// Save command: flush the current trip to durable storage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/pkg/saver"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current trip",
	Long: `Save the current trip: one durable block per itinerary item, then the
trip header. Failed items are reported and retried on the next save;
the planning session is cleared only when everything saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitUserError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		trips, err := backend.Trips()
		if err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}
		blocks, err := backend.Blocks()
		if err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}

		trip := store.Trip()
		report, err := saver.New(trips, blocks).Save(context.Background(), trip)
		if err != nil {
			fmt.Fprintln(os.Stderr, "save:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(report)
		}

		saved := len(report.Items) - len(report.Failed())
		fmt.Printf("Saved trip %s (%d/%d items)\n", report.TripID, saved, len(report.Items))
		for _, failed := range report.Failed() {
			fmt.Printf("  item %s failed: %v\n", failed.ItemID, failed.Err)
		}

		if report.AllSaved() {
			if err := store.ClearSnapshot(); err != nil {
				fmt.Fprintln(os.Stderr, "save: clear session:", err)
				os.Exit(exitSysError)
			}
			fmt.Println("Planning session closed")
		} else {
			fmt.Println("Session kept for retry")
		}
		return nil
	},
}
