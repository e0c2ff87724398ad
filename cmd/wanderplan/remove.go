// Remove command: drop an item from the current trip.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the current trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitUserError)
		}

		if err := store.RemoveItem(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
