// Discard command: abandon the current planning session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Discard the current planning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "discard:", err)
			os.Exit(exitUserError)
		}

		if err := store.Discard(); err != nil {
			fmt.Fprintln(os.Stderr, "discard:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Planning session discarded")
		return nil
	},
}
