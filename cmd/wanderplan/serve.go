// Serve command: run the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/internal/httpapi"
)

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the trip, block, and catalog services over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "serve:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		addr := flagListenAddr
		if addr == "" {
			addr = configListenAddr
		}

		fmt.Printf("Serving on %s\n", addr)
		return httpapi.New(backend).Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "listen", "", "listen address (default from config, :8080)")
}
