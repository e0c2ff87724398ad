// Root command for the wanderplan CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var (
	configDataDir    string
	configCatalogURL string
	configListenAddr string
	configPxPerHour  float64
)

var rootCmd = &cobra.Command{
	Use:   "wanderplan",
	Short: "Wanderplan is a trip itinerary planner",
	Long: `Wanderplan plans trip itineraries on a day timeline: create a trip,
drop experiences onto days, watch the budget, and save the finished
plan. Sessions survive restarts through a local snapshot until saved
or discarded.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configCatalogURL = cfg.GetString(cfgKeyCatalogURL)
		configListenAddr = cfg.GetString(cfgKeyListenAddr)
		configPxPerHour = cfg.GetFloat64(cfgKeyPxPerHour)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.wanderplan-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(discardCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > WANDERPLAN_DATA_DIR env >
// default $(CWD)/.wanderplan-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > WANDERPLAN_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
