package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/propdesk/config"
	"github.com/rustyeddy/propdesk/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "propdesk",
	Short: "Track prop-firm evaluation accounts, drawdown and payouts",
	Long: `Propdesk tracks proprietary-trading-firm evaluation accounts.

It provides tools for:
  - Importing trade fills from CSV exports
  - Recording payouts and their approval states
  - Reconstructing balance, high-water mark and the drawdown floor
  - Checking profit-target progress and the daily consistency rule
  - Projecting the next payout date

Complete documentation is available at https://github.com/rustyeddy/propdesk`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./propdesk.yaml when present)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat("./propdesk.yaml"); err == nil {
		return config.LoadFromFile("./propdesk.yaml")
	}
	return config.Default(), nil
}

func openStore() (*store.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.NewSQLite(cfg.Store.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
