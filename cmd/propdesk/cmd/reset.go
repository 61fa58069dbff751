package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Manage evaluation-cycle reset dates",
	Long: `Set or sweep account reset dates.

A reset date excludes earlier trades from the current evaluation window.
Sweeping clears reset dates that "now" has passed, starting a new cycle.

Examples:
  propdesk reset set EVAL-001 2024-04-01
  propdesk reset sweep EVAL-001`,
}

var resetSetCmd = &cobra.Command{
	Use:   "set <account> <YYYY-MM-DD>",
	Short: "Set an account's reset date",
	Args:  cobra.ExactArgs(2),
	RunE:  runResetSet,
}

var resetSweepCmd = &cobra.Command{
	Use:   "sweep <account>",
	Short: "Clear the reset date once it has passed",
	Args:  cobra.ExactArgs(1),
	RunE:  runResetSweep,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.AddCommand(resetSetCmd)
	resetCmd.AddCommand(resetSweepCmd)
}

func runResetSet(cmd *cobra.Command, args []string) error {
	reset, err := time.Parse("2006-01-02", args[1])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	a, err := s.LoadAccount(args[0])
	if err != nil {
		return err
	}
	a.ResetDate = &reset
	if err := s.SaveAccount(a); err != nil {
		return err
	}

	fmt.Printf("Account %s resets on %s\n", a.Number, reset.Format("2006-01-02"))
	return nil
}

func runResetSweep(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	cleared, err := s.ClearExpiredReset(args[0], time.Now())
	if err != nil {
		return err
	}
	if cleared {
		fmt.Printf("Cleared reset date for %s; new evaluation cycle started\n", args[0])
	} else {
		fmt.Printf("Nothing to clear for %s\n", args[0])
	}
	return nil
}
