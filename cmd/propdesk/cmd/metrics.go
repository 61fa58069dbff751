package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/propdesk/engine"
	"github.com/rustyeddy/propdesk/report"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics <account>",
	Short: "Compute and display evaluation metrics",
	Long: `Recompute the full evaluation state of one account from its recorded
trade fills and payouts: balance, high-water mark, drawdown floor,
target progress, the consistency check and the projected payout date.

Examples:
  propdesk metrics EVAL-001
  propdesk metrics EVAL-001 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMetrics,
}

var metricsJSON bool

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "emit the metrics record as JSON")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	acct, err := s.LoadAccount(args[0])
	if err != nil {
		return err
	}
	trades, err := s.ListTrades(acct.Number)
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}
	payouts, err := s.ListPayouts(acct.Number)
	if err != nil {
		return fmt.Errorf("load payouts: %w", err)
	}

	policy := engine.SettledOnly
	if cfg.Payout.Policy == "all" {
		policy = engine.AllStatuses
	}

	m, err := engine.ComputeWithPolicy(acct, trades, payouts, time.Now(), loc, policy)
	if err != nil {
		return err
	}

	if metricsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	out, err := report.FormatMetricsOrg(m)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}
	fmt.Println(out)
	return nil
}
