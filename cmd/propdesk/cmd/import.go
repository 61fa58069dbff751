package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/propdesk/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <fills.csv>",
	Short: "Import trade fills from a CSV export",
	Long: `Import trade fills from a CSV export.

Expected columns: account,entry_date,pnl,commission
Files ending in .lzma are decompressed on the fly.

Examples:
  propdesk import fills.csv
  propdesk import history.csv.lzma`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	trades, err := importer.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("parse import: %w", err)
	}
	if len(trades) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	// Every referenced account must already exist; a typo in the export
	// should not silently create orphan fills.
	perAccount := map[string]int{}
	for _, t := range trades {
		if _, ok := perAccount[t.AccountNumber]; !ok {
			if _, err := s.LoadAccount(t.AccountNumber); err != nil {
				return fmt.Errorf("import references %w", err)
			}
		}
		perAccount[t.AccountNumber]++
	}

	if err := s.InsertTrades(trades); err != nil {
		return fmt.Errorf("insert trades: %w", err)
	}

	for number, n := range perAccount {
		fmt.Printf("Imported %d fills for %s\n", n, number)
	}
	return nil
}
