package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/propdesk/account"
	"github.com/rustyeddy/propdesk/pkg/id"
)

var payoutCmd = &cobra.Command{
	Use:   "payout",
	Short: "Record and manage payouts",
	Long: `Record payout requests and move them through their approval states.

Examples:
  propdesk payout add EVAL-001 1000
  propdesk payout add EVAL-001 1000 --date 2024-03-12
  propdesk payout list EVAL-001
  propdesk payout status 01HX... paid
  propdesk payout rm 01HX...`,
}

var payoutAddCmd = &cobra.Command{
	Use:   "add <account> <amount>",
	Short: "Record a payout request (status: pending)",
	Args:  cobra.ExactArgs(2),
	RunE:  runPayoutAdd,
}

var payoutListCmd = &cobra.Command{
	Use:   "list <account>",
	Short: "List payouts for an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayoutList,
}

var payoutStatusCmd = &cobra.Command{
	Use:   "status <payout-id> <pending|validated|refused|paid>",
	Short: "Set the approval state of a payout",
	Args:  cobra.ExactArgs(2),
	RunE:  runPayoutStatus,
}

var payoutRmCmd = &cobra.Command{
	Use:   "rm <payout-id>",
	Short: "Delete a payout",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayoutRm,
}

var payoutDate string

func init() {
	rootCmd.AddCommand(payoutCmd)
	payoutCmd.AddCommand(payoutAddCmd)
	payoutCmd.AddCommand(payoutListCmd)
	payoutCmd.AddCommand(payoutStatusCmd)
	payoutCmd.AddCommand(payoutRmCmd)

	payoutAddCmd.Flags().StringVar(&payoutDate, "date", "", "payout date (YYYY-MM-DD, default today)")
}

func runPayoutAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}

	date := time.Now().UTC()
	if payoutDate != "" {
		date, err = time.Parse("2006-01-02", payoutDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	p := account.PayoutEvent{
		ID:            id.New(),
		AccountNumber: args[0],
		Date:          date,
		Amount:        amount,
		Status:        account.PayoutPending,
	}
	if err := s.SavePayout(p); err != nil {
		return err
	}

	fmt.Printf("Recorded payout %s: %.2f for %s (pending)\n", p.ID, p.Amount, p.AccountNumber)
	return nil
}

func runPayoutList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	payouts, err := s.ListPayouts(args[0])
	if err != nil {
		return fmt.Errorf("list payouts: %w", err)
	}
	if len(payouts) == 0 {
		fmt.Println("No payouts.")
		return nil
	}

	for _, p := range payouts {
		fmt.Printf("%s  %s  %10.2f  %s\n", p.ID, p.Date.Format("2006-01-02"), p.Amount, p.Status)
	}
	return nil
}

func runPayoutStatus(cmd *cobra.Command, args []string) error {
	status, err := account.ParsePayoutStatus(args[1])
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.UpdatePayoutStatus(args[0], status); err != nil {
		return err
	}
	fmt.Printf("Payout %s is now %s\n", args[0], status)
	return nil
}

func runPayoutRm(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.DeletePayout(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted payout %s\n", args[0])
	return nil
}
