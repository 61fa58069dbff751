package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/propdesk/account"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage evaluation accounts",
	Long: `Create, list and delete evaluation accounts.

Examples:
  propdesk account add EVAL-001 --balance 50000 --target 3000 --drawdown 2000 --trailing --trailing-stop 2000
  propdesk account list
  propdesk account rm EVAL-001`,
}

var accountAddCmd = &cobra.Command{
	Use:   "add <number>",
	Short: "Create or update an evaluation account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountAdd,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountRmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Delete an account and all its trades and payouts",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountRm,
}

var (
	accountBalance      float64
	accountTarget       float64
	accountDrawdown     float64
	accountTrailing     bool
	accountTrailingStop float64
	accountConsistency  float64
	accountResetDate    string
)

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountAddCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountRmCmd)

	accountAddCmd.Flags().Float64Var(&accountBalance, "balance", 0, "starting balance (required)")
	accountAddCmd.Flags().Float64Var(&accountTarget, "target", 0, "profit target (0 disables target tracking)")
	accountAddCmd.Flags().Float64Var(&accountDrawdown, "drawdown", 0, "drawdown threshold as a loss magnitude")
	accountAddCmd.Flags().BoolVar(&accountTrailing, "trailing", false, "trail the drawdown floor with the high-water mark")
	accountAddCmd.Flags().Float64Var(&accountTrailingStop, "trailing-stop", 0, "profit at which a trailing floor locks (0 = never)")
	accountAddCmd.Flags().Float64Var(&accountConsistency, "consistency", 0, "max single-day share of the baseline, in percent (0 disables)")
	accountAddCmd.Flags().StringVar(&accountResetDate, "reset-date", "", "exclude trades before this date (YYYY-MM-DD)")
	_ = accountAddCmd.MarkFlagRequired("balance")
}

func runAccountAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	a := account.Account{
		Number:                args[0],
		StartingBalance:       accountBalance,
		ProfitTarget:          accountTarget,
		DrawdownThreshold:     accountDrawdown,
		TrailingDrawdown:      accountTrailing,
		TrailingStopProfit:    accountTrailingStop,
		ConsistencyPercentage: accountConsistency,
	}
	if accountResetDate != "" {
		reset, err := time.Parse("2006-01-02", accountResetDate)
		if err != nil {
			return fmt.Errorf("reset-date: %w", err)
		}
		a.ResetDate = &reset
	}

	if err := s.SaveAccount(a); err != nil {
		return err
	}

	fmt.Printf("Saved account %s (balance %.2f, target %.2f, drawdown %.2f)\n",
		a.Number, a.StartingBalance, a.ProfitTarget, a.DrawdownThreshold)
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	accounts, err := s.ListAccounts()
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts.")
		return nil
	}

	for _, a := range accounts {
		mode := "static"
		if a.TrailingDrawdown {
			mode = "trailing"
		}
		fmt.Printf("%-12s balance=%.2f target=%.2f drawdown=%.2f (%s) payouts=%d",
			a.Number, a.StartingBalance, a.ProfitTarget, a.DrawdownThreshold, mode, a.PayoutCount)
		if a.ResetDate != nil {
			fmt.Printf(" reset=%s", a.ResetDate.Format("2006-01-02"))
		}
		fmt.Println()
	}
	return nil
}

func runAccountRm(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.DeleteAccount(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted account %s and its trades and payouts\n", args[0])
	return nil
}
