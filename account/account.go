// Package account defines the evaluation-account domain types shared by the
// engine, the store and the CLI. An Account is a closed configuration struct:
// it is validated once when it enters the system and never merged with
// partial overrides afterwards.
package account

import (
	"fmt"
	"time"
)

// Account is the configuration of one prop-firm evaluation account for the
// current evaluation cycle.
type Account struct {
	Number          string  `json:"number" yaml:"number"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
	ProfitTarget    float64 `json:"profit_target" yaml:"profit_target"`

	// DrawdownThreshold is a positive loss magnitude, not an absolute level.
	DrawdownThreshold float64 `json:"drawdown_threshold" yaml:"drawdown_threshold"`
	TrailingDrawdown  bool    `json:"trailing_drawdown" yaml:"trailing_drawdown"`

	// TrailingStopProfit is the profit level at which a trailing drawdown
	// floor locks permanently. Zero means the floor never locks. Must be
	// zero when TrailingDrawdown is false.
	TrailingStopProfit float64 `json:"trailing_stop_profit" yaml:"trailing_stop_profit"`

	// ConsistencyPercentage caps the share of the baseline (target or total
	// profit) that a single day may contribute. Zero disables the check.
	ConsistencyPercentage float64 `json:"consistency_percentage" yaml:"consistency_percentage"`

	// ResetDate, when set, excludes trades entered strictly before it from
	// the current evaluation window. Cleared by maintenance once "now"
	// passes it; the engine never clears it.
	ResetDate *time.Time `json:"reset_date,omitempty" yaml:"reset_date,omitempty"`

	// PayoutCount tracks payouts recorded against this account. Maintained
	// by the store: incremented on SavePayout, decremented on DeletePayout.
	PayoutCount int `json:"payout_count" yaml:"payout_count"`
}

// Validate checks that the configuration is internally coherent.
func (a Account) Validate() error {
	if a.Number == "" {
		return fmt.Errorf("account number is required")
	}
	if a.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive")
	}
	if a.ProfitTarget < 0 {
		return fmt.Errorf("profit_target must not be negative")
	}
	if a.DrawdownThreshold < 0 {
		return fmt.Errorf("drawdown_threshold must not be negative")
	}
	if a.TrailingStopProfit < 0 {
		return fmt.Errorf("trailing_stop_profit must not be negative")
	}
	if !a.TrailingDrawdown && a.TrailingStopProfit != 0 {
		return fmt.Errorf("trailing_stop_profit requires trailing_drawdown")
	}
	if a.ConsistencyPercentage < 0 || a.ConsistencyPercentage > 100 {
		return fmt.Errorf("consistency_percentage must be between 0 and 100")
	}
	return nil
}

// TradeEvent is one recorded trade fill. Immutable once recorded.
type TradeEvent struct {
	AccountNumber string    `json:"account_number"`
	EntryDate     time.Time `json:"entry_date"`
	PnL           float64   `json:"pnl"`
	Commission    float64   `json:"commission"`
}

// Net is the trade's contribution to the account balance.
func (t TradeEvent) Net() float64 {
	return t.PnL - t.Commission
}

// PayoutEvent is one withdrawal request against accumulated profit.
type PayoutEvent struct {
	ID            string       `json:"id"`
	AccountNumber string       `json:"account_number"`
	Date          time.Time    `json:"date"`
	Amount        float64      `json:"amount"`
	Status        PayoutStatus `json:"status"`
}
