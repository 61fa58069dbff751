// Package engine reconstructs a single chronologically consistent state for
// one evaluation account from its trade fills and payout records: running
// balance, high-water mark, drawdown floor, profit-target progress, the daily
// consistency check and a projected next-payout date.
//
// Every function here is a pure computation over immutable inputs. The engine
// performs no I/O, reads no clocks and owns no shared state; "now" and the
// reporting timezone are explicit parameters, so running it twice on the same
// inputs yields identical output.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/rustyeddy/propdesk/account"
)

// EventKind tags a normalized event as a trade fill or a payout.
type EventKind string

const (
	KindTrade  EventKind = "trade"
	KindPayout EventKind = "payout"
)

// Event is one entry in the normalized balance-delta stream.
type Event struct {
	Date  time.Time
	Delta float64
	Kind  EventKind

	// Payout metadata, zero-valued for trades.
	PayoutID string
	Status   account.PayoutStatus
}

// PayoutPolicy decides which payout statuses enter the balance stream.
type PayoutPolicy func(account.PayoutStatus) bool

// SettledOnly admits Validated and Paid payouts. This is the canonical
// policy: money not yet approved must not reduce the tracked balance.
func SettledOnly(s account.PayoutStatus) bool { return s.Settled() }

// AllStatuses admits every payout regardless of approval state.
func AllStatuses(account.PayoutStatus) bool { return true }

// Normalize merges the trades and payouts of one account into a single
// event stream sorted by date ascending, ties broken by insertion order
// (trades before payouts, each in input order).
//
// Trades entered strictly before the account's reset date are excluded.
// Payouts are admitted through the given policy; a nil policy means
// SettledOnly. A record carrying a different account number is a caller
// contract violation and fails immediately.
func Normalize(acct account.Account, trades []account.TradeEvent, payouts []account.PayoutEvent, include PayoutPolicy) ([]Event, error) {
	if include == nil {
		include = SettledOnly
	}

	events := make([]Event, 0, len(trades)+len(payouts))

	for i, t := range trades {
		if t.AccountNumber != acct.Number {
			return nil, fmt.Errorf("trade %d belongs to account %q, want %q", i, t.AccountNumber, acct.Number)
		}
		if acct.ResetDate != nil && t.EntryDate.Before(*acct.ResetDate) {
			continue
		}
		events = append(events, Event{
			Date:  t.EntryDate,
			Delta: t.Net(),
			Kind:  KindTrade,
		})
	}

	for _, p := range payouts {
		if p.AccountNumber != acct.Number {
			return nil, fmt.Errorf("payout %q belongs to account %q, want %q", p.ID, p.AccountNumber, acct.Number)
		}
		if !include(p.Status) {
			continue
		}
		events = append(events, Event{
			Date:     p.Date,
			Delta:    -p.Amount,
			Kind:     KindPayout,
			PayoutID: p.ID,
			Status:   p.Status,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events, nil
}
