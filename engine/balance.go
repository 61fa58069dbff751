package engine

import (
	"sort"
	"time"
)

// Snapshot is the account state immediately after one event.
type Snapshot struct {
	Event         Event
	Balance       float64
	HighWaterMark float64
}

// Reconstruct walks the normalized stream once, maintaining the running
// balance and the high-water mark, both seeded at startingBalance.
//
// Only trade deltas can raise the high-water mark. A payout reduces the
// balance but never the historical peak: a withdrawal is not a new profit
// peak and must not erase one already recorded.
func Reconstruct(startingBalance float64, events []Event) []Snapshot {
	balance := startingBalance
	hwm := startingBalance

	snaps := make([]Snapshot, 0, len(events))
	for _, ev := range events {
		balance += ev.Delta
		if ev.Kind == KindTrade && balance > hwm {
			hwm = balance
		}
		snaps = append(snaps, Snapshot{Event: ev, Balance: balance, HighWaterMark: hwm})
	}
	return snaps
}

// DailyMetric is one calendar day of the charting series. It is a derived
// view, recomputed on every invocation, never persisted as source of truth.
type DailyMetric struct {
	Date           time.Time `json:"date"`
	DailyPnL       float64   `json:"daily_pnl"`
	RunningBalance float64   `json:"running_balance"`
	IsConsistent   bool      `json:"is_consistent"`
	Payout         *float64  `json:"payout,omitempty"`
}

// DailySeries aggregates the event stream per calendar day in the given
// location. Same-day trade deltas are summed before that day's payouts are
// applied; RunningBalance is the end-of-day balance. IsConsistent defaults
// to true and is refined once the consistency cap is known.
func DailySeries(startingBalance float64, events []Event, loc *time.Location) []DailyMetric {
	type bucket struct {
		day    time.Time
		pnl    float64
		payout float64
		paid   bool
	}

	buckets := map[string]*bucket{}
	for _, ev := range events {
		lt := ev.Date.In(loc)
		day := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &bucket{day: day}
			buckets[key] = b
		}
		switch ev.Kind {
		case KindTrade:
			b.pnl += ev.Delta
		case KindPayout:
			b.payout += -ev.Delta
			b.paid = true
		}
	}

	days := make([]DailyMetric, 0, len(buckets))
	for _, b := range buckets {
		m := DailyMetric{Date: b.day, DailyPnL: b.pnl, IsConsistent: true}
		if b.paid {
			amount := b.payout
			m.Payout = &amount
		}
		days = append(days, m)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	// End-of-day balance: trade PnL first, then that day's payouts.
	running := startingBalance
	for i := range days {
		running += days[i].DailyPnL
		if days[i].Payout != nil {
			running -= *days[i].Payout
		}
		days[i].RunningBalance = running
	}

	return days
}

// TradingDayCount returns the number of distinct calendar days carrying at
// least one trade, in the given location.
func TradingDayCount(events []Event, loc *time.Location) int {
	seen := map[string]struct{}{}
	for _, ev := range events {
		if ev.Kind != KindTrade {
			continue
		}
		seen[ev.Date.In(loc).Format("2006-01-02")] = struct{}{}
	}
	return len(seen)
}
