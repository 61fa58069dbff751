package engine

import (
	"fmt"
	"time"

	"github.com/rustyeddy/propdesk/account"
)

// Metrics is the full derived state of one evaluation account. It is a plain
// serializable record: the sole contract consumed by reporting and any
// dashboard surface.
type Metrics struct {
	AccountNumber string    `json:"account_number"`
	ComputedAt    time.Time `json:"computed_at"`

	CurrentBalance float64 `json:"current_balance"`
	HighWaterMark  float64 `json:"high_water_mark"`

	DrawdownFloor       float64  `json:"drawdown_floor"`
	RemainingLoss       float64  `json:"remaining_loss"`
	DrawdownProgressPct *float64 `json:"drawdown_progress_pct,omitempty"`
	Breached            bool     `json:"breached"`
	FloorLocked         bool     `json:"floor_locked"`

	Target      TargetProgress    `json:"target"`
	Consistency ConsistencyResult `json:"consistency"`

	NextPayoutProjection *time.Time `json:"next_payout_projection,omitempty"`

	Daily []DailyMetric `json:"daily"`
}

// Compute derives the complete metrics record for one account from its trade
// fills and payout records, with the canonical settled-only payout policy.
//
// It fails only on caller contract violations: a record tagged with a
// different account number, or a missing location. Degenerate data (empty
// trade set, unconfigured target, flat PnL) is representable output, never
// an error and never a NaN.
func Compute(acct account.Account, trades []account.TradeEvent, payouts []account.PayoutEvent, now time.Time, loc *time.Location) (Metrics, error) {
	return ComputeWithPolicy(acct, trades, payouts, now, loc, SettledOnly)
}

// ComputeWithPolicy is Compute with an explicit payout inclusion policy for
// the balance stream. Target progress always counts settled payouts only,
// whatever the stream policy; the policy controls what the balance and the
// daily series show.
func ComputeWithPolicy(acct account.Account, trades []account.TradeEvent, payouts []account.PayoutEvent, now time.Time, loc *time.Location, include PayoutPolicy) (Metrics, error) {
	if loc == nil {
		return Metrics{}, fmt.Errorf("compute %q: reporting location is required", acct.Number)
	}

	events, err := Normalize(acct, trades, payouts, include)
	if err != nil {
		return Metrics{}, fmt.Errorf("compute %q: %w", acct.Number, err)
	}

	m := Metrics{
		AccountNumber:  acct.Number,
		ComputedAt:     now,
		CurrentBalance: acct.StartingBalance,
		HighWaterMark:  acct.StartingBalance,
	}

	snaps := Reconstruct(acct.StartingBalance, events)

	// Walk every snapshot so the trailing-stop lock engages at the point
	// the profit level was first reached, and a breach anywhere in the
	// stream is recorded even if the balance later recovers.
	calc := NewFloorCalculator(acct)
	floor := calc.Floor(acct.StartingBalance)
	for _, s := range snaps {
		floor = calc.Floor(s.HighWaterMark)
		if acct.DrawdownThreshold > 0 && s.Balance <= floor {
			m.Breached = true
		}
		m.CurrentBalance = s.Balance
		m.HighWaterMark = s.HighWaterMark
	}

	m.DrawdownFloor = floor
	m.FloorLocked = calc.Locked()
	m.RemainingLoss = RemainingLoss(m.CurrentBalance, floor)
	m.DrawdownProgressPct = DrawdownProgressPct(acct.DrawdownThreshold, m.RemainingLoss)

	m.Target = TrackTarget(acct.StartingBalance, acct.ProfitTarget, events)

	m.Daily = DailySeries(acct.StartingBalance, events, loc)
	m.Consistency = EvaluateConsistency(acct.ProfitTarget, acct.ConsistencyPercentage, m.Target.NetProfit, m.Daily)
	markDailyConsistency(m.Daily, m.Consistency)

	m.NextPayoutProjection = ProjectPayoutDate(
		m.Target.NetProfit,
		m.Target.RemainingToTarget,
		TradingDayCount(events, loc),
		now,
	)

	return m, nil
}
