package engine

import "github.com/rustyeddy/propdesk/account"

// FloorCalculator derives the effective drawdown floor from the running
// high-water mark. It carries the one piece of path-dependent state in the
// drawdown rule: once a trailing floor locks it stays locked for the rest of
// the evaluation cycle, even if a later high-water mark would otherwise
// produce a lower trailing floor. A new cycle needs a new calculator.
type FloorCalculator struct {
	cfg    account.Account
	locked bool
}

func NewFloorCalculator(cfg account.Account) *FloorCalculator {
	return &FloorCalculator{cfg: cfg}
}

// Floor returns the drawdown floor for the given high-water mark.
//
// Static mode anchors the floor to the starting balance. Trailing mode lets
// the floor follow the high-water mark upward until profit reaches the
// trailing stop, at which point the floor locks at
// (startingBalance + trailingStopProfit) - drawdownThreshold.
func (c *FloorCalculator) Floor(highWaterMark float64) float64 {
	if !c.cfg.TrailingDrawdown {
		return c.cfg.StartingBalance - c.cfg.DrawdownThreshold
	}

	if !c.locked && c.cfg.TrailingStopProfit > 0 {
		profitMade := highWaterMark - c.cfg.StartingBalance
		if profitMade >= c.cfg.TrailingStopProfit {
			c.locked = true
		}
	}
	if c.locked {
		return c.cfg.StartingBalance + c.cfg.TrailingStopProfit - c.cfg.DrawdownThreshold
	}
	return highWaterMark - c.cfg.DrawdownThreshold
}

// Locked reports whether the trailing-stop lock has engaged.
func (c *FloorCalculator) Locked() bool { return c.locked }

// RemainingLoss is the loss buffer left before the balance hits the floor.
func RemainingLoss(balance, floor float64) float64 {
	if balance <= floor {
		return 0
	}
	return balance - floor
}

// DrawdownProgressPct is how much of the drawdown threshold has been
// consumed, clamped to [0,100]. Returns nil when the threshold is not
// configured, so callers can render "not applicable" instead of a bogus 0.
func DrawdownProgressPct(threshold, remainingLoss float64) *float64 {
	if threshold <= 0 {
		return nil
	}
	pct := (threshold - remainingLoss) / threshold * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return &pct
}
