package engine

import (
	"math"
	"time"
)

// ProjectPayoutDate estimates when the remaining profit target will be
// reached, assuming the historical average daily PnL continues and counting
// weekdays only. Holidays are not modeled; this is a plain Mon-Fri calendar
// walk, not an exchange calendar.
//
// Returns nil when no projection is possible: no trading days yet, or a
// flat/negative average daily PnL.
func ProjectPayoutDate(netProfit, remainingToTarget float64, tradingDays int, now time.Time) *time.Time {
	if tradingDays <= 0 {
		return nil
	}
	avgDaily := netProfit / float64(tradingDays)
	if avgDaily <= 0 {
		return nil
	}

	needed := int(math.Ceil(remainingToTarget / avgDaily))
	if needed <= 0 {
		// Already there.
		d := now
		return &d
	}

	date := now
	for counted := 0; counted < needed; {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			counted++
		}
	}
	return &date
}
