package engine

// TargetProgress reports profit-target progress net of withdrawals.
type TargetProgress struct {
	NetProfit        float64 `json:"net_profit"`
	WithdrawnPayouts float64 `json:"withdrawn_payouts"`

	// BalanceWithoutPayouts is startingBalance + netProfit - withdrawals,
	// i.e. the balance the evaluation is actually judged on.
	BalanceWithoutPayouts float64 `json:"balance_without_payouts"`

	RemainingToTarget float64 `json:"remaining_to_target"`

	// ProgressPct is nil when no profit target is configured; the account
	// is legitimately unconfigured, not at 0%.
	ProgressPct *float64 `json:"progress_pct,omitempty"`
}

// TrackTarget computes target progress over the normalized window.
// Only settled payouts count as withdrawals, whatever policy built the
// stream.
func TrackTarget(startingBalance, profitTarget float64, events []Event) TargetProgress {
	var net, withdrawn float64
	for _, ev := range events {
		switch ev.Kind {
		case KindTrade:
			net += ev.Delta
		case KindPayout:
			if ev.Status.Settled() {
				withdrawn += -ev.Delta
			}
		}
	}

	p := TargetProgress{
		NetProfit:             net,
		WithdrawnPayouts:      withdrawn,
		BalanceWithoutPayouts: startingBalance + net - withdrawn,
	}

	remaining := profitTarget - (net - withdrawn)
	if remaining < 0 {
		remaining = 0
	}
	p.RemainingToTarget = remaining

	if profitTarget > 0 {
		pct := net / profitTarget * 100
		p.ProgressPct = &pct
	}
	return p
}
