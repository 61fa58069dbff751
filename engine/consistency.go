package engine

// ConsistencyReason explains why the consistency rule did not apply.
type ConsistencyReason string

const (
	// ReasonUnconfigured: no profit target or no consistency percentage.
	ReasonUnconfigured ConsistencyReason = "unconfigured"
	// ReasonUnprofitable: the rule needs positive net profit to judge.
	ReasonUnprofitable ConsistencyReason = "unprofitable"
)

// ConsistencyResult distinguishes "failing the rule" from "rule not
// applicable": IsConsistent is false in both cases, Reason is set only in
// the latter.
type ConsistencyResult struct {
	IsConsistent          bool              `json:"is_consistent"`
	Reason                ConsistencyReason `json:"reason,omitempty"`
	MaxAllowedDailyProfit *float64          `json:"max_allowed_daily_profit,omitempty"`
	HighestProfitDay      float64           `json:"highest_profit_day"`
}

// EvaluateConsistency checks the largest single day's profit against a
// percentage of the baseline. The baseline is the profit target until total
// net profit exceeds it, then net profit itself.
func EvaluateConsistency(profitTarget, consistencyPct, netProfit float64, days []DailyMetric) ConsistencyResult {
	res := ConsistencyResult{}
	for _, d := range days {
		if d.DailyPnL > res.HighestProfitDay {
			res.HighestProfitDay = d.DailyPnL
		}
	}

	if profitTarget <= 0 || consistencyPct <= 0 {
		res.Reason = ReasonUnconfigured
		return res
	}
	if netProfit <= 0 {
		res.Reason = ReasonUnprofitable
		return res
	}

	base := profitTarget
	if netProfit > profitTarget {
		base = netProfit
	}
	maxAllowed := base * consistencyPct / 100
	res.MaxAllowedDailyProfit = &maxAllowed
	res.IsConsistent = res.HighestProfitDay <= maxAllowed
	return res
}

// markDailyConsistency flags each day against the computed cap. When the
// rule is not applicable every day stays consistent; the account-level
// result carries the reason.
func markDailyConsistency(days []DailyMetric, res ConsistencyResult) {
	if res.MaxAllowedDailyProfit == nil {
		return
	}
	for i := range days {
		days[i].IsConsistent = days[i].DailyPnL <= *res.MaxAllowedDailyProfit
	}
}
