package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistencyUnconfigured(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 900},
	}

	tests := []struct {
		name           string
		target         float64
		consistencyPct float64
	}{
		{"no target", 0, 30},
		{"no percentage", 3000, 0},
		{"neither", 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := EvaluateConsistency(tt.target, tt.consistencyPct, 900, days)
			assert.False(t, res.IsConsistent)
			assert.Equal(t, ReasonUnconfigured, res.Reason)
			assert.Nil(t, res.MaxAllowedDailyProfit)
			assert.InDelta(t, 900.0, res.HighestProfitDay, 1e-9)
		})
	}
}

func TestConsistencyUnprofitable(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 500},
		{Date: day(2024, 3, 11), DailyPnL: -700},
	}

	res := EvaluateConsistency(3000, 30, -200, days)
	assert.False(t, res.IsConsistent)
	assert.Equal(t, ReasonUnprofitable, res.Reason)
	assert.Nil(t, res.MaxAllowedDailyProfit)
	assert.InDelta(t, 500.0, res.HighestProfitDay, 1e-9)
}

func TestConsistencyPass(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 800},
		{Date: day(2024, 3, 11), DailyPnL: 400},
	}

	// Net profit 1200 below target 3000: baseline is the target, cap 900.
	res := EvaluateConsistency(3000, 30, 1200, days)
	assert.True(t, res.IsConsistent)
	assert.Empty(t, res.Reason)
	require.NotNil(t, res.MaxAllowedDailyProfit)
	assert.InDelta(t, 900.0, *res.MaxAllowedDailyProfit, 1e-9)
	assert.InDelta(t, 800.0, res.HighestProfitDay, 1e-9)
}

func TestConsistencyFail(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 1000},
		{Date: day(2024, 3, 11), DailyPnL: 200},
	}

	res := EvaluateConsistency(3000, 30, 1200, days)
	assert.False(t, res.IsConsistent)
	assert.Empty(t, res.Reason)
	require.NotNil(t, res.MaxAllowedDailyProfit)
	assert.InDelta(t, 900.0, *res.MaxAllowedDailyProfit, 1e-9)
	assert.InDelta(t, 1000.0, res.HighestProfitDay, 1e-9)
}

func TestConsistencyBaselineSwitchesToNetProfit(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 1100},
		{Date: day(2024, 3, 11), DailyPnL: 2900},
	}

	// Net profit 4000 above target 3000: baseline is net profit, cap 1200.
	res := EvaluateConsistency(3000, 30, 4000, days)
	require.NotNil(t, res.MaxAllowedDailyProfit)
	assert.InDelta(t, 1200.0, *res.MaxAllowedDailyProfit, 1e-9)
	assert.False(t, res.IsConsistent)
	assert.InDelta(t, 2900.0, res.HighestProfitDay, 1e-9)
}

func TestMarkDailyConsistency(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 1000, IsConsistent: true},
		{Date: day(2024, 3, 11), DailyPnL: 200, IsConsistent: true},
	}

	res := EvaluateConsistency(3000, 30, 1200, days)
	markDailyConsistency(days, res)

	assert.False(t, days[0].IsConsistent)
	assert.True(t, days[1].IsConsistent)
}

func TestMarkDailyConsistencyNotApplicable(t *testing.T) {
	t.Parallel()

	days := []DailyMetric{
		{Date: day(2024, 3, 10), DailyPnL: 5000, IsConsistent: true},
	}

	res := EvaluateConsistency(0, 0, 5000, days)
	markDailyConsistency(days, res)

	// Rule not applicable: days stay consistent, the reason lives on the
	// account-level result.
	assert.True(t, days[0].IsConsistent)
}
