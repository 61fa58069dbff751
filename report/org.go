// Package report renders engine output as org-mode text, the same review
// format the trade journal tooling uses.
package report

import (
	"bytes"
	"strconv"
	"text/template"
	"time"

	"github.com/rustyeddy/propdesk/engine"
)

var orgFuncs = template.FuncMap{
	"pct": func(p *float64) string {
		if p == nil {
			return "(n/a)"
		}
		return formatFloat(*p) + "%"
	},
	"money": formatFloatPtr,
	"orgDate": func(t *time.Time) string {
		if t == nil {
			return "(none)"
		}
		return t.Format("2006-01-02 Mon")
	},
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

// FormatMetricsOrg renders one account's full evaluation state as an org
// block: a properties drawer with the scalar metrics, then the daily series
// as a table.
func FormatMetricsOrg(m engine.Metrics) (string, error) {
	t, err := template.New("metrics").Funcs(orgFuncs).Parse(metricsOrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, m); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const metricsOrgTemplate = `* EVALUATION: {{.AccountNumber}}
:PROPERTIES:
:ACCOUNT:       {{.AccountNumber}}
:COMPUTED_AT:   {{.ComputedAt.Format "2006-01-02 Mon 15:04"}}
:BALANCE:       {{printf "%.2f" .CurrentBalance}}
:HIGH_WATER:    {{printf "%.2f" .HighWaterMark}}
:DD_FLOOR:      {{printf "%.2f" .DrawdownFloor}}
:DD_REMAINING:  {{printf "%.2f" .RemainingLoss}}
:DD_PROGRESS:   {{pct .DrawdownProgressPct}}
:DD_LOCKED:     {{yesno .FloorLocked}}
:BREACHED:      {{yesno .Breached}}
:NET_PROFIT:    {{printf "%.2f" .Target.NetProfit}}
:WITHDRAWN:     {{printf "%.2f" .Target.WithdrawnPayouts}}
:TO_TARGET:     {{printf "%.2f" .Target.RemainingToTarget}}
:TARGET_PCT:    {{pct .Target.ProgressPct}}
:CONSISTENT:    {{yesno .Consistency.IsConsistent}}{{if .Consistency.Reason}} ({{.Consistency.Reason}}){{end}}
:BEST_DAY:      {{printf "%.2f" .Consistency.HighestProfitDay}}
:DAY_CAP:       {{money .Consistency.MaxAllowedDailyProfit}}
:NEXT_PAYOUT:   {{orgDate .NextPayoutProjection}}
:END:

** Daily Series
| Date | PnL | Balance | Consistent | Payout |
|------+-----+---------+------------+--------|
{{- range .Daily}}
| {{.Date.Format "2006-01-02"}} | {{printf "%.2f" .DailyPnL}} | {{printf "%.2f" .RunningBalance}} | {{yesno .IsConsistent}} | {{money .Payout}} |
{{- end}}
`

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func formatFloatPtr(p *float64) string {
	if p == nil {
		return "-"
	}
	return formatFloat(*p)
}
