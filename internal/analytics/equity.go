package analytics

import (
	"sort"

	"tradelog/internal/models"
)

// BuildEquitySeries orders records chronologically and stamps the running
// equity fields in one left-to-right scan. Records sharing a date keep their
// input order. The input slice is not reordered; the result is a new slice.
func BuildEquitySeries(records []models.TradeRecord) []models.TradeRecord {
	out := make([]models.TradeRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	cum := 0.0
	peak := 0.0
	for i := range out {
		cum += out[i].NetPnL
		if cum > peak {
			peak = cum
		}
		dd := cum - peak
		out[i].CumulativePnL = cum
		out[i].Peak = peak
		out[i].Drawdown = dd
		if peak > 0 {
			out[i].DrawdownPct = dd / peak * 100
		} else {
			// Underwater from the start: the percentage is undefined, report 0.
			out[i].DrawdownPct = 0
		}
	}
	return out
}
