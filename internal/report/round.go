package report

import (
	"math"

	"tradelog/internal/models"
)

// DefaultPrecision is the decimal precision applied when none is configured.
const DefaultPrecision = 2

func round(x float64, places int) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// RoundSummary copies s with the monetary and ratio fields rounded for
// display. Counts stay exact; an infinite payoff ratio stays infinite.
func RoundSummary(s models.SummaryStats, places int) models.SummaryStats {
	s.WinRate = round(s.WinRate, places)
	s.AvgWin = round(s.AvgWin, places)
	s.AvgLoss = round(s.AvgLoss, places)
	s.PayoffRatio = models.Ratio(round(float64(s.PayoffRatio), places))
	s.TotalPnL = round(s.TotalPnL, places)
	s.TotalCommission = round(s.TotalCommission, places)
	s.Expectancy = round(s.Expectancy, places)
	s.AvgRMultiple = round(s.AvgRMultiple, places)
	s.MaxDrawdown = round(s.MaxDrawdown, places)
	s.MaxDrawdownPct = round(s.MaxDrawdownPct, places)
	return s
}

func RoundGroups(groups []models.GroupStats, places int) []models.GroupStats {
	out := make([]models.GroupStats, len(groups))
	for i, g := range groups {
		out[i] = models.GroupStats{Key: g.Key, Stats: RoundSummary(g.Stats, places)}
	}
	return out
}

func RoundRecords(records []models.TradeRecord, places int) []models.TradeRecord {
	out := make([]models.TradeRecord, len(records))
	for i, r := range records {
		r.GrossPnL = round(r.GrossPnL, places)
		r.NetPnL = round(r.NetPnL, places)
		r.RMultiple = round(r.RMultiple, places)
		r.CumulativePnL = round(r.CumulativePnL, places)
		r.Peak = round(r.Peak, places)
		r.Drawdown = round(r.Drawdown, places)
		r.DrawdownPct = round(r.DrawdownPct, places)
		out[i] = r
	}
	return out
}

func RoundReport(rep *models.Report, places int) *models.Report {
	return &models.Report{
		Summary:    RoundSummary(rep.Summary, places),
		ByCategory: RoundGroups(rep.ByCategory, places),
		BySymbol:   RoundGroups(rep.BySymbol, places),
		ByMonth:    RoundGroups(rep.ByMonth, places),
		Records:    RoundRecords(rep.Records, places),
	}
}
