package analytics

import (
	"math"

	"tradelog/internal/models"
)

// Summarize reduces a set of enriched records to aggregate statistics. It
// works on any subset: the drawdown extremes come from the fields stamped by
// BuildEquitySeries, cumulative state is never recomputed here. An empty set
// yields all-zero stats.
func Summarize(records []models.TradeRecord) models.SummaryStats {
	var s models.SummaryStats
	s.TotalTrades = len(records)
	if s.TotalTrades == 0 {
		return s
	}

	sumWin := 0.0
	sumNonWin := 0.0
	nonWinners := 0
	sumR := 0.0
	for _, r := range records {
		s.TotalPnL += r.NetPnL
		s.TotalCommission += r.Commission
		sumR += r.RMultiple
		if r.IsWinner {
			s.WinningTrades++
			sumWin += r.NetPnL
		} else {
			// Zero-net trades count here for avg_loss but not as losers.
			nonWinners++
			sumNonWin += r.NetPnL
			if r.NetPnL < 0 {
				s.LosingTrades++
			}
		}
		if r.Drawdown < s.MaxDrawdown {
			s.MaxDrawdown = r.Drawdown
		}
		if r.DrawdownPct < s.MaxDrawdownPct {
			s.MaxDrawdownPct = r.DrawdownPct
		}
	}

	s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	if s.WinningTrades > 0 {
		s.AvgWin = sumWin / float64(s.WinningTrades)
	}
	if nonWinners > 0 {
		s.AvgLoss = sumNonWin / float64(nonWinners)
	}
	s.PayoffRatio = payoffRatio(s.AvgWin, s.AvgLoss)
	wr := s.WinRate / 100
	s.Expectancy = wr*s.AvgWin + (1-wr)*s.AvgLoss
	s.AvgRMultiple = sumR / float64(s.TotalTrades)
	return s
}

// payoffRatio is |avg_win / avg_loss|. With no loss to divide by the ratio is
// the infinite sentinel when any win exists, zero otherwise.
func payoffRatio(avgWin, avgLoss float64) models.Ratio {
	if avgLoss == 0 {
		if avgWin == 0 {
			return 0
		}
		return models.Ratio(math.Inf(1))
	}
	return models.Ratio(math.Abs(avgWin / avgLoss))
}
