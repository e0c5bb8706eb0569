package analytics

import (
	"math"
	"testing"

	"tradelog/internal/models"
)

// enriched builds a record carrying only the derived fields Summarize reads.
func enriched(net, commission, rMultiple float64) models.TradeRecord {
	return models.TradeRecord{
		NetPnL:     net,
		Commission: commission,
		RMultiple:  rMultiple,
		IsWinner:   net > 0,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalTrades != 0 || s.WinRate != 0 || s.TotalPnL != 0 {
		t.Fatalf("stats=%+v want all zero", s)
	}
	if s.PayoffRatio != 0 {
		t.Fatalf("payoff=%v want=0, not infinity", s.PayoffRatio)
	}
}

func TestSummarize_Mixed(t *testing.T) {
	records := []models.TradeRecord{
		enriched(100, 1, 2),
		enriched(50, 1, 1),
		enriched(-50, 1, -1),
		enriched(-30, 1, -0.5),
	}
	s := Summarize(records)
	if s.TotalTrades != 4 || s.WinningTrades != 2 || s.LosingTrades != 2 {
		t.Fatalf("counts=%d/%d/%d want=4/2/2", s.TotalTrades, s.WinningTrades, s.LosingTrades)
	}
	if s.WinRate != 50 {
		t.Fatalf("win_rate=%v want=50", s.WinRate)
	}
	if s.AvgWin != 75 {
		t.Fatalf("avg_win=%v want=75", s.AvgWin)
	}
	if s.AvgLoss != -40 {
		t.Fatalf("avg_loss=%v want=-40", s.AvgLoss)
	}
	if float64(s.PayoffRatio) != 1.875 {
		t.Fatalf("payoff=%v want=1.875", s.PayoffRatio)
	}
	if s.TotalPnL != 70 {
		t.Fatalf("total_pnl=%v want=70", s.TotalPnL)
	}
	if s.TotalCommission != 4 {
		t.Fatalf("total_commission=%v want=4", s.TotalCommission)
	}
	if s.Expectancy != 17.5 {
		t.Fatalf("expectancy=%v want=17.5", s.Expectancy)
	}
	if s.AvgRMultiple != 0.375 {
		t.Fatalf("avg_r=%v want=0.375", s.AvgRMultiple)
	}
}

func TestSummarize_PayoffInfiniteWithoutLosses(t *testing.T) {
	s := Summarize([]models.TradeRecord{enriched(100, 0, 1)})
	if !math.IsInf(float64(s.PayoffRatio), 1) {
		t.Fatalf("payoff=%v want=+Inf", s.PayoffRatio)
	}
}

func TestSummarize_PayoffZeroAllLosers(t *testing.T) {
	s := Summarize([]models.TradeRecord{enriched(-10, 0, -1), enriched(-20, 0, -2)})
	if s.PayoffRatio != 0 {
		t.Fatalf("payoff=%v want=0 with no winners", s.PayoffRatio)
	}
}

func TestSummarize_ZeroNetCountsInTotals(t *testing.T) {
	s := Summarize([]models.TradeRecord{enriched(100, 0, 1), enriched(0, 0, 0)})
	if s.TotalTrades != 2 {
		t.Fatalf("total=%d want=2", s.TotalTrades)
	}
	if s.WinningTrades != 1 || s.LosingTrades != 0 {
		t.Fatalf("win/loss=%d/%d want=1/0, zero net is neither", s.WinningTrades, s.LosingTrades)
	}
	if s.WinRate != 50 {
		t.Fatalf("win_rate=%v want=50", s.WinRate)
	}
	// The zero-net trade participates in the non-winner mean.
	if s.AvgLoss != 0 {
		t.Fatalf("avg_loss=%v want=0", s.AvgLoss)
	}
}

func TestSummarize_DrawdownFromStampedFields(t *testing.T) {
	records := []models.TradeRecord{
		{NetPnL: 100, IsWinner: true, Drawdown: 0, DrawdownPct: 0},
		{NetPnL: -150, Drawdown: -150, DrawdownPct: -75},
		{NetPnL: 20, IsWinner: true, Drawdown: -130, DrawdownPct: -65},
	}
	s := Summarize(records)
	if s.MaxDrawdown != -150 {
		t.Fatalf("max_drawdown=%v want=-150", s.MaxDrawdown)
	}
	if s.MaxDrawdownPct != -75 {
		t.Fatalf("max_drawdown_pct=%v want=-75", s.MaxDrawdownPct)
	}
}
