package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Ratio is a float64 whose JSON form survives the infinite sentinel produced
// when a record set has winners but no losses. encoding/json refuses IEEE
// infinities, so infinite values marshal as the strings "inf" / "-inf".
type Ratio float64

func (r Ratio) IsInf() bool { return math.IsInf(float64(r), 0) }

func (r Ratio) MarshalJSON() ([]byte, error) {
	v := float64(r)
	if math.IsInf(v, 1) {
		return []byte(`"inf"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(v)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch s {
		case "inf":
			*r = Ratio(math.Inf(1))
			return nil
		case "-inf":
			*r = Ratio(math.Inf(-1))
			return nil
		}
		return fmt.Errorf("invalid ratio %q", s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*r = Ratio(v)
	return nil
}

// SummaryStats is the aggregate reduction over a set of enriched records.
// Values are full precision; rounding happens at the presentation edge.
type SummaryStats struct {
	TotalTrades     int     `json:"total_trades"`
	WinningTrades   int     `json:"winning_trades"`
	LosingTrades    int     `json:"losing_trades"`
	WinRate         float64 `json:"win_rate"`
	AvgWin          float64 `json:"avg_win"`
	AvgLoss         float64 `json:"avg_loss"`
	PayoffRatio     Ratio   `json:"payoff_ratio"`
	TotalPnL        float64 `json:"total_pnl"`
	TotalCommission float64 `json:"total_commission"`
	Expectancy      float64 `json:"expectancy"`
	AvgRMultiple    float64 `json:"avg_r_multiple"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	MaxDrawdownPct  float64 `json:"max_drawdown_pct"`
}

// GroupStats pairs a grouping key with the stats over its member records.
// Grouped views are slices, not maps, so the view ordering survives
// serialization.
type GroupStats struct {
	Key   string       `json:"key"`
	Stats SummaryStats `json:"stats"`
}

// Report is the complete analysis output: the whole-set summary, the three
// grouped views, and the enriched records in chronological order. It
// serializes to JSON as-is.
type Report struct {
	Summary    SummaryStats  `json:"summary"`
	ByCategory []GroupStats  `json:"by_category"`
	BySymbol   []GroupStats  `json:"by_symbol"`
	ByMonth    []GroupStats  `json:"by_month"`
	Records    []TradeRecord `json:"trades"`
}
