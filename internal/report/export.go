package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"tradelog/internal/models"
)

// WriteJSON writes the full report as indented JSON with display rounding
// applied. The infinite payoff sentinel comes out as the string "inf".
func (rn Renderer) WriteJSON(w io.Writer, rep *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RoundReport(rep, rn.Places()))
}

// ExportJSON writes the JSON report to path.
func (rn Renderer) ExportJSON(path string, rep *models.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rn.WriteJSON(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// csvHeader is the enriched-records export schema: the input columns plus
// every derived field.
var csvHeader = []string{
	"date", "symbol", "side", "entry_price", "exit_price", "quantity",
	"commission", "risk_amount", "category", "notes",
	"gross_pnl", "net_pnl", "r_multiple", "is_winner",
	"cumulative_pnl", "peak", "drawdown", "drawdown_pct",
}

// WriteCSV writes the enriched records, one row per trade, with display
// rounding applied to the derived columns.
func (rn Renderer) WriteCSV(w io.Writer, records []models.TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range RoundRecords(records, rn.Places()) {
		row := []string{
			r.Date.String(),
			r.Symbol,
			string(r.Side),
			formatFloat(r.EntryPrice),
			formatFloat(r.ExitPrice),
			strconv.Itoa(r.Quantity),
			formatFloat(r.Commission),
			formatFloat(r.RiskAmount),
			r.Category,
			r.Notes,
			formatFloat(r.GrossPnL),
			formatFloat(r.NetPnL),
			formatFloat(r.RMultiple),
			strconv.FormatBool(r.IsWinner),
			formatFloat(r.CumulativePnL),
			formatFloat(r.Peak),
			formatFloat(r.Drawdown),
			formatFloat(r.DrawdownPct),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the enriched records CSV to path.
func (rn Renderer) ExportCSV(path string, records []models.TradeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rn.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
