package analytics

import "tradelog/internal/models"

// Derive computes the per-trade results from the raw fields alone. The sign
// convention is the one domain rule everything downstream depends on: longs
// profit when price rises, shorts when it falls.
func Derive(r models.TradeRecord) models.TradeRecord {
	qty := float64(r.Quantity)
	if r.Side == models.SideShort {
		r.GrossPnL = (r.EntryPrice - r.ExitPrice) * qty
	} else {
		r.GrossPnL = (r.ExitPrice - r.EntryPrice) * qty
	}
	r.NetPnL = r.GrossPnL - r.Commission
	if r.RiskAmount > 0 {
		r.RMultiple = r.GrossPnL / r.RiskAmount
	} else {
		// Risk-unspecified trades contribute zero, they are not excluded.
		r.RMultiple = 0
	}
	r.IsWinner = r.NetPnL > 0
	return r
}

// DeriveAll returns a copy of records with the per-trade fields stamped. The
// input slice is left untouched.
func DeriveAll(records []models.TradeRecord) []models.TradeRecord {
	out := make([]models.TradeRecord, len(records))
	for i, r := range records {
		out[i] = Derive(r)
	}
	return out
}
