package analytics

import "tradelog/internal/models"

// Analyze runs the full pipeline over validated records: per-trade results,
// the chronological equity series, the whole-set summary, and the three
// grouped views. The same input always produces the same report; the input
// slice is never modified.
func Analyze(records []models.TradeRecord) *models.Report {
	series := BuildEquitySeries(DeriveAll(records))

	byCategory := GroupBy(series, CategoryKey)
	SortGroupsByPnL(byCategory)
	bySymbol := GroupBy(series, SymbolKey)
	SortGroupsByPnL(bySymbol)
	byMonth := GroupBy(series, MonthKey)
	SortGroupsByKey(byMonth)

	return &models.Report{
		Summary:    Summarize(series),
		ByCategory: byCategory,
		BySymbol:   bySymbol,
		ByMonth:    byMonth,
		Records:    series,
	}
}
