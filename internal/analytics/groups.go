package analytics

import (
	"sort"

	"tradelog/internal/models"
)

// KeyFunc extracts the grouping key from a record.
type KeyFunc func(models.TradeRecord) string

func CategoryKey(r models.TradeRecord) string {
	if r.Category == "" {
		return models.DefaultCategory
	}
	return r.Category
}

func SymbolKey(r models.TradeRecord) string { return r.Symbol }

// MonthKey buckets records by calendar month, formatted YYYY-MM.
func MonthKey(r models.TradeRecord) string { return r.Date.MonthKey() }

// GroupBy partitions records by key and summarizes every partition. Groups
// come back in order of first appearance; callers pick one of the SortGroups
// orderings for presentation.
func GroupBy(records []models.TradeRecord, key KeyFunc) []models.GroupStats {
	byKey := map[string][]models.TradeRecord{}
	var order []string
	for _, r := range records {
		k := key(r)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], r)
	}
	groups := make([]models.GroupStats, 0, len(order))
	for _, k := range order {
		groups = append(groups, models.GroupStats{Key: k, Stats: Summarize(byKey[k])})
	}
	return groups
}

// SortGroupsByPnL orders groups by descending total net result, the
// presentation order for the category and symbol views. Equal totals fall
// back to ascending key so the order is deterministic.
func SortGroupsByPnL(groups []models.GroupStats) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Stats.TotalPnL != groups[j].Stats.TotalPnL {
			return groups[i].Stats.TotalPnL > groups[j].Stats.TotalPnL
		}
		return groups[i].Key < groups[j].Key
	})
}

// SortGroupsByKey orders groups by ascending key; with MonthKey buckets this
// is chronological.
func SortGroupsByKey(groups []models.GroupStats) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
}
