package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tradelog/internal/models"
)

const (
	bannerWidth  = 60
	dividerWidth = 40
)

// WriteText prints the report in the plain console layout: overview, the
// grouped views, the trade list, and the equity curve.
func (rn Renderer) WriteText(w io.Writer, rep *models.Report) error {
	bw := bufio.NewWriter(w)
	banner := strings.Repeat("=", bannerWidth)
	divider := strings.Repeat("-", dividerWidth)

	s := rep.Summary
	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, "TRADE PERFORMANCE REPORT")
	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "Total trades:      %d\n", s.TotalTrades)
	fmt.Fprintf(bw, "Winning trades:    %d\n", s.WinningTrades)
	fmt.Fprintf(bw, "Losing trades:     %d\n", s.LosingTrades)
	fmt.Fprintf(bw, "Win rate:          %s\n", rn.pct(s.WinRate))
	fmt.Fprintf(bw, "Payoff ratio:      %s\n", rn.ratio(s.PayoffRatio))
	fmt.Fprintf(bw, "Expectancy:        %s\n", rn.money(s.Expectancy))
	fmt.Fprintf(bw, "Avg R-multiple:    %.*f\n", rn.Places(), s.AvgRMultiple)
	fmt.Fprintln(bw, divider)
	fmt.Fprintf(bw, "Total P&L:         %s\n", rn.money(s.TotalPnL))
	fmt.Fprintf(bw, "Total commission:  %s\n", rn.money(s.TotalCommission))
	fmt.Fprintf(bw, "Avg win:           %s\n", rn.money(s.AvgWin))
	fmt.Fprintf(bw, "Avg loss:          %s\n", rn.money(s.AvgLoss))
	fmt.Fprintln(bw, divider)
	fmt.Fprintf(bw, "Max drawdown:      %s (%s)\n", rn.money(s.MaxDrawdown), rn.pct(s.MaxDrawdownPct))
	fmt.Fprintln(bw, banner)

	rn.writeGroups(bw, "BY CATEGORY", rep.ByCategory)
	rn.writeGroups(bw, "BY SYMBOL", rep.BySymbol)
	rn.writeGroups(bw, "BY MONTH", rep.ByMonth)

	if len(rep.Records) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "TRADES")
		fmt.Fprintln(bw, strings.Repeat("-", 80))
		fmt.Fprintf(bw, "%-12s %-8s %-6s %12s %8s  %s\n", "DATE", "SYMBOL", "SIDE", "NET P&L", "R", "CATEGORY")
		for _, r := range rep.Records {
			fmt.Fprintf(bw, "%-12s %-8s %-6s %12s %8.2f  %s\n",
				r.Date, r.Symbol, r.Side, rn.money(r.NetPnL), r.RMultiple, r.Category)
		}

		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "EQUITY CURVE")
		fmt.Fprintln(bw, divider)
		for _, r := range rep.Records {
			fmt.Fprintf(bw, "%s  %12s\n", r.Date, rn.money(r.CumulativePnL))
		}
	}

	return bw.Flush()
}

func (rn Renderer) writeGroups(w io.Writer, title string, groups []models.GroupStats) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
	fmt.Fprintf(w, "%-18s %7s %10s %14s %9s\n", "KEY", "TRADES", "WIN RATE", "TOTAL P&L", "AVG R")
	for _, g := range groups {
		fmt.Fprintf(w, "%-18s %7d %10s %14s %9.2f\n",
			g.Key, g.Stats.TotalTrades, rn.pct(g.Stats.WinRate), rn.money(g.Stats.TotalPnL), g.Stats.AvgRMultiple)
	}
}
