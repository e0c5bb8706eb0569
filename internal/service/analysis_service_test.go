package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const validCSV = `date,symbol,side,entry_price,exit_price,quantity,commission,risk_amount,setup,notes
2024-01-02,AAPL,long,100,110,10,5,50,breakout,
2024-01-03,MSFT,short,50,60,5,1,0,fade,
2024-01-04,aapl,long,200,201,1,0,10,breakout,
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReloadAndSnapshot(t *testing.T) {
	svc := &AnalysisService{Source: writeLog(t, validCSV)}
	if svc.Ready() {
		t.Fatalf("ready before first load")
	}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !svc.Ready() {
		t.Fatalf("not ready after load")
	}
	rep := svc.Snapshot()
	if rep == nil || len(rep.Records) != 3 {
		t.Fatalf("snapshot records=%v want=3", rep)
	}
	if rep.Summary.TotalTrades != 3 {
		t.Fatalf("total=%d want=3", rep.Summary.TotalTrades)
	}
	if svc.LoadedAt().IsZero() {
		t.Fatalf("loadedAt not set")
	}
}

func TestReloadKeepsSnapshotOnFailure(t *testing.T) {
	path := writeLog(t, validCSV)
	svc := &AnalysisService{Source: path}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	before := svc.Snapshot()

	bad := `date,symbol,side,entry_price,exit_price,quantity,commission,risk_amount
2024-01-02,AAPL,buy,100,110,10,5,50
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatalf("expected reload error")
	}
	if svc.Snapshot() != before {
		t.Fatalf("failed reload replaced the snapshot")
	}
}

func TestReloadCancelledContext(t *testing.T) {
	svc := &AnalysisService{Source: writeLog(t, validCSV)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Reload(ctx); err == nil {
		t.Fatalf("expected context error")
	}
	if svc.Ready() {
		t.Fatalf("cancelled reload produced a snapshot")
	}
}

func TestFilteredRecords(t *testing.T) {
	svc := &AnalysisService{Source: writeLog(t, validCSV)}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 3},
		{"symbol case-insensitive", Filter{Symbol: "aapl"}, 2},
		{"side", Filter{Side: "SHORT"}, 1},
		{"category", Filter{Category: "breakout"}, 2},
		{"wins", Filter{Outcome: "win"}, 2},
		{"losses", Filter{Outcome: "loss"}, 1},
		{"combined", Filter{Symbol: "AAPL", Outcome: "win"}, 2},
		{"no match", Filter{Symbol: "TSLA"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FilteredRecords(tt.filter)
			if len(got) != tt.want {
				t.Fatalf("records=%d want=%d", len(got), tt.want)
			}
		})
	}
}

func TestFilteredSummary(t *testing.T) {
	svc := &AnalysisService{Source: writeLog(t, validCSV)}
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	sum := svc.FilteredSummary(Filter{Symbol: "AAPL"})
	if sum.TotalTrades != 2 {
		t.Fatalf("total=%d want=2", sum.TotalTrades)
	}
	if sum.WinningTrades != 2 {
		t.Fatalf("winners=%d want=2", sum.WinningTrades)
	}
	// Long 100 -> 110 x10 minus 5 commission, long 200 -> 201 x1.
	if got := sum.TotalPnL; got != 96 {
		t.Fatalf("totalPnL=%v want=96", got)
	}
}

func TestNilServiceIsInert(t *testing.T) {
	var svc *AnalysisService
	if svc.Ready() {
		t.Fatalf("nil service reported ready")
	}
	if rep := svc.Snapshot(); rep != nil {
		t.Fatalf("nil service snapshot=%v", rep)
	}
	if got := svc.FilteredRecords(Filter{}); got != nil {
		t.Fatalf("nil service records=%v", got)
	}
	if err := (&AnalysisService{}).Reload(context.Background()); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
