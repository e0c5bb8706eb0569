package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tradelog/internal/analytics"
	"tradelog/internal/ingest"
	"tradelog/internal/metrics"
	"tradelog/internal/models"
)

// AnalysisService owns the analysis snapshot for the serving layer. Reload
// swaps the snapshot atomically, so readers always see a complete report from
// a single ingest pass; a failed reload keeps the previous snapshot.
type AnalysisService struct {
	Source string
	Logger *zap.Logger

	mu       sync.RWMutex
	report   *models.Report
	loadedAt time.Time
}

// Reload re-reads the configured trade log, runs the pipeline, and swaps the
// snapshot.
func (s *AnalysisService) Reload(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if s.Source == "" {
		return errors.New("no input source configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	records, err := ingest.LoadFile(s.Source)
	if err != nil {
		metrics.IngestFailures.Inc()
		if s.Logger != nil {
			s.Logger.Warn("reload failed", zap.String("source", s.Source), zap.Error(err))
		}
		return err
	}
	rep := analytics.Analyze(records)

	s.mu.Lock()
	s.report = rep
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	metrics.IngestRuns.Inc()
	metrics.RecordsLoaded.Set(float64(len(records)))
	if s.Logger != nil {
		s.Logger.Info("snapshot reloaded",
			zap.String("source", s.Source),
			zap.Int("records", len(records)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return nil
}

// Snapshot returns the current report, or nil before the first load.
func (s *AnalysisService) Snapshot() *models.Report {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

func (s *AnalysisService) Ready() bool { return s.Snapshot() != nil }

func (s *AnalysisService) LoadedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Filter selects a subset of the enriched records. Zero values match
// everything; string matches are case-insensitive.
type Filter struct {
	Symbol   string
	Side     string
	Category string
	Outcome  string // "win" or "loss"
}

func (f Filter) match(r models.TradeRecord) bool {
	if f.Symbol != "" && !strings.EqualFold(r.Symbol, f.Symbol) {
		return false
	}
	if f.Side != "" && !strings.EqualFold(string(r.Side), f.Side) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(r.Category, f.Category) {
		return false
	}
	switch strings.ToLower(f.Outcome) {
	case "win":
		if !r.IsWinner {
			return false
		}
	case "loss":
		if r.NetPnL >= 0 {
			return false
		}
	}
	return true
}

// FilteredRecords returns the chronological records matching f.
func (s *AnalysisService) FilteredRecords(f Filter) []models.TradeRecord {
	rep := s.Snapshot()
	if rep == nil {
		return nil
	}
	out := make([]models.TradeRecord, 0, len(rep.Records))
	for _, r := range rep.Records {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilteredSummary reduces the matching subset. The drawdown extremes reflect
// each record's position in the full equity series, not a recomputed one.
func (s *AnalysisService) FilteredSummary(f Filter) models.SummaryStats {
	return analytics.Summarize(s.FilteredRecords(f))
}
