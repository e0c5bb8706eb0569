package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day form used by the input schema and all output.
const DateLayout = "2006-01-02"

// DefaultCategory is assigned when a record carries no setup tag.
const DefaultCategory = "uncategorized"

type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// ParseSide accepts long/short case-insensitively; anything else is rejected.
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "long":
		return SideLong, nil
	case "short":
		return SideShort, nil
	default:
		return "", fmt.Errorf("unknown side %q (want long or short)", strings.TrimSpace(raw))
	}
}

// Date is a calendar day with no time component. It marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

// MonthKey is the calendar-month bucket of the day, formatted YYYY-MM.
func (d Date) MonthKey() string { return d.Format("2006-01") }

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

func (d Date) Equal(other Date) bool { return d.Time.Equal(other.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// TradeRecord is one closed round-trip transaction. The raw fields come from
// the input log; everything below them is stamped by the analytics pipeline
// and is a pure function of the raw fields (plus, for the equity fields, the
// ordered set up to and including this record).
type TradeRecord struct {
	Date       Date    `json:"date"`
	Symbol     string  `json:"symbol"`
	Side       Side    `json:"side"`
	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price"`
	Quantity   int     `json:"quantity"`
	Commission float64 `json:"commission"`
	RiskAmount float64 `json:"risk_amount"`
	Category   string  `json:"category"`
	Notes      string  `json:"notes,omitempty"`

	GrossPnL  float64 `json:"gross_pnl"`
	NetPnL    float64 `json:"net_pnl"`
	RMultiple float64 `json:"r_multiple"`
	IsWinner  bool    `json:"is_winner"`

	// Valid only after the record passed through the equity series scan.
	CumulativePnL float64 `json:"cumulative_pnl"`
	Peak          float64 `json:"peak"`
	Drawdown      float64 `json:"drawdown"`
	DrawdownPct   float64 `json:"drawdown_pct"`
}
