package ingest

import (
	"errors"
	"testing"

	"tradelog/internal/models"
)

func validRow() Row {
	return Row{
		FieldDate:       "2024-01-15",
		FieldSymbol:     "aapl",
		FieldSide:       "LONG",
		FieldEntryPrice: "100.50",
		FieldExitPrice:  "110.25",
		FieldQuantity:   "10",
		FieldCommission: "2.50",
		FieldRiskAmount: "50",
		FieldSetup:      "breakout",
		FieldNotes:      "test trade",
	}
}

func TestLoad_Valid(t *testing.T) {
	records, err := Load([]Row{validRow()})
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len=%d want=1", len(records))
	}
	r := records[0]
	if r.Symbol != "AAPL" {
		t.Fatalf("symbol=%q want=AAPL", r.Symbol)
	}
	if r.Side != models.SideLong {
		t.Fatalf("side=%q want=long", r.Side)
	}
	if r.Date.String() != "2024-01-15" {
		t.Fatalf("date=%s want=2024-01-15", r.Date)
	}
	if r.EntryPrice != 100.50 || r.ExitPrice != 110.25 {
		t.Fatalf("prices=%v/%v want=100.50/110.25", r.EntryPrice, r.ExitPrice)
	}
	if r.Quantity != 10 {
		t.Fatalf("quantity=%d want=10", r.Quantity)
	}
	if r.Category != "breakout" {
		t.Fatalf("category=%q want=breakout", r.Category)
	}
}

func TestLoad_CategoryDefault(t *testing.T) {
	row := validRow()
	delete(row, FieldSetup)
	records, err := Load([]Row{row})
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if records[0].Category != models.DefaultCategory {
		t.Fatalf("category=%q want=%q", records[0].Category, models.DefaultCategory)
	}
}

func TestLoad_BadRows(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(Row)
		field string
	}{
		{"missing date", func(r Row) { delete(r, FieldDate) }, FieldDate},
		{"blank symbol", func(r Row) { r[FieldSymbol] = "   " }, FieldSymbol},
		{"bad date", func(r Row) { r[FieldDate] = "15/01/2024" }, FieldDate},
		{"bad side", func(r Row) { r[FieldSide] = "buy" }, FieldSide},
		{"entry not a number", func(r Row) { r[FieldEntryPrice] = "abc" }, FieldEntryPrice},
		{"entry NaN", func(r Row) { r[FieldEntryPrice] = "NaN" }, FieldEntryPrice},
		{"exit infinite", func(r Row) { r[FieldExitPrice] = "Inf" }, FieldExitPrice},
		{"entry zero", func(r Row) { r[FieldEntryPrice] = "0" }, FieldEntryPrice},
		{"exit negative", func(r Row) { r[FieldExitPrice] = "-5" }, FieldExitPrice},
		{"quantity fractional", func(r Row) { r[FieldQuantity] = "10.5" }, FieldQuantity},
		{"quantity zero", func(r Row) { r[FieldQuantity] = "0" }, FieldQuantity},
		{"quantity negative", func(r Row) { r[FieldQuantity] = "-3" }, FieldQuantity},
		{"commission negative", func(r Row) { r[FieldCommission] = "-1" }, FieldCommission},
		{"risk negative", func(r Row) { r[FieldRiskAmount] = "-10" }, FieldRiskAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow()
			tc.mut(row)
			records, err := Load([]Row{row})
			if err == nil {
				t.Fatalf("Load err=nil want ValidationError")
			}
			if records != nil {
				t.Fatalf("records=%v want nil on failure", records)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err=%T want *ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field=%q want=%q", verr.Field, tc.field)
			}
			if verr.Row != 1 {
				t.Fatalf("row=%d want=1", verr.Row)
			}
		})
	}
}

func TestLoad_FailFastRowIndex(t *testing.T) {
	bad := validRow()
	bad[FieldSide] = "sideways"
	records, err := Load([]Row{validRow(), validRow(), bad})
	if err == nil {
		t.Fatalf("Load err=nil want error")
	}
	if records != nil {
		t.Fatalf("records=%v want nil, no partial result", records)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err=%T want *ValidationError", err)
	}
	if verr.Row != 3 {
		t.Fatalf("row=%d want=3", verr.Row)
	}
	if verr.Field != FieldSide {
		t.Fatalf("field=%q want=%q", verr.Field, FieldSide)
	}
}

func TestLoad_ZeroRiskAllowed(t *testing.T) {
	row := validRow()
	row[FieldRiskAmount] = "0"
	records, err := Load([]Row{row})
	if err != nil {
		t.Fatalf("Load err=%v want risk 0 accepted", err)
	}
	if records[0].RiskAmount != 0 {
		t.Fatalf("risk=%v want=0", records[0].RiskAmount)
	}
}
