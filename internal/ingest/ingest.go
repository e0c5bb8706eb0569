package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"tradelog/internal/models"
)

// Row is one raw input record keyed by column name, values exactly as read
// from the source.
type Row map[string]string

const (
	FieldDate       = "date"
	FieldSymbol     = "symbol"
	FieldSide       = "side"
	FieldEntryPrice = "entry_price"
	FieldExitPrice  = "exit_price"
	FieldQuantity   = "quantity"
	FieldCommission = "commission"
	FieldRiskAmount = "risk_amount"
	FieldSetup      = "setup"
	FieldNotes      = "notes"
)

var requiredFields = []string{
	FieldDate, FieldSymbol, FieldSide, FieldEntryPrice,
	FieldExitPrice, FieldQuantity, FieldCommission, FieldRiskAmount,
}

var validate = validator.New()

// rowConstraints carries the parsed numeric fields through the range checks.
type rowConstraints struct {
	EntryPrice float64 `validate:"gt=0"`
	ExitPrice  float64 `validate:"gt=0"`
	Quantity   int     `validate:"gt=0"`
	Commission float64 `validate:"gte=0"`
	RiskAmount float64 `validate:"gte=0"`
}

var constraintFields = map[string]string{
	"EntryPrice": FieldEntryPrice,
	"ExitPrice":  FieldExitPrice,
	"Quantity":   FieldQuantity,
	"Commission": FieldCommission,
	"RiskAmount": FieldRiskAmount,
}

// Load validates and types raw rows into trade records. It fails on the first
// bad row with a *ValidationError and returns no partial result.
func Load(rows []Row) ([]models.TradeRecord, error) {
	records := make([]models.TradeRecord, 0, len(rows))
	for i, row := range rows {
		rec, verr := loadRow(row)
		if verr != nil {
			verr.Row = i + 1
			return nil, verr
		}
		records = append(records, rec)
	}
	return records, nil
}

func loadRow(row Row) (models.TradeRecord, *ValidationError) {
	for _, field := range requiredFields {
		if strings.TrimSpace(row[field]) == "" {
			return models.TradeRecord{}, &ValidationError{Field: field, Reason: "required field is missing or empty"}
		}
	}

	date, err := models.ParseDate(row[FieldDate])
	if err != nil {
		return models.TradeRecord{}, &ValidationError{
			Field:  FieldDate,
			Reason: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", strings.TrimSpace(row[FieldDate])),
		}
	}

	side, err := models.ParseSide(row[FieldSide])
	if err != nil {
		return models.TradeRecord{}, &ValidationError{Field: FieldSide, Reason: err.Error()}
	}

	entry, verr := parseAmount(FieldEntryPrice, row[FieldEntryPrice])
	if verr != nil {
		return models.TradeRecord{}, verr
	}
	exit, verr := parseAmount(FieldExitPrice, row[FieldExitPrice])
	if verr != nil {
		return models.TradeRecord{}, verr
	}
	commission, verr := parseAmount(FieldCommission, row[FieldCommission])
	if verr != nil {
		return models.TradeRecord{}, verr
	}
	risk, verr := parseAmount(FieldRiskAmount, row[FieldRiskAmount])
	if verr != nil {
		return models.TradeRecord{}, verr
	}

	qtyRaw := strings.TrimSpace(row[FieldQuantity])
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		return models.TradeRecord{}, &ValidationError{
			Field:  FieldQuantity,
			Reason: fmt.Sprintf("invalid integer %q", qtyRaw),
		}
	}

	if verr := checkConstraints(rowConstraints{
		EntryPrice: entry,
		ExitPrice:  exit,
		Quantity:   qty,
		Commission: commission,
		RiskAmount: risk,
	}); verr != nil {
		return models.TradeRecord{}, verr
	}

	category := strings.TrimSpace(row[FieldSetup])
	if category == "" {
		category = models.DefaultCategory
	}

	return models.TradeRecord{
		Date:       date,
		Symbol:     strings.ToUpper(strings.TrimSpace(row[FieldSymbol])),
		Side:       side,
		EntryPrice: entry,
		ExitPrice:  exit,
		Quantity:   qty,
		Commission: commission,
		RiskAmount: risk,
		Category:   category,
		Notes:      strings.TrimSpace(row[FieldNotes]),
	}, nil
}

// parseAmount goes through decimal so NaN, infinities, and stray text are
// rejected rather than silently taken over into the math.
func parseAmount(field, raw string) (float64, *ValidationError) {
	trimmed := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("invalid numeric value %q", trimmed)}
	}
	f, _ := d.Float64()
	return f, nil
}

func checkConstraints(c rowConstraints) *ValidationError {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Reason: err.Error()}
	}
	fe := fieldErrs[0]
	reason := "out of range"
	switch fe.Tag() {
	case "gt":
		reason = fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		reason = "must not be negative"
	}
	return &ValidationError{Field: constraintFields[fe.StructField()], Reason: reason}
}
