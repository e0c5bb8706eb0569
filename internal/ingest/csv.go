package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tradelog/internal/models"
)

// Header is the canonical input schema, in column order.
var Header = []string{
	FieldDate, FieldSymbol, FieldSide, FieldEntryPrice, FieldExitPrice,
	FieldQuantity, FieldCommission, FieldRiskAmount, FieldSetup, FieldNotes,
}

var templateExample = []string{
	"2024-01-15", "AAPL", "long", "185.50", "189.20", "100", "2.00", "150.00",
	"breakout", "clean entry on volume",
}

// Read decodes CSV rows keyed by the header line. Column names are matched
// case-insensitively; unknown columns stay in the row map and are ignored
// downstream. Short rows leave their trailing fields empty.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []Row
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(fields) {
				continue
			}
			row[name] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads raw rows from a CSV file on disk.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadFile reads and validates a CSV trade log in one step.
func LoadFile(path string) ([]models.TradeRecord, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := Load(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// WriteTemplate writes the input schema header plus one example row.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	if err := cw.Write(templateExample); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplateFile writes the template CSV to path.
func WriteTemplateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTemplate(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
