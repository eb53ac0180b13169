package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a parsed header plus rectangular numeric rows.
type Table struct {
	Header []string
	Rows   [][]float64
}

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.Header) }

// Read parses a header line and numeric rows from r.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row widths are checked against the header below
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	cols := len(header)
	if cols < 2 {
		return nil, fmt.Errorf("dataset: header has %d field(s): %w", cols, ErrTooFewColumns)
	}
	t := &Table{Header: make([]string, cols)}
	for j, h := range header {
		t.Header[j] = strings.TrimSpace(h)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < cols {
			return nil, fmt.Errorf("dataset: line %d: %d fields, want %d: %w", line, len(rec), cols, ErrJagged)
		}
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dataset: line %d column %d %q: %w", line, j+1, rec[j], ErrNotNumeric)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}

	if len(t.Rows) < cols {
		return nil, fmt.Errorf("dataset: %d rows for %d columns: %w", len(t.Rows), cols, ErrTooFewRows)
	}

	return t, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}
