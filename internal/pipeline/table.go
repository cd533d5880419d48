package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/dmwalker/trackpipe/internal/shared"
)

// Table is a column-oriented record set with a fixed schema.
// Rows hold cells in column order. A Table with no rows is valid; sinks
// refuse to write one.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty Table with the given column names.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row. The row must have exactly one cell per column.
func (t *Table) Append(row []string) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("%w: row has %d cells, table has %d columns", shared.ErrInvalidInput, len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// DedupeBy removes rows whose cell in the named column repeats an earlier
// row's value, keeping the first occurrence in input order.
func (t *Table) DedupeBy(column string) error {
	idx := t.columnIndex(column)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrUnknownColumn, column)
	}

	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if seen[row[idx]] {
			continue
		}
		seen[row[idx]] = true
		kept = append(kept, row)
	}
	t.Rows = kept
	return nil
}

// Coerce rewrites every cell of the named column through fn.
func (t *Table) Coerce(column string, fn func(string) string) error {
	idx := t.columnIndex(column)
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrUnknownColumn, column)
	}

	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}
	return nil
}

// CSV serializes the table as UTF-8 comma-separated text: a header row of
// column names followed by one line per row. Embedded commas and quotes are
// escaped per standard CSV rules.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
