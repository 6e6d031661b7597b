// Package table provides a small read-only tabular structure for
// delimited data. Cells are strings, a missing cell is an empty string.
// All operations return new tables and never modify the receiver.
package table

import (
	"iter"
	"slices"
	"strings"

	"github.com/gnames/gnuuid"
)

// missingTokens are normalized to an empty cell by Normalize.
// "NA" is not here, it is the code of Namibia.
var missingTokens = map[string]struct{}{
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
	"N/A":  {},
	"n/a":  {},
	"#N/A": {},
}

// Normalize trims a cell and converts missing-value tokens to an
// empty string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := missingTokens[s]; ok {
		return ""
	}
	return s
}

// IsMissing returns true for an empty (normalized) cell.
func IsMissing(s string) bool {
	return s == ""
}

// Table is an ordered set of named columns and rows of cells.
type Table struct {
	columns []string
	rows    [][]string
}

// New creates a Table. Rows shorter than the header are padded with
// missing cells, longer rows are truncated.
func New(columns []string, rows [][]string) *Table {
	res := &Table{
		columns: slices.Clone(columns),
		rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		r := make([]string, len(columns))
		copy(r, row)
		res.rows[i] = r
	}
	return res
}

// Columns returns a copy of column names.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() (int, int) {
	return len(t.rows), len(t.columns)
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) []string {
	return slices.Clone(t.rows[i])
}

// Rows returns a copy of all rows.
func (t *Table) Rows() [][]string {
	res := make([][]string, len(t.rows))
	for i := range t.rows {
		res[i] = slices.Clone(t.rows[i])
	}
	return res
}

// All iterates over rows with their indices. Yielded rows must not be
// modified.
func (t *Table) All() iter.Seq2[int, []string] {
	return func(yield func(int, []string) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Cell returns the value at row i and column index col.
func (t *Table) Cell(i, col int) string {
	return t.rows[i][col]
}

// Index returns the position of a column or -1. Exact names win,
// otherwise the first case-insensitive match is used.
func (t *Table) Index(name string) int {
	if i := slices.Index(t.columns, name); i >= 0 {
		return i
	}
	for i, v := range t.columns {
		if strings.EqualFold(v, name) {
			return i
		}
	}
	return -1
}

// Has returns true if the column exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Head returns the first n rows.
func (t *Table) Head(n int) *Table {
	n = max(0, min(n, len(t.rows)))
	return &Table{columns: t.columns, rows: t.rows[:n]}
}

// DropColumns removes the given columns. Columns that do not exist are
// ignored. The second value lists the columns that were removed.
func (t *Table) DropColumns(names ...string) (*Table, []string) {
	drop := make(map[int]struct{})
	var dropped []string
	for _, v := range names {
		if i := t.Index(v); i >= 0 {
			if _, ok := drop[i]; !ok {
				drop[i] = struct{}{}
				dropped = append(dropped, t.columns[i])
			}
		}
	}
	if len(drop) == 0 {
		return t, nil
	}

	keep := make([]int, 0, len(t.columns)-len(drop))
	for i := range t.columns {
		if _, ok := drop[i]; !ok {
			keep = append(keep, i)
		}
	}

	cols := make([]string, len(keep))
	for j, i := range keep {
		cols[j] = t.columns[i]
	}
	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		nr := make([]string, len(keep))
		for j, i := range keep {
			nr[j] = row[i]
		}
		rows[r] = nr
	}
	return &Table{columns: cols, rows: rows}, dropped
}

// DropMissing removes rows where the column is missing. It returns the
// filtered table and the number of removed rows. Row order is kept.
func (t *Table) DropMissing(column string) (*Table, int, error) {
	idx := t.Index(column)
	if idx < 0 {
		return nil, 0, MissingColumnError(column, "drop rows with missing values")
	}
	res := t.Filter(func(row []string) bool {
		return !IsMissing(row[idx])
	})
	return res, t.Len() - res.Len(), nil
}

// Filter keeps rows for which keep returns true. The row passed to keep
// must not be modified.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	res := &Table{columns: t.columns}
	for _, row := range t.rows {
		if keep(row) {
			res.rows = append(res.rows, row)
		}
	}
	return res
}

// Duplicated returns the number of rows identical to an earlier row over
// all columns. Missing cells are equal to each other.
func (t *Table) Duplicated() int {
	seen := make(map[string]struct{}, len(t.rows))
	var res int
	for _, row := range t.rows {
		key := RowKey(row)
		if _, ok := seen[key]; ok {
			res++
			continue
		}
		seen[key] = struct{}{}
	}
	return res
}

// RowKey returns a stable UUID v5 string identifying the content of a row.
func RowKey(row []string) string {
	return gnuuid.New(strings.Join(row, "\x1f")).String()
}
