package dashboard

import (
	"slices"

	"github.com/data4safety/d4s/pkg/table"
)

// DefaultDropColumns are metadata columns that are mostly empty in the
// source export. Clean always drops them.
var DefaultDropColumns = []string{ColObsFlag, ColConfStatus}

// Cleaning is the outcome of Clean.
type Cleaning struct {
	// Cleaned has no dropped columns and no rows with a missing citizen.
	Cleaned *table.Table
	// DroppedColumns lists columns that existed and were removed.
	DroppedColumns []string
	// Removed is the number of rows without a citizen.
	Removed int
	// Duplicates is the number of rows in Cleaned that repeat an earlier
	// row. They are reported, not removed.
	Duplicates int
}

// Clean drops DefaultDropColumns and the extra columns (absent ones are
// ignored) and then every row with a missing citizen. The order of
// remaining rows is kept. Cleaning an already cleaned table changes
// nothing. A table without columns and rows, as read from an empty
// file, is returned unchanged.
func Clean(raw *table.Table, extraColumns []string) (*Cleaning, error) {
	if rows, cols := raw.Shape(); rows == 0 && cols == 0 {
		return &Cleaning{Cleaned: raw}, nil
	}
	if !raw.Has(ColCitizen) {
		return nil, table.MissingColumnError(ColCitizen, "clean the table")
	}

	res := &Cleaning{}
	drop := append(slices.Clone(DefaultDropColumns), extraColumns...)
	tbl, dropped := raw.DropColumns(drop...)
	res.DroppedColumns = dropped

	tbl, removed, err := tbl.DropMissing(ColCitizen)
	if err != nil {
		return nil, err
	}
	res.Cleaned = tbl
	res.Removed = removed
	res.Duplicates = tbl.Duplicated()
	return res, nil
}
