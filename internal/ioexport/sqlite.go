package ioexport

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// exportSQLite writes views as tables of a new SQLite database. Cells of
// the cleaned table are stored as text, empty cells as NULL.
func exportSQLite(path string, s Snapshot) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cols := s.Cleaned.Columns()
	rows := make([][]any, 0, s.Cleaned.Len())
	for _, row := range s.Cleaned.All() {
		r := make([]any, len(row))
		for i, v := range row {
			if v != "" {
				r[i] = v
			}
		}
		rows = append(rows, r)
	}
	if err = insertTable(tx, "cleaned", cols, nil, rows); err != nil {
		return err
	}

	d := s.Dashboard
	rows = nil
	for _, v := range d.TimeSeries.Points {
		rows = append(rows, []any{v.Period, v.Value})
	}
	err = insertTable(tx, "time_series", timeSeriesHeader,
		[]string{"TEXT PRIMARY KEY", "REAL"}, rows)
	if err != nil {
		return err
	}

	rows = nil
	for _, v := range d.Citizens.Points {
		rows = append(rows, citizenRow(v))
	}
	err = insertTable(tx, "citizens", citizensHeader,
		[]string{"TEXT PRIMARY KEY", "REAL", "REAL", "INTEGER", "REAL", "REAL"}, rows)
	if err != nil {
		return err
	}

	rows = nil
	for _, v := range d.GeoSex.Values {
		rows = append(rows, []any{v.Geo, v.Sex, v.Value})
	}
	err = insertTable(tx, "geo_sex", geoSexHeader,
		[]string{"TEXT", "TEXT", "REAL"}, rows)
	if err != nil {
		return err
	}

	rows = nil
	for _, v := range d.Citizenship {
		rows = append(rows, []any{v.Code, v.Country, v.Continent})
	}
	err = insertTable(tx, "citizenship", citizenshipHeader,
		[]string{"TEXT PRIMARY KEY", "TEXT", "TEXT"}, rows)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// insertTable creates a table and fills it. Column types default to TEXT.
func insertTable(
	tx *sql.Tx,
	name string,
	cols, types []string,
	rows [][]any,
) error {
	defs := make([]string, len(cols))
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, v := range cols {
		typ := "TEXT"
		if i < len(types) {
			typ = types[i]
		}
		names[i] = quoteIdent(v)
		defs[i] = names[i] + " " + typ
		marks[i] = "?"
	}

	q := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(defs, ", "))
	if _, err := tx.Exec(q); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	q = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(name), strings.Join(names, ", "), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err = stmt.Exec(row...); err != nil {
			return err
		}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
