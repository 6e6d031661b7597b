package ioweb

import (
	"math"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
)

// CleaningView is the JSON form of the "Data Cleaning" view.
type CleaningView struct {
	Columns        []string            `json:"columns"`
	RawPreview     [][]string          `json:"raw_preview"`
	RawRows        int                 `json:"raw_rows"`
	RawColumns     int                 `json:"raw_columns"`
	Describe       []summary           `json:"describe"`
	Missing        []table.ColumnCount `json:"missing"`
	DroppedColumns []string            `json:"dropped_columns"`
	CleanedColumns []string            `json:"cleaned_columns"`
	CleanedPreview [][]string          `json:"cleaned_preview"`
	Rows           int                 `json:"rows"`
	Removed        int                 `json:"removed"`
	Duplicates     int                 `json:"duplicates"`
}

// summary replaces NaN with null, JSON has no NaN.
type summary struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Q25    *float64 `json:"q25"`
	Median *float64 `json:"median"`
	Q75    *float64 `json:"q75"`
	Max    *float64 `json:"max"`
}

// NewCleaningView collects the cleaning report of one run.
func NewCleaningView(raw *table.Table, res *dashboard.Cleaning, preview int) CleaningView {
	rows, cols := raw.Shape()
	v := CleaningView{
		Columns:        raw.Columns(),
		RawPreview:     raw.Head(preview).Rows(),
		RawRows:        rows,
		RawColumns:     cols,
		Missing:        raw.MissingCounts(),
		DroppedColumns: res.DroppedColumns,
		CleanedColumns: res.Cleaned.Columns(),
		CleanedPreview: res.Cleaned.Head(preview).Rows(),
		Rows:           res.Cleaned.Len(),
		Removed:        res.Removed,
		Duplicates:     res.Duplicates,
	}
	for _, s := range raw.Describe() {
		v.Describe = append(v.Describe, summary{
			Column: s.Column,
			Count:  s.Count,
			Mean:   number(s.Mean),
			Std:    number(s.Std),
			Min:    number(s.Min),
			Q25:    number(s.Q25),
			Median: number(s.Median),
			Q75:    number(s.Q75),
			Max:    number(s.Max),
		})
	}
	return v
}

func number(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
