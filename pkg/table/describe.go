package table

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// ColumnCount pairs a column with a number, for example the number of
// missing cells in it.
type ColumnCount struct {
	Column string
	Count  int
}

// Summary keeps descriptive statistics of a numeric column.
// Std is the sample standard deviation, it is NaN for fewer than two
// values.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// MissingCounts returns the number of missing cells per column, in
// column order.
func (t *Table) MissingCounts() []ColumnCount {
	res := make([]ColumnCount, len(t.columns))
	for i, v := range t.columns {
		res[i].Column = v
	}
	for _, row := range t.rows {
		for i, v := range row {
			if IsMissing(v) {
				res[i].Count++
			}
		}
	}
	return res
}

// NumericColumns returns names of columns where every non-missing cell is
// a number and at least one such cell exists.
func (t *Table) NumericColumns() []string {
	var res []string
	for i, v := range t.columns {
		if _, ok := t.numbers(i); ok {
			res = append(res, v)
		}
	}
	return res
}

// Describe returns summaries of all numeric columns.
func (t *Table) Describe() []Summary {
	var res []Summary
	for i, v := range t.columns {
		vals, ok := t.numbers(i)
		if !ok {
			continue
		}
		res = append(res, summarize(v, vals))
	}
	return res
}

func (t *Table) numbers(col int) ([]float64, bool) {
	var res []float64
	for _, row := range t.rows {
		s := row[col]
		if IsMissing(s) {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		res = append(res, f)
	}
	return res, len(res) > 0
}

func summarize(column string, vals []float64) Summary {
	slices.Sort(vals)
	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) < 2 {
		std = math.NaN()
	}
	return Summary{
		Column: column,
		Count:  len(vals),
		Mean:   mean,
		Std:    std,
		Min:    vals[0],
		Q25:    quantile(vals, 0.25),
		Median: quantile(vals, 0.5),
		Q75:    quantile(vals, 0.75),
		Max:    vals[len(vals)-1],
	}
}

// quantile interpolates linearly between closest ranks of sorted values
// (h = (n-1)p). gonum's stat.Quantile offers empirical and LinInterp
// kinds that place the quantile differently.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	l, u := sorted[int(lo)], sorted[int(hi)]
	return l + (h-lo)*(u-l)
}
