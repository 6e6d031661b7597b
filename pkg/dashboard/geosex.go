package dashboard

import (
	"cmp"
	"slices"

	"github.com/data4safety/d4s/pkg/table"
)

// Sentinels are codes meaning "no geography" or "no sex".
type Sentinels struct {
	Geo []string
	Sex []string
}

// DefaultSentinels map the numeric zero of the source schema and
// Eurostat's "unknown" code.
var DefaultSentinels = Sentinels{
	Geo: []string{"0", "UNK"},
	Sex: []string{"0", "UNK"},
}

// GeoSexValue is the sum of observation values for a geo and sex pair.
type GeoSexValue struct {
	Geo   string  `json:"geo"`
	Sex   string  `json:"sex"`
	Value float64 `json:"value"`
}

// GeoTotal is the height of one stacked bar.
type GeoTotal struct {
	Geo   string  `json:"geo"`
	Value float64 `json:"value"`
}

// GeoSex keeps values sorted by geo, then sex.
type GeoSex struct {
	Values []GeoSexValue `json:"values"`
	// ExcludedRows is the number of rows left out because geo or sex is a
	// sentinel or missing.
	ExcludedRows int `json:"excluded_rows"`
	// ExcludedValue is the sum of observation values of excluded rows.
	ExcludedValue float64 `json:"excluded_value"`
}

type geoSexKey struct {
	geo, sex string
}

// GeoSexOf excludes rows whose geo or sex is a sentinel or missing and
// sums OBS_VALUE per geo and sex.
func GeoSexOf(t *table.Table, s Sentinels) (GeoSex, error) {
	res := GeoSex{Values: []GeoSexValue{}}
	if t.Len() == 0 {
		return res, nil
	}
	c := locate(t)
	err := c.require("build the geo and sex chart", ColGeo, ColSex, ColObsValue)
	if err != nil {
		return res, err
	}

	sums := make(map[geoSexKey]float64)
	for _, row := range t.All() {
		r, err := c.record(row)
		if err != nil {
			return res, err
		}
		if slices.Contains(s.Geo, r.Geo) || slices.Contains(s.Sex, r.Sex) ||
			table.IsMissing(r.Geo) || table.IsMissing(r.Sex) {
			res.ExcludedRows++
			res.ExcludedValue += r.ObsValue
			continue
		}
		sums[geoSexKey{r.Geo, r.Sex}] += r.ObsValue
	}

	res.Values = make([]GeoSexValue, 0, len(sums))
	for k, v := range sums {
		res.Values = append(res.Values, GeoSexValue{Geo: k.geo, Sex: k.sex, Value: v})
	}
	slices.SortFunc(res.Values, func(a, b GeoSexValue) int {
		return cmp.Or(cmp.Compare(a.Geo, b.Geo), cmp.Compare(a.Sex, b.Sex))
	})
	return res, nil
}

// Geos returns distinct geo codes in order.
func (g GeoSex) Geos() []string {
	var res []string
	for _, v := range g.Values {
		if len(res) == 0 || res[len(res)-1] != v.Geo {
			res = append(res, v.Geo)
		}
	}
	return res
}

// Sexes returns distinct sex codes, sorted.
func (g GeoSex) Sexes() []string {
	var res []string
	for _, v := range g.Values {
		if !slices.Contains(res, v.Sex) {
			res = append(res, v.Sex)
		}
	}
	slices.Sort(res)
	return res
}

// Value returns the sum for a geo and sex pair, zero if absent.
func (g GeoSex) Value(geo, sex string) float64 {
	for _, v := range g.Values {
		if v.Geo == geo && v.Sex == sex {
			return v.Value
		}
	}
	return 0
}

// Totals returns one total per geo.
func (g GeoSex) Totals() []GeoTotal {
	var res []GeoTotal
	for _, v := range g.Values {
		if l := len(res); l > 0 && res[l-1].Geo == v.Geo {
			res[l-1].Value += v.Value
			continue
		}
		res = append(res, GeoTotal{Geo: v.Geo, Value: v.Value})
	}
	return res
}

// Total is the sum of all values.
func (g GeoSex) Total() float64 {
	var res float64
	for _, v := range g.Values {
		res += v.Value
	}
	return res
}
