// Package reference holds immutable lookup data used by the dashboard:
// approximate coordinates of citizenship codes eligible for the map view
// and the citizenship/continent reference table.
package reference

import (
	"fmt"
	"slices"

	"github.com/data4safety/d4s/pkg/templates"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// GeoEntry is a citizenship code with an optional coordinate.
type GeoEntry struct {
	Code string   `json:"code" yaml:"code" validate:"required"`
	Lat  *float64 `json:"lat"  yaml:"lat"  validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `json:"lon"  yaml:"lon"  validate:"omitempty,gte=-180,lte=180"`
}

// Citizenship is a row of the reference table.
type Citizenship struct {
	Code      string `json:"code"      yaml:"code"      validate:"required"`
	Country   string `json:"country"   yaml:"country"   validate:"required"`
	Continent string `json:"continent" yaml:"continent" validate:"required"`
}

type document struct {
	Geo         []GeoEntry    `yaml:"geo"         validate:"unique=Code,dive"`
	Citizenship []Citizenship `yaml:"citizenship" validate:"dive"`
}

// Reference is read-only after creation.
type Reference struct {
	geo         []GeoEntry
	byCode      map[string]GeoEntry
	citizenship []Citizenship
}

// New validates entries and creates a Reference. The order of codes in
// geo defines the order of the allow-list.
func New(geo []GeoEntry, citizenship []Citizenship) (*Reference, error) {
	doc := document{Geo: geo, Citizenship: citizenship}
	if err := validator.New().Struct(doc); err != nil {
		return nil, InvalidError(err)
	}
	for _, v := range geo {
		if (v.Lat == nil) != (v.Lon == nil) {
			return nil, InvalidError(
				fmt.Errorf("code %s: lat and lon must be set together", v.Code),
			)
		}
	}

	res := &Reference{
		geo:         make([]GeoEntry, len(geo)),
		byCode:      make(map[string]GeoEntry, len(geo)),
		citizenship: slices.Clone(citizenship),
	}
	for i, v := range geo {
		e := GeoEntry{Code: v.Code, Lat: cloneFloat(v.Lat), Lon: cloneFloat(v.Lon)}
		res.geo[i] = e
		res.byCode[e.Code] = e
	}
	return res, nil
}

// Parse reads reference data from YAML.
func Parse(data []byte) (*Reference, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ParseError(err)
	}
	return New(doc.Geo, doc.Citizenship)
}

// Default returns reference data embedded into the binary.
func Default() *Reference {
	res, err := Parse([]byte(templates.ReferenceYAML))
	if err != nil {
		panic(err)
	}
	return res
}

// Eligible returns true if the citizenship code belongs to the map view.
func (r *Reference) Eligible(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Coordinate returns copies of latitude and longitude for a code. Both are
// nil when the code is unknown or has no coordinate.
func (r *Reference) Coordinate(code string) (lat, lon *float64) {
	e, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return cloneFloat(e.Lat), cloneFloat(e.Lon)
}

// Codes returns the allow-list of codes in reference order.
func (r *Reference) Codes() []string {
	res := make([]string, len(r.geo))
	for i, v := range r.geo {
		res[i] = v.Code
	}
	return res
}

// Citizenship returns a copy of the reference table.
func (r *Reference) Citizenship() []Citizenship {
	return slices.Clone(r.citizenship)
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
