package reference_test

import (
	"testing"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/data4safety/d4s/pkg/reference"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestDefault(t *testing.T) {
	ref := reference.Default()
	codes := ref.Codes()
	assert.Len(t, codes, 34)
	assert.Equal(t, "AD", codes[0])
	assert.Equal(t, "ZW", codes[33])

	assert.True(t, ref.Eligible("UA"))
	assert.True(t, ref.Eligible("STLS"))
	assert.False(t, ref.Eligible("SY"), "allow-list is narrower than all codes")

	lat, lon := ref.Coordinate("AD")
	require.NotNil(t, lat)
	require.NotNil(t, lon)
	assert.Equal(t, 42.5462, *lat)
	assert.Equal(t, 1.6016, *lon)

	for _, code := range []string{"IS", "VU"} {
		lat, lon = ref.Coordinate(code)
		assert.Nil(t, lat, code)
		assert.Nil(t, lon, code)
	}

	cit := ref.Citizenship()
	require.Len(t, cit, 34)
	assert.Equal(t, reference.Citizenship{
		Code: "CF", Country: "République centrafricaine", Continent: "Afrique",
	}, cit[6])
	assert.Equal(t, "Norvège", cit[22].Country, "NO stays a string")
}

func TestImmutable(t *testing.T) {
	ref := reference.Default()

	lat, _ := ref.Coordinate("AD")
	*lat = 0
	lat2, _ := ref.Coordinate("AD")
	assert.Equal(t, 42.5462, *lat2)

	cit := ref.Citizenship()
	cit[0].Country = "changed"
	assert.Equal(t, "Andorre", ref.Citizenship()[0].Country)

	geo := []reference.GeoEntry{{Code: "XX", Lat: ptr(1), Lon: ptr(2)}}
	ref2, err := reference.New(geo, nil)
	require.NoError(t, err)
	*geo[0].Lat = 50
	lat3, _ := ref2.Coordinate("XX")
	assert.Equal(t, 1.0, *lat3)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		msg string
		geo []reference.GeoEntry
		cit []reference.Citizenship
	}{
		{
			msg: "empty code",
			geo: []reference.GeoEntry{{Code: ""}},
		},
		{
			msg: "latitude out of range",
			geo: []reference.GeoEntry{{Code: "AA", Lat: ptr(91), Lon: ptr(0)}},
		},
		{
			msg: "longitude out of range",
			geo: []reference.GeoEntry{{Code: "AA", Lat: ptr(0), Lon: ptr(-181)}},
		},
		{
			msg: "half a coordinate",
			geo: []reference.GeoEntry{{Code: "AA", Lat: ptr(10)}},
		},
		{
			msg: "duplicate codes",
			geo: []reference.GeoEntry{{Code: "AA"}, {Code: "AA"}},
		},
		{
			msg: "citizenship without country",
			cit: []reference.Citizenship{{Code: "AA", Continent: "Europe"}},
		},
	}

	for _, v := range tests {
		_, err := reference.New(v.geo, v.cit)
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.ReferenceError, gnErr.Code, v.msg)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
geo:
  - code: "XK"
    lat: 42.6
    lon: 20.9
  - code: "ZZ"
citizenship:
  - code: "XK"
    country: Kosovo
    continent: Europe
`)
	ref, err := reference.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"XK", "ZZ"}, ref.Codes())
	lat, _ := ref.Coordinate("ZZ")
	assert.Nil(t, lat)

	_, err = reference.Parse([]byte("geo: [unclosed"))
	require.Error(t, err)
	assert.Equal(t, errcode.ReferenceError, err.(*gn.Error).Code)
}
