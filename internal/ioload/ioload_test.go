package ioload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/data4safety/d4s/internal/ioload"
	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `DATAFLOW,LAST UPDATE,freq,unit,citizen,sex,age,geo,TIME_PERIOD,OBS_VALUE,OBS_FLAG,CONF_STATUS
ESTAT:MIGR_ASYTPFM(1.0),12/01/24 23:00:00,M,PER,UA,F,TOTAL,PL,2022-03,20,,
ESTAT:MIGR_ASYTPFM(1.0),12/01/24 23:00:00,M,PER,NaN,M,TOTAL,EL,2022-04, 5 ,p,
ESTAT:MIGR_ASYTPFM(1.0),12/01/24 23:00:00,M,PER,NA,F,TOTAL,DE,2022-04,null,,
`

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "decisions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tbl, err := ioload.Load(writeFile(t, sample), ',')
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 12, cols)

	citizen := tbl.Index("citizen")
	value := tbl.Index("OBS_VALUE")
	assert.Equal(t, "UA", tbl.Cell(0, citizen))
	assert.Equal(t, "", tbl.Cell(1, citizen), "NaN is missing")
	assert.Equal(t, "5", tbl.Cell(1, value), "cells are trimmed")
	assert.Equal(t, "NA", tbl.Cell(2, citizen), "Namibia is kept")
	assert.Equal(t, "", tbl.Cell(2, value))
}

func TestLoadBOMAndDelimiter(t *testing.T) {
	data := "\xEF\xBB\xBFcitizen;OBS_VALUE\nUA;3\n"
	tbl, err := ioload.Load(writeFile(t, data), ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"citizen", "OBS_VALUE"}, tbl.Columns())
	assert.Equal(t, "3", tbl.Cell(0, 1))
}

func TestLoadEmpty(t *testing.T) {
	tbl, err := ioload.Load(writeFile(t, ""), ',')
	require.NoError(t, err)
	rows, cols := tbl.Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	tbl, err = ioload.Load(writeFile(t, "citizen,OBS_VALUE\n"), ',')
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.True(t, tbl.Has("citizen"))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		line int
	}{
		{
			name: "missing file",
			path: filepath.Join(t.TempDir(), "absent.csv"),
		},
		{
			name: "field count",
			path: writeFile(t, "a,b\n1,2\n3\n"),
			line: 3,
		},
		{
			name: "bare quote",
			path: writeFile(t, "a,b\n1,\"2\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ioload.Load(tt.path, ',')
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.DataLoadError, gnErr.Code)
			assert.Equal(t, tt.path, gnErr.Vars[0])
			if tt.line > 0 {
				require.Len(t, gnErr.Vars, 3)
				assert.Equal(t, tt.line, gnErr.Vars[1])
			}
		})
	}
}

func TestReadFixesUtf8(t *testing.T) {
	tbl, err := ioload.Read(strings.NewReader("name\nR\xe9union\n"), ',')
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(tbl.Cell(0, 0)))
	assert.True(t, strings.HasPrefix(tbl.Cell(0, 0), "R"))
}
