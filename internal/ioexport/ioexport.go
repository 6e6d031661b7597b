// Package ioexport saves the cleaned table and the dashboard summaries to
// files: an Excel workbook, a SQLite database or a JSON document.
package ioexport

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/data4safety/d4s/pkg/dashboard"
	"github.com/data4safety/d4s/pkg/table"
)

// Format of an export file.
type Format string

const (
	XLSX   Format = "xlsx"
	SQLite Format = "sqlite"
	JSON   Format = "json"
)

// Formats lists supported formats.
var Formats = []Format{XLSX, SQLite, JSON}

// ParseFormat converts a name to a Format. Empty name is guessed from the
// extension of path.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
		if name == "db" || name == "sqlite3" {
			name = string(SQLite)
		}
	}
	res := Format(strings.ToLower(name))
	if !slices.Contains(Formats, res) {
		return "", ExportError(path, fmt.Errorf("unknown format %q", name))
	}
	return res, nil
}

// Snapshot is everything written by an export.
type Snapshot struct {
	Cleaned   *table.Table
	Dashboard *dashboard.Dashboard
}

// Export writes the snapshot to path in the given format. An existing file
// is replaced.
func Export(f Format, path string, s Snapshot) error {
	var err error
	switch f {
	case XLSX:
		err = exportXLSX(path, s)
	case SQLite:
		err = exportSQLite(path, s)
	case JSON:
		err = exportJSON(path, s)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return ExportError(path, err)
	}
	slog.Info("Export saved", "format", f, "path", path, "rows", s.Cleaned.Len())
	return nil
}

// row helpers shared by formats

func citizenRow(v dashboard.CitizenPoint) []any {
	var lat, lon any
	if v.HasCoordinate() {
		lat, lon = *v.Lat, *v.Lon
	}
	return []any{v.Citizen, lat, lon, v.Count, v.Radius, v.RadiusScaled}
}

var (
	timeSeriesHeader  = []string{"period", "value"}
	citizensHeader    = []string{"citizen", "lat", "lon", "count", "radius", "radius_scaled"}
	geoSexHeader      = []string{"geo", "sex", "value"}
	citizenshipHeader = []string{"code", "country", "continent"}
)
