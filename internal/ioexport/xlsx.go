package ioexport

import (
	"github.com/xuri/excelize/v2"
)

const (
	sheetCleaned     = "Cleaned"
	sheetTimeSeries  = "TimeSeries"
	sheetCitizens    = "Citizens"
	sheetGeoSex      = "GeoSex"
	sheetCitizenship = "Citizenship"
)

// exportXLSX writes one sheet per view.
func exportXLSX(path string, s Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCleaned); err != nil {
		return err
	}
	rows := make([][]any, 0, s.Cleaned.Len())
	for _, row := range s.Cleaned.All() {
		rows = append(rows, toAny(row))
	}
	if err := writeSheet(f, sheetCleaned, s.Cleaned.Columns(), rows); err != nil {
		return err
	}

	d := s.Dashboard
	rows = nil
	for _, v := range d.TimeSeries.Points {
		rows = append(rows, []any{v.Period, v.Value})
	}
	if err := writeSheet(f, sheetTimeSeries, timeSeriesHeader, rows); err != nil {
		return err
	}

	rows = nil
	for _, v := range d.Citizens.Points {
		rows = append(rows, citizenRow(v))
	}
	if err := writeSheet(f, sheetCitizens, citizensHeader, rows); err != nil {
		return err
	}

	rows = nil
	for _, v := range d.GeoSex.Values {
		rows = append(rows, []any{v.Geo, v.Sex, v.Value})
	}
	if err := writeSheet(f, sheetGeoSex, geoSexHeader, rows); err != nil {
		return err
	}

	rows = nil
	for _, v := range d.Citizenship {
		rows = append(rows, []any{v.Code, v.Country, v.Continent})
	}
	if err := writeSheet(f, sheetCitizenship, citizenshipHeader, rows); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err = f.NewSheet(sheet); err != nil {
			return err
		}
	}

	hdr := toAny(header)
	if err = f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func toAny(ss []string) []any {
	res := make([]any, len(ss))
	for i, v := range ss {
		res[i] = v
	}
	return res
}
