// Package schema provides GORM models of a published dashboard snapshot.
// Every row belongs to one publishing run, runs never overwrite each
// other.
package schema

import (
	"time"
)

// Run describes one publish of a cleaned table.
type Run struct {
	// ID is a random UUID of the run.
	ID string `gorm:"type:uuid;primaryKey"`

	// CreatedAt is set by GORM or by the publisher.
	CreatedAt time.Time

	// InputPath is the file the table was loaded from.
	InputPath string `gorm:"type:text"`

	// Rows is the number of cleaned rows.
	Rows int

	// Removed is the number of rows without citizen.
	Removed int

	// Duplicates is the number of repeated rows in the cleaned table.
	Duplicates int

	// PeriodStart and PeriodEnd delimit the time series.
	PeriodStart string `gorm:"type:varchar(20)"`
	PeriodEnd   string `gorm:"type:varchar(20)"`
}

// TableName is the table of runs.
func (Run) TableName() string { return "publish_runs" }

// Decision is one row of the cleaned table.
type Decision struct {
	RunID  string `gorm:"type:uuid;primaryKey"`
	RowNum int    `gorm:"primaryKey"`

	// RowKey is a UUID v5 of the row content, equal for duplicate rows.
	RowKey string `gorm:"type:uuid;index"`

	TimePeriod string `gorm:"type:varchar(20)"`
	Citizen    string `gorm:"type:varchar(20);index"`
	Geo        string `gorm:"type:varchar(20)"`
	Sex        string `gorm:"type:varchar(10)"`

	// ObsValue is NULL when missing.
	ObsValue *float64 `gorm:"type:double precision"`
}

// TimeSeriesPoint is a monthly total.
type TimeSeriesPoint struct {
	RunID  string  `gorm:"type:uuid;primaryKey"`
	Period string  `gorm:"type:varchar(20);primaryKey"`
	Value  float64 `gorm:"type:double precision"`
}

// CitizenCount is one point of the citizenship map.
type CitizenCount struct {
	RunID   string   `gorm:"type:uuid;primaryKey"`
	Citizen string   `gorm:"type:varchar(20);primaryKey"`
	Lat     *float64 `gorm:"type:double precision"`
	Lon     *float64 `gorm:"type:double precision"`
	Count   int      `gorm:"not null"`
	Radius  float64  `gorm:"type:double precision"`
}

// GeoSexTotal is one segment of the stacked geo and sex bars.
type GeoSexTotal struct {
	RunID string  `gorm:"type:uuid;primaryKey"`
	Geo   string  `gorm:"type:varchar(20);primaryKey"`
	Sex   string  `gorm:"type:varchar(10);primaryKey"`
	Value float64 `gorm:"type:double precision"`
}
