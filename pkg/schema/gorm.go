package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Run{},
		&Decision{},
		&TimeSeriesPoint{},
		&CitizenCount{},
		&GeoSexTotal{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// TableNames returns table names of all models in AllModels order.
func TableNames(db *gorm.DB) ([]string, error) {
	var res []string
	for _, v := range AllModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(v); err != nil {
			return nil, err
		}
		res = append(res, stmt.Schema.Table)
	}
	return res, nil
}
