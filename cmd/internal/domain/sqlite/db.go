package sqlite

import (
	"time"

	"goldcredit/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens (or creates) the SQLite store at dbPath and migrates the
// schema. Pass ":memory:" for an ephemeral database in tests.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Cascade deletes rely on SQLite actually enforcing foreign keys.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Cedente{},
		&entity.DocumentChecklist{},
		&entity.Notification{},
		&entity.User{},
		&entity.Company{},
		&entity.CompanyPartner{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
