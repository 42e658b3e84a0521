package helpers

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrescamacho/arcade-go/internal/adapters/persistence"
)

// SharedTestDB is the singleton database instance used across BDD scenarios
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database.
// Called once in TestMain before running any scenarios; individual
// scenarios reset their own rows instead of recreating the schema.
func InitializeSharedTestDB() error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}

	err = db.AutoMigrate(
		&persistence.SessionModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate shared test database: %w", err)
	}

	SharedTestDB = db
	return nil
}

// ResetSharedTestDB clears all rows between scenarios
func ResetSharedTestDB() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	return SharedTestDB.Exec("DELETE FROM sessions").Error
}

// CloseSharedTestDB closes the shared test database
func CloseSharedTestDB() {
	if SharedTestDB == nil {
		return
	}
	if sqlDB, err := SharedTestDB.DB(); err == nil {
		sqlDB.Close()
	}
}
