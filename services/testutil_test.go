package services

import (
	"testing"

	"github.com/dagger983/Umpire11-Backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UpcomingMatch{},
		&models.FeaturedMatch{},
		&models.Contest{},
		&models.JoinedContest{},
		&models.Player{},
		&models.SelectedTeam{},
		&models.Result{},
		&models.Bot{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func floatPtr(v float64) *float64 {
	return &v
}
