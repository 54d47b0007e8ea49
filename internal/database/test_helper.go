package database

import (
	"testing"

	"msme-carbon/internal/config"
	"msme-carbon/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the sender indicator schema
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every new connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestSenderIndicator stores an active indicator row
func CreateTestSenderIndicator(t *testing.T, db *DB, sector models.Sector, indicator string) *models.SenderIndicator {
	t.Helper()

	row := &models.SenderIndicator{
		SectorKey: sector.String(),
		Indicator: indicator,
		Active:    true,
	}

	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test sender indicator: %v", err)
	}

	return row
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM sender_indicators").Error; err != nil {
		t.Logf("failed to cleanup table sender_indicators: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}
