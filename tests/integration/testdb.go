// Package integration provides end-to-end tests for the document templating
// API. Tests run against an in-memory SQLite template store, the same driver
// the server uses for single-node deployments.
package integration

import (
	"testing"

	"github.com/docforge/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB represents a test database connection
type TestDB struct {
	DB *gorm.DB
	t  *testing.T
}

// NewTestDB creates a fresh in-memory template store with the schema migrated
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	require.NoError(t, db.AutoMigrate(&models.TemplateModel{}), "Failed to migrate schema")

	testDB := &TestDB{DB: db, t: t}
	t.Cleanup(func() { testDB.Close() })
	return testDB
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	sqlDB, err := tdb.DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

// CountTemplates returns the number of stored templates
func (tdb *TestDB) CountTemplates() int64 {
	tdb.t.Helper()

	var count int64
	require.NoError(tdb.t, tdb.DB.Model(&models.TemplateModel{}).Count(&count).Error)
	return count
}
