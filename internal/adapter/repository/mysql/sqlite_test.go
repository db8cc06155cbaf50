package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens an in-memory sqlite database and migrates the sqlite-safe
// shadow models (MySQL enum columns become text). The real repositories are
// then exercised against it; column names and table names match production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&accountSQLite{},
		&scoreEventSQLite{},
		&edgeSQLite{},
		&offerSQLite{},
		&loanRequestSQLite{},
		&guarantorRequestSQLite{},
		&contractSQLite{},
		&transactionSQLite{},
		&notificationSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
