package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		company_name TEXT,
		points INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPhoneRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE phone_records (
		id TEXT PRIMARY KEY,
		phone_number TEXT NOT NULL UNIQUE,
		company_name TEXT NOT NULL,
		description TEXT,
		registered_by TEXT NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT 1,
		verification_count INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		verified_since DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVerificationLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_logs (
		id TEXT PRIMARY KEY,
		phone_number TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createFraudReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE fraud_reports (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		report_type TEXT NOT NULL,
		phone_number TEXT,
		email_address TEXT,
		description TEXT NOT NULL,
		screenshot TEXT,
		status TEXT NOT NULL,
		risk_level TEXT NOT NULL,
		recommendation TEXT NOT NULL,
		confidence_score INTEGER NOT NULL,
		points_awarded INTEGER NOT NULL,
		reasons TEXT NOT NULL,
		created_at DATETIME
	);`)
}
