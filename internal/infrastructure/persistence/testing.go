//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	ReportRepo reports.ReportRepository
}

func postgresAdminDSN() string {
	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  postgresAdminDSN(),
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(postgresAdminDSN()+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	repo, err := NewGormReportRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create report repository")

	return &TestContext{
		DB:         db,
		ReportRepo: repo,
	}
}
