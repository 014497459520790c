// Package testdb provides helpers for tests that run against a real
// PostgreSQL instance: connection setup gated on DATABASE_URL, schema
// migration, and transaction-scoped isolation. Packages that only need the
// store interfaces should use internal/mocks instead.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// Timeout bounds individual database operations inside tests.
const Timeout = 5 * time.Second

// URL returns the database URL for tests: DATABASE_URL first, then
// COURSETRACK_TEST_DB_URL. Empty when neither is set.
func URL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("COURSETRACK_TEST_DB_URL")
}

// Available reports whether a test database is configured.
func Available() bool {
	return URL() != ""
}

// Connect opens a connection to the test database, skipping the test when no
// database is configured. The connection is closed automatically on cleanup.
func Connect(t *testing.T) *sql.DB {
	t.Helper()

	url := URL()
	if url == "" {
		t.Skip("DATABASE_URL or COURSETRACK_TEST_DB_URL not set - skipping database test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "database ping failed")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close database connection: %v", err)
		}
	})

	return db
}

// MigrateSchema applies the project's goose migrations to the test database.
// Safe to call repeatedly; already-applied migrations are skipped.
func MigrateSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	root, err := moduleRoot()
	require.NoError(t, err, "failed to locate module root")

	migrationsDir := filepath.Join(root, "migrations")
	require.DirExists(t, migrationsDir, "migrations directory missing: %s", migrationsDir)

	goose.SetLogger(&gooseTestLogger{t: t})
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, migrationsDir), "failed to run migrations")
}

// WithRollback runs fn inside a transaction that is rolled back afterwards,
// so the test leaves no rows behind regardless of outcome.
func WithRollback(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// moduleRoot walks upward from the working directory until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}

// gooseTestLogger routes goose output through the test log.
type gooseTestLogger struct {
	t *testing.T
}

func (l *gooseTestLogger) Printf(format string, v ...interface{}) {
	l.t.Log("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseTestLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatal("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
