// Package testutil provides shared helpers for storage tests.
// Postgres helpers skip when TEST_DATABASE_URL is not set, so the suite runs
// without a database; bbolt helpers always run against a temporary file.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	bolt "go.etcd.io/bbolt"

	"github.com/pkordes/trip-builder/migrations"
)

// DSNVar names the environment variable that enables Postgres tests.
const DSNVar = "TEST_DATABASE_URL"

// NewPool opens a *pgxpool.Pool on TEST_DATABASE_URL, closed when the test ends.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := openPool(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction that is rolled back when the test ends, so
// tests never see each other's rows.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB wraps a test pool in a *sql.DB for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPool(t))
	t.Cleanup(func() { db.Close() })
	return db
}

// MustMigrate applies every migration to the database at dsn and panics on
// failure. It is meant for TestMain, which has no *testing.T.
func MustMigrate(dsn string) {
	ctx := context.Background()
	pool, err := openPool(ctx, dsn)
	if err != nil {
		panic("testutil.MustMigrate: " + err.Error())
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		panic("testutil.MustMigrate: create provider: " + err.Error())
	}
	if _, err := provider.Up(ctx); err != nil {
		panic("testutil.MustMigrate: up: " + err.Error())
	}
}

// NewBoltDB opens a bbolt database in a per-test temporary directory.
// It is closed when the test finishes; the file is removed with the directory.
func NewBoltDB(t *testing.T) *bolt.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "drafts.db")
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("testutil.NewBoltDB: open: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNVar)
	if dsn == "" {
		t.Skip(DSNVar + " not set; skipping Postgres test")
	}
	return dsn
}
