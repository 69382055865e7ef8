package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Tables created by the migrations, in truncation order. Repository suites
// reset them between tests.
var testTables = []string{`"user"`}

func applyMigrations(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must point at the accounts migrations directory.")
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		panic(fmt.Sprintf("Could not connect to the accounts test database for migrations: %v.", err))
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		panic(fmt.Sprintf("Could not migrate the accounts test database: %v.", err))
	}
}

// CreateTestPool connects to the database named by TEST_POSTGRESQL_URL and
// brings its schema up to date. Suites that call it must gate on the variable
// being set.
func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	applyMigrations(connString)

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic(fmt.Sprintf("Could not connect to the accounts test database: %v.", err))
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	query := "TRUNCATE " + strings.Join(testTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(context.Background(), query); err != nil {
		panic(fmt.Sprintf("Could not truncate the accounts test tables: %v.", err))
	}
}
