// repository/db.go
package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

var (
	db     *sql.DB
	driver string
)

// Supported database drivers. SQLite is the default (single-file deployment,
// like the bot running on a small VPS); Postgres is used when DB_HOST is set.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// InitDB initializes the database connection and ensures the schema exists.
// It is idempotent and safe to call on every process start.
func InitDB() error {
	if os.Getenv("DB_HOST") != "" {
		return initPostgres()
	}
	return initSQLite()
}

// initPostgres connects to Postgres using the DB_* environment variables
func initPostgres() error {
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "didi_tracker")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	var err error
	db, err = sql.Open(DriverPostgres, connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}
	driver = DriverPostgres

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := createSchema(); err != nil {
		return err
	}

	log.Println("Successfully connected to the database (postgres)")
	return nil
}

// initSQLite opens (and creates if needed) the SQLite database file at
// DB_PATH, creating its parent directory first
func initSQLite() error {
	path := getEnvOrDefault("DB_PATH", utils.DefaultDBPath)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %v", err)
		}
	}

	// WAL keeps readers from blocking the single writer; the busy timeout
	// covers the occasional overlap between the bot and the HTTP API.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	var err error
	db, err = sql.Open(DriverSQLite, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}
	driver = DriverSQLite

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := createSchema(); err != nil {
		return err
	}

	log.Printf("Successfully opened the database (sqlite: %s)", path)
	return nil
}

// createSchema creates the trips table and its (user_id, day) index.
// Both queries run on the daily and weekly windows, so the composite index
// covers every read and the per-day delete.
func createSchema() error {
	var schema string
	if driver == DriverPostgres {
		schema = `
		CREATE TABLE IF NOT EXISTS trips (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			user_name TEXT,
			fare DOUBLE PRECISION NOT NULL,
			distance DOUBLE PRECISION NOT NULL,
			duration INTEGER NOT NULL,
			per_km DOUBLE PRECISION NOT NULL,
			per_hour DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			day TEXT NOT NULL
		)`
	} else {
		schema = `
		CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			user_name TEXT,
			fare REAL NOT NULL,
			distance REAL NOT NULL,
			duration INTEGER NOT NULL,
			per_km REAL NOT NULL,
			per_hour REAL NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			day TEXT NOT NULL
		)`
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create trips table: %v", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_user_day ON trips (user_id, day)"); err != nil {
		return fmt.Errorf("failed to create trips index: %v", err)
	}

	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

var placeholderRe = regexp.MustCompile(`\$\d+`)

// rebind converts $N placeholders to the ? form SQLite expects.
// Every query in this package lists its parameters in ascending order, so
// positional binding is preserved.
func rebind(query string) string {
	if driver == DriverSQLite {
		return placeholderRe.ReplaceAllString(query, "?")
	}
	return query
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
