package db

import (
	"database/sql"
	"fmt"
	"log"

	"bookstore-be/internal/config"

	_ "modernc.org/sqlite"
)

// The whole catalog lives in one store file with three tables. Schema
// creation is additive-only: reopening an existing store must neither fail
// nor duplicate anything.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		author TEXT,
		genre TEXT,
		description TEXT,
		shelf_position TEXT,
		buy_price INTEGER,
		sell_price INTEGER,
		stock INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		total_qty INTEGER,
		total_amount INTEGER,
		created_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT,
		book_id INTEGER,
		quantity INTEGER,
		unit_price INTEGER,
		total INTEGER,
		FOREIGN KEY(order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY(book_id) REFERENCES books(id) ON DELETE CASCADE
	)`,
}

func buildDSN(cfg *config.Config) string {
	// foreign_keys is off by default in sqlite; both cascades depend on it.
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		cfg.DBPath,
	)
}

func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(cfg, "sqlite")
}

func newDatabaseWithDriver(cfg *config.Config, driverName string) (*sql.DB, error) {
	database, err := sql.Open(driverName, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// One interactive session, one connection. Pinning the pool also keeps
	// the busy_timeout/foreign_keys pragmas on the connection actually used.
	database.SetMaxOpenConns(1)

	if err = database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err = createTables(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return database, nil
}

func createTables(database *sql.DB) error {
	for _, ddl := range schema {
		if _, err := database.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// InitDB opens the store or exits. Used by the binaries; tests and anything
// that wants to handle the error call NewDatabase directly.
func InitDB(cfg *config.Config) *sql.DB {
	database, err := NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	log.Println("Store connection established")
	return database
}
