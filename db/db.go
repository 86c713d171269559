package db

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db      *sql.DB
	once    sync.Once
	initErr error
)

// Init opens the sqlite database at databaseURL. Only the first call has
// any effect; later calls return its error.
func Init(databaseURL string) error {
	once.Do(func() {
		initErr = open("sqlite3", databaseURL)
	})
	return initErr
}

func open(driver, databaseURL string) error {
	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db = conn
	log.Printf("[db] Database initialized: %s", databaseURL)
	return nil
}

// Initialized reports whether a connection is available.
func Initialized() bool {
	return db != nil
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

func Ping() error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	return db.Ping()
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
