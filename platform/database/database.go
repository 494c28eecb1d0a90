// Package database opens the sql.DB backing the SQL entry store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open opens a connection pool for driver ("mysql" or "sqlite") and pings it
func Open(driver, dataSource string, pingTimeout time.Duration) (*sql.DB, error) {
	var db *sql.DB
	var err error
	switch driver {
	case "mysql":
		db, err = sql.Open("mysql", dataSource)
	case "sqlite":
		db, err = openSqlite(dataSource)
		if err == nil {
			// sqlite serialises writers, and ":memory:" is private to a single connection
			db.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}
