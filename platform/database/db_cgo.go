//go:build cgo_sqlite

package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func openSqlite(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite3", dataSource)
}
