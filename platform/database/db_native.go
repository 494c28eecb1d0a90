//go:build !cgo_sqlite

package database

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

func openSqlite(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
