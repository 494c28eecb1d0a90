package database

import (
	"testing"
	"time"
)

func TestOpenSqlite(t *testing.T) {
	db, err := Open("sqlite", ":memory:", time.Second)
	if err != nil {
		t.Fatalf("Test OpenSqlite: Should open an in memory database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t (v TEXT)"); err != nil {
		t.Fatalf("Test OpenSqlite: Should be usable: %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "", time.Second); err == nil {
		t.Fatalf("Test OpenUnknownDriver: Should reject an unknown driver")
	}
}
