package entry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"
)

// SQL stores entries as rows of the entries table, see persistence/v1/schema
type SQL struct {
	DB               *sql.DB
	OperationTimeout time.Duration
}

func (s SQL) List(ctx context.Context) ([]string, error) {
	dbCtx, dbCancel := withTimeout(ctx, s.OperationTimeout)
	defer dbCancel()

	rows, err := s.DB.QueryContext(dbCtx, "SELECT title FROM entries")
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list stmt: %w", err)
	}
	sort.Strings(titles)
	return titles, nil
}

func (s SQL) Exists(ctx context.Context, title string) (bool, error) {
	_, found, err := s.Get(ctx, title)
	return found, err
}

func (s SQL) Get(ctx context.Context, title string) (string, bool, error) {
	dbCtx, dbCancel := withTimeout(ctx, s.OperationTimeout)
	defer dbCancel()

	var content string
	err := s.DB.QueryRowContext(dbCtx, "SELECT content FROM entries WHERE title = ?", title).Scan(&content)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return content, true, nil
	}
}

// Put updates the row when present and inserts it otherwise. The two steps are not atomic,
// concurrent writers of the same title race like they do on the blob store.
func (s SQL) Put(ctx context.Context, title, content string) error {
	exists, err := s.Exists(ctx, title)
	if err != nil {
		return err
	}

	dbCtx, dbCancel := withTimeout(ctx, s.OperationTimeout)
	defer dbCancel()

	if exists {
		if _, err := s.DB.ExecContext(dbCtx, "UPDATE entries SET content = ? WHERE title = ?", content, title); err != nil {
			return fmt.Errorf("failed to exec update stmt: %w", err)
		}
		return nil
	}
	if _, err := s.DB.ExecContext(dbCtx, "INSERT INTO entries (title, content) VALUES (?, ?)", title, content); err != nil {
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return nil
}
