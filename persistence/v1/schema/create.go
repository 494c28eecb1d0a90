package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/encyclopedia/sys"
)

// Create creates the entries table for the configured store driver
func Create(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, createStmt(sys.Configs.Store.Driver)); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
