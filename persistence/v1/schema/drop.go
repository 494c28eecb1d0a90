package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/encyclopedia/sys"
)

// Drop removes the entries table and every entry with it
func Drop(ctx context.Context) error {
	if _, err := sys.R.Database.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
