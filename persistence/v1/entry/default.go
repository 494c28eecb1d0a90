package entry

import (
	"context"
	"fmt"
	"github.com/ribgsilva/encyclopedia/sys"
)

// Store is implemented by Blob and SQL
type Store interface {
	List(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, title string) (bool, error)
	Get(ctx context.Context, title string) (string, bool, error)
	Put(ctx context.Context, title, content string) error
}

// Default returns the store selected by sys.Configs.Store.Driver, over the resources of sys.R
func Default() (Store, error) {
	switch sys.Configs.Store.Driver {
	case "", "blob":
		if sys.R.Bucket == nil {
			return nil, fmt.Errorf("blob store: no bucket")
		}
		return Blob{Bucket: sys.R.Bucket, OperationTimeout: sys.Configs.Store.OperationTimeout}, nil
	case "mysql", "sqlite":
		if sys.R.Database == nil {
			return nil, fmt.Errorf("sql store: no database")
		}
		return SQL{DB: sys.R.Database, OperationTimeout: sys.Configs.Database.OperationTimeout}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", sys.Configs.Store.Driver)
	}
}
