package entry

import "context"

// Store is the set of persisted entries. Titles are case-sensitive keys.
type Store interface {
	// List returns every title, read from the backing medium at call time
	List(ctx context.Context) ([]string, error)
	// Exists reports whether title is in List
	Exists(ctx context.Context, title string) (bool, error)
	// Get returns the content of title. A missing entry is found == false with a nil error.
	Get(ctx context.Context, title string) (content string, found bool, err error)
	// Put creates or replaces the entry
	Put(ctx context.Context, title, content string) error
}
