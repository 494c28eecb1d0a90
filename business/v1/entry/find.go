package entry

import "context"

// Find returns the entry stored under title, ErrNotFound when there is none
func Find(ctx context.Context, store Store, title string) (Entry, error) {
	content, found, err := store.Get(ctx, title)
	if err != nil {
		return Entry{}, err
	}
	if !found {
		return Entry{}, ErrNotFound
	}
	return Entry{Title: title, Content: content}, nil
}

// List returns every title of store
func List(ctx context.Context, store Store) ([]string, error) {
	return store.List(ctx)
}
