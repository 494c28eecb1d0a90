package entry

import (
	"context"
	"github.com/ribgsilva/encyclopedia/persistence/v1/event"
)

// Create stores a new entry. It never overwrites: an existing title is ErrDuplicateTitle.
func Create(ctx context.Context, store Store, newE NewEntryRequest) error {
	exists, err := store.Exists(ctx, newE.Title)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateTitle
	}

	if err := store.Put(ctx, newE.Title, newE.Content); err != nil {
		return err
	}
	event.Publish(ctx, event.Event{Type: EventSaved, Data: Saved{Title: newE.Title}})
	return nil
}
