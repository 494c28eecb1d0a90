package entry

import (
	"context"
	"github.com/ribgsilva/encyclopedia/persistence/v1/event"
)

// Save overwrites the entry, creating it when absent
func Save(ctx context.Context, store Store, edit EditEntryRequest) error {
	if err := store.Put(ctx, edit.Title, edit.Content); err != nil {
		return err
	}
	event.Publish(ctx, event.Event{Type: EventSaved, Data: Saved{Title: edit.Title}})
	return nil
}
