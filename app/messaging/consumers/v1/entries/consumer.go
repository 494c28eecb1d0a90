// Package entries consumes entry commands published by other services: "create" behaves like
// the new page form, "edit" like the edit form.
package entries

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/encyclopedia/business/v1/entry"
	"github.com/ribgsilva/encyclopedia/sys"
	"gocloud.dev/pubsub"
	"sync"
)

// Consume receives from sub until ctx is done, handling at most maxWorkers messages at once
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int, store entry.Store) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer func() {
				<-workers
				wg.Done()
			}()
			defer m.Ack()

			Handle(ctx, store, m.Body)
		}(message)
	}

	wg.Wait()

	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return nil
	}
	return err
}

// Handle applies a single message body. Failures are logged, the message is never redelivered.
func Handle(ctx context.Context, store entry.Store, body []byte) {
	logger := sys.R.Log
	logger.Infof("message received: %s", string(body))

	var e struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		logger.Error("failed to parse body: ", err)
		return
	}

	switch e.Type {
	case entry.EventCreate:
		var c entry.NewEntryRequest
		if err := json.Unmarshal(e.Data, &c); err != nil {
			logger.Errorf("failed to parse create event %s: %s", string(e.Data), err)
			return
		}
		c, err := entry.ValidateNewEntry(c)
		if err != nil {
			logger.Errorf("invalid create event %+v: %s", c, err)
			return
		}
		switch err := entry.Create(ctx, store, c); {
		case errors.Is(err, entry.ErrDuplicateTitle):
			logger.Warnf("entry %s already exists, create ignored", c.Title)
		case err != nil:
			logger.Errorf("failed to create entry %s: %s", c.Title, err)
		}
	case entry.EventEdit:
		var c entry.EditEntryRequest
		if err := json.Unmarshal(e.Data, &c); err != nil {
			logger.Errorf("failed to parse edit event %s: %s", string(e.Data), err)
			return
		}
		c, err := entry.ValidateEditEntry(c)
		if err != nil {
			logger.Errorf("invalid edit event %+v: %s", c, err)
			return
		}
		if err := entry.Save(ctx, store, c); err != nil {
			logger.Errorf("failed to save entry %s: %s", c.Title, err)
		}
	case entry.EventSaved:
		// our own notification, when topic and subscription are the same
	default:
		logger.Error("unknown event type: ", e.Type)
	}
}
