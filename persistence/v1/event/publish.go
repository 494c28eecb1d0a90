package event

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/encyclopedia/sys"
	"gocloud.dev/pubsub"
)

// Publish sends e to the configured topic. It is a no-op without a topic, and a failure is
// logged only: the write that triggered the event already happened.
func Publish(ctx context.Context, e Event) {
	topic := sys.R.Topic
	if topic == nil {
		return
	}
	logger := sys.R.Log

	body, err := json.Marshal(e)
	if err != nil {
		logger.Errorf("failed to encode event %s: %s", e.Type, err)
		return
	}

	if t := sys.Configs.Messaging.PublishTimeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	if err := topic.Send(ctx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{"type": e.Type},
	}); err != nil {
		logger.Errorf("failed to publish event %s: %s", e.Type, err)
	}
}
