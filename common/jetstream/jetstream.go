package jetstream

import (
	"context"
	"event-map/common/constant"
	"fmt"
	"github.com/nats-io/nats.go/jetstream"
)

// CreateQueueStream creates, or updates in place, the work-queue stream that carries UI activity.
func CreateQueueStream(ctx context.Context, js jetstream.JetStream, maxBytes int64) (jetstream.Stream, error) {
	cfg := jetstream.StreamConfig{
		Name:      constant.QueueStreamName,
		Retention: jetstream.WorkQueuePolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  maxBytes,
	}

	st, err := js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create stream %s: %w", cfg.Name, err)
	}

	return st, nil
}
