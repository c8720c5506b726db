package jetstream

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"kerala-tours/common/constant"
)

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/nats-io/nats.go/jetstream Publisher

// CreateQueueStream makes sure the work-queue stream carrying every booking and
// email subject exists. maxBytes <= 0 leaves the stream unbounded.
func CreateQueueStream(ctx context.Context, js jetstream.JetStream, maxBytes int64) (jetstream.Stream, error) {
	if maxBytes <= 0 {
		maxBytes = -1
	}

	cfg := jetstream.StreamConfig{
		Name:      constant.QueueStreamName,
		Retention: jetstream.WorkQueuePolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  maxBytes,
	}

	return js.CreateOrUpdateStream(ctx, cfg)
}
