package publisher

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Noop stands in for Kafka when it is disabled. Messages are logged at debug level and dropped.
type Noop struct{}

func (Noop) Publish(_ context.Context, topic string, message interface{}) error {
	logrus.WithField("topic", topic).Debugf("Kafka disabled, dropping message %+v", message)
	return nil
}

func (Noop) Close() error { return nil }
