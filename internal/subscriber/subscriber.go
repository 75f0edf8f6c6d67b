package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/config"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/publisher"
)

// maxReadBackoffStep caps the exponent of the delay between failed reads.
const maxReadBackoffStep = 10

// Handler processes one message. Errors wrapping apperrors.ErrInvalidArgument
// are not retried.
type Handler func(ctx context.Context, topic string, value []byte) error

// DLQPublisher receives messages that could not be handled.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Readers      []messageReader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]messageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per topic. They stop when ctx is done or
// Close is called.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r messageReader) {
			defer c.wg.Done()
			failures := 0
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					backoff := publisher.Backoff(c.RetryConfig, failures)
					if failures < maxReadBackoffStep {
						failures++
					}
					logrus.Errorf("Error reading from kafka: %s. Retrying in %v", err.Error(), backoff)
					select {
					case <-time.After(backoff):
					case <-ctx.Done():
						return
					}
					continue
				}
				failures = 0
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

// Close stops the listeners, waits for them to exit and closes the readers.
func (c *KafkaConsumer) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()
	var errs []error
	for _, reader := range c.Readers {
		if err := reader.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	log := logrus.WithFields(logrus.Fields{"topic": msg.Topic, "key": string(msg.Key)})

	var lastErr error
	attempts := 0
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}
		lastErr = err

		if errors.Is(err, apperrors.ErrInvalidArgument) {
			log.Warnf("Rejecting malformed message: %s", err.Error())
			break
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		log.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	log.Errorf("Message failed after %d attempts", attempts)
	c.sendToDLQ(ctx, msg, lastErr, attempts)
}

func (c *KafkaConsumer) sendToDLQ(ctx context.Context, msg kafka.Message, cause error, attempts int) {
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Reason:        cause.Error(),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.WebhookDLQTopic, dlqMessage); err != nil {
		logrus.Errorf("Error sending message to DLQ: %s", err.Error())
		return
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}
