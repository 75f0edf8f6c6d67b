package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/config"
)

// messageWriter is the slice of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	Writers     map[string]messageWriter
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]messageWriter)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: withRetryDefaults(retryConfig),
	}
}

func withRetryDefaults(retryConfig config.RetryConfig) config.RetryConfig {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return retryConfig
}

// Publish marshals message to JSON and writes it to topic. Messages that
// carry a wallet id are keyed by it so one wallet's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   messageKey(message),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for topic, writer := range p.Writers {
		if err := writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing writer for %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

type keyed interface {
	PartitionKey() string
}

func messageKey(message interface{}) []byte {
	if k, ok := message.(keyed); ok {
		return []byte(k.PartitionKey())
	}
	return nil
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer messageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("Message published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := calculateBackoff(p.RetryConfig, attempt)

		logrus.Warnf("Retry %d/%d for topic '%s' after %v: %v",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

// calculateBackoff doubles BaseDelay per attempt up to MaxDelay, with
// +-15% jitter when enabled.
func calculateBackoff(retryConfig config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * retryConfig.BaseDelay

	if delay > retryConfig.MaxDelay {
		delay = retryConfig.MaxDelay
	}

	if retryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// Backoff exposes the publisher's retry schedule to the subscriber.
func Backoff(retryConfig config.RetryConfig, attempt int) time.Duration {
	return calculateBackoff(retryConfig, attempt)
}
