package status_events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "kafka"
	methodName  = "PublishStatusChanged"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type StatusEventsGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *StatusEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &StatusEventsGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// PublishStatusChanged пишет событие с ключом по номеру отслеживания,
// чтобы события одной посылки попадали в одну партицию.
func (g *StatusEventsGateway) PublishStatusChanged(ctx context.Context, event entities.ParcelStatusChanged) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("gateway status events, marshal: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.TrackingNumber),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.executeWithMetrics(ctx, methodName, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway status events, publish %s: %w", event.TrackingNumber, err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNetworkException):
		return true
	default:
		return false
	}
}

func (g *StatusEventsGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getKafkaCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getKafkaCode(err error) string {
	if err == nil {
		return "OK"
	}
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return kerr.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "CONTEXT"
	}
	return "UNKNOWN"
}
