package infra

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/focusquest/platform/internal/guard"
	"github.com/focusquest/platform/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

const brokerCircuitKey = "kafka"

// OutboxPoller drains event_outbox and publishes to Kafka. A circuit
// breaker stops hammering the broker while it is down; unpublished rows
// stay in the table and are retried on the next poll.
type OutboxPoller struct {
	pool      *pgxpool.Pool
	outbox    repository.OutboxRepository
	producer  *KafkaProducer
	breaker   *guard.CircuitBreaker
	metrics   *Metrics
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

// NewOutboxPoller creates a new outbox poller.
func NewOutboxPoller(
	pool *pgxpool.Pool,
	outbox repository.OutboxRepository,
	producer *KafkaProducer,
	metrics *Metrics,
	logger *slog.Logger,
) *OutboxPoller {
	return &OutboxPoller{
		pool:      pool,
		outbox:    outbox,
		producer:  producer,
		breaker:   guard.NewCircuitBreaker(5, 10*time.Second),
		metrics:   metrics,
		logger:    logger,
		interval:  500 * time.Millisecond,
		batchSize: 100,
	}
}

// Start begins polling in a goroutine. Stops when ctx is cancelled.
func (p *OutboxPoller) Start(ctx context.Context) {
	p.logger.Info("outbox poller started", "interval", p.interval, "batch_size", p.batchSize)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("outbox poller stopped")
				return
			case <-ticker.C:
				if err := p.poll(ctx); err != nil {
					p.logger.Error("outbox poll error", "error", err)
				}
			}
		}
	}()
}

func (p *OutboxPoller) poll(ctx context.Context) error {
	events, err := p.outbox.FetchUnpublished(ctx, p.pool, p.batchSize)
	if err != nil {
		return err
	}
	if p.metrics != nil {
		p.metrics.SetOutboxPending(len(events))
	}
	if len(events) == 0 {
		return nil
	}

	var published []int64
	for _, e := range events {
		if res := p.breaker.Check(ctx, brokerCircuitKey); !res.Allowed {
			p.logger.Warn("kafka circuit open, deferring outbox batch", "pending", len(events))
			break
		}

		msg, _ := json.Marshal(map[string]interface{}{
			"event_id":       e.EventID,
			"aggregate_type": e.AggregateType,
			"aggregate_id":   e.AggregateID,
			"event_type":     e.EventType,
			"payload":        e.Payload,
			"occurred_at":    e.OccurredAt,
		})

		topic := topicForEvent(string(e.EventType))
		if err := p.producer.Publish(ctx, topic, []byte(e.PartitionKey), msg); err != nil {
			p.breaker.RecordFailure(brokerCircuitKey)
			p.logger.Error("kafka publish failed", "event_id", e.EventID, "error", err)
			continue
		}
		p.breaker.RecordSuccess(brokerCircuitKey)
		published = append(published, e.SeqID)
	}

	if err := p.outbox.MarkPublished(ctx, p.pool, published); err != nil {
		return err
	}
	if len(published) > 0 {
		p.logger.Debug("outbox poll complete", "published", len(published))
	}
	return nil
}

// topicForEvent maps the stored event type (fq.game.level_up) to its Kafka
// topic (focusquest.game.level_up).
func topicForEvent(eventType string) string {
	return "focusquest." + strings.TrimPrefix(eventType, "fq.")
}
