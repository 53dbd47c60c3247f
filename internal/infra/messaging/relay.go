package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/pkg/config"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultPollEvery = 2 * time.Second
	defaultBatchSize = 50
	maxAttempts      = 10
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Relay publishes notification jobs written by the booking transactions.
// Delivery is at least once; consumers dedupe on the job_id header.
type Relay struct {
	uow       shared.UnitOfWork
	writer    MessageWriter
	logger    *slog.Logger
	tracer    trace.Tracer
	pollEvery time.Duration
	batchSize int
}

func NewRelay(uow shared.UnitOfWork, writer MessageWriter, cfg config.KafkaConfig, logger *slog.Logger) *Relay {
	pollEvery := cfg.PollEvery
	if pollEvery <= 0 {
		pollEvery = defaultPollEvery
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relay{
		uow:       uow,
		writer:    writer,
		logger:    logger,
		tracer:    otel.Tracer("github.com/Fabri-com/esteticas/internal/infra/messaging"),
		pollEvery: pollEvery,
		batchSize: batchSize,
	}
}

// Enabled reports whether a broker connection was configured.
func (r *Relay) Enabled() bool {
	return r.writer != nil
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	if !r.Enabled() {
		r.logger.Warn("outbox relay disabled (no kafka brokers configured)")
		return
	}

	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.PublishBatch(ctx); err != nil && ctx.Err() == nil {
				r.logger.ErrorContext(ctx, "outbox publish failed", "error", err.Error())
			}
		}
	}
}

// PublishBatch claims due jobs and writes them to Kafka in one transaction.
// A failed write marks the batch for a delayed retry instead of rolling back.
func (r *Relay) PublishBatch(ctx context.Context) (int, error) {
	ctx, span := r.tracer.Start(ctx, "outbox.publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		jobs, err := tx.Outbox().ClaimDue(ctx, tx.DB(), r.batchSize, maxAttempts)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(jobs))
		msgs := make([]kafka.Message, 0, len(jobs))
		for _, job := range jobs {
			ids = append(ids, job.ID)
			msgs = append(msgs, r.toMessage(ctx, job))
		}

		if werr := r.writer.WriteMessages(ctx, msgs...); werr != nil {
			r.logger.WarnContext(ctx, "kafka write failed, scheduling retry", "jobs", len(jobs), "error", werr.Error())
			return tx.Outbox().MarkFailed(ctx, tx.DB(), ids, werr.Error())
		}
		if err := tx.Outbox().MarkPublished(ctx, tx.DB(), ids); err != nil {
			return err
		}
		published = len(jobs)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "outbox publish failed")
		return 0, errs.Wrap(err, "outbox publish")
	}

	span.SetAttributes(attribute.Int("outbox.published", published))
	if published > 0 {
		r.logger.DebugContext(ctx, "outbox jobs published", "count", published)
	}
	return published, nil
}

func (r *Relay) toMessage(ctx context.Context, job shared.OutboxJob) kafka.Message {
	headers := []kafka.Header{
		{Key: headerJobID, Value: []byte(job.ID.String())},
		{Key: headerKind, Value: []byte(job.Kind)},
	}
	return kafka.Message{
		Topic:   job.Topic,
		Key:     []byte(job.AggregateID.String()),
		Value:   job.Payload,
		Headers: InjectTraceHeaders(ctx, headers),
		Time:    job.CreatedAt,
	}
}
