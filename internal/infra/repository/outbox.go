package repository

import (
	"context"

	"github.com/Fabri-com/esteticas/internal/infra"
	sqlc "github.com/Fabri-com/esteticas/internal/infra/sqlc/generated"
	"github.com/Fabri-com/esteticas/internal/pkg/pgconv"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

const jobStatusQueued = "queued"

type OutboxWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobsPublished(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) error
	MarkNotificationJobsFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobsFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, msg shared.OutboxMessage) error {
	err := r.queries.CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		Kind:        msg.Kind,
		Topic:       msg.Topic,
		AggregateID: msg.AggregateID,
		Payload:     msg.Payload,
		Status:      jobStatusQueued,
		RunAt:       pgconv.TimeToPgtype(msg.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimDue locks up to batchSize due jobs; other relays skip them until tx ends.
func (r *OutboxRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]shared.OutboxJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		MaxAttempts: int32(maxAttempts), // #nosec G115 -- small config value
		BatchSize:   int32(batchSize),   // #nosec G115 -- small config value
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.OutboxJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.OutboxJob{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.queries.MarkNotificationJobsPublished(ctx, tx, ids); err != nil {
		return infra.WrapRepoErr("failed to mark notification jobs published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, lastError string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkNotificationJobsFailed(ctx, tx, sqlc.MarkNotificationJobsFailedParams{
		LastError: lastError,
		Ids:       ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification jobs failed", err)
	}
	return nil
}
