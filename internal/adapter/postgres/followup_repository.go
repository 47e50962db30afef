package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// FollowUpRepository implements port.FollowUpRepository using pgxpool.
type FollowUpRepository struct {
	pool *pgxpool.Pool
}

var _ port.FollowUpRepository = (*FollowUpRepository)(nil)

// NewFollowUpRepository returns a new repository instance.
func NewFollowUpRepository(pool *pgxpool.Pool) *FollowUpRepository {
	return &FollowUpRepository{pool: pool}
}

func (r *FollowUpRepository) CreateJob(ctx context.Context, job *domain.FollowUpJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = domain.FollowUpPending
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO follow_up_jobs (id, campaign_id, lead_id, send_record_id, type, scheduled_for, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`,
		job.ID, job.CampaignID, job.LeadID, job.SendRecordID, string(job.Type), job.ScheduledFor, string(job.Status),
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert follow-up %s: %w", job.Type, err)
	}
	return nil
}

func (r *FollowUpRepository) DueJobs(ctx context.Context, now time.Time) ([]domain.FollowUpJob, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, lead_id, send_record_id, type, scheduled_for, status, sent_at,
               error_message, created_at, updated_at
        FROM follow_up_jobs
        WHERE status = 'pending' AND scheduled_for <= $1
        ORDER BY scheduled_for, created_at`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FollowUpJob, error) {
		var job domain.FollowUpJob
		err := row.Scan(
			&job.ID,
			&job.CampaignID,
			&job.LeadID,
			&job.SendRecordID,
			&job.Type,
			&job.ScheduledFor,
			&job.Status,
			&job.SentAt,
			&job.ErrorMessage,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		return job, err
	})
}

func (r *FollowUpRepository) MarkJobSent(ctx context.Context, id string, at time.Time) error {
	return r.finish(ctx, `
        UPDATE follow_up_jobs SET status = 'sent', sent_at = $2, error_message = '', updated_at = now()
        WHERE id = $1 AND status = 'pending'`, id, at)
}

func (r *FollowUpRepository) MarkJobFailed(ctx context.Context, id string, reason string) error {
	return r.finish(ctx, `
        UPDATE follow_up_jobs SET status = 'failed', error_message = $2, updated_at = now()
        WHERE id = $1 AND status = 'pending'`, id, reason)
}

func (r *FollowUpRepository) finish(ctx context.Context, query, id string, arg any) error {
	tag, err := r.pool.Exec(ctx, query, id, arg)
	if err != nil {
		return fmt.Errorf("update follow-up %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrJobNotPending
	}
	return nil
}
