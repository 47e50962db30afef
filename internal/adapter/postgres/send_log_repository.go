package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

const recordColumns = `id, campaign_id, lead_id, kind, follow_up_id::text, status, sent_at, opened_at,
    clicked_at, error_message, created_at, updated_at`

// SendLogRepository implements port.SendLogRepository using pgxpool.
type SendLogRepository struct {
	pool *pgxpool.Pool
}

var _ port.SendLogRepository = (*SendLogRepository)(nil)

// NewSendLogRepository returns a new repository instance.
func NewSendLogRepository(pool *pgxpool.Pool) *SendLogRepository {
	return &SendLogRepository{pool: pool}
}

func (r *SendLogRepository) CreateRecord(ctx context.Context, rec *domain.SendRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Kind == "" {
		rec.Kind = domain.SendPrimary
	}
	if rec.Status == "" {
		rec.Status = domain.SendPending
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO send_records (id, campaign_id, lead_id, kind, follow_up_id, status, error_message)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`,
		rec.ID, rec.CampaignID, rec.LeadID, string(rec.Kind), rec.FollowUpID, string(rec.Status), rec.ErrorMessage,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert send record: %w", err)
	}
	return nil
}

func (r *SendLogRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE send_records SET status = 'sent', sent_at = $2, error_message = '', updated_at = now()
        WHERE id = $1 AND status = 'pending'`, id, at)
	if err != nil {
		return fmt.Errorf("mark record %s sent: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrRecordNotPending
	}
	return nil
}

func (r *SendLogRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE send_records SET status = 'failed', error_message = $2, updated_at = now()
        WHERE id = $1 AND status = 'pending'`, id, reason)
	if err != nil {
		return fmt.Errorf("mark record %s failed: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrRecordNotPending
	}
	return nil
}

func (r *SendLogRepository) DeliveredLeadIDs(ctx context.Context, campaignID string) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT lead_id::text
        FROM send_records
        WHERE campaign_id = $1 AND status = ANY($2)`,
		campaignID, statusStrings(domain.DeliveredStatuses))
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *SendLogRepository) CountPrimaryDelivered(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
        SELECT count(*)
        FROM send_records
        WHERE kind = 'primary' AND status = ANY($1) AND sent_at >= $2 AND sent_at < $3`,
		statusStrings(domain.DeliveredStatuses), from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count delivered: %w", err)
	}
	return n, nil
}

func (r *SendLogRepository) MarkLatestOpened(ctx context.Context, leadID string, at time.Time) (*domain.SendRecord, error) {
	return r.markLatest(ctx, `
        UPDATE send_records SET status = 'opened', opened_at = $2, updated_at = now()
        WHERE id = (
            SELECT id FROM send_records
            WHERE lead_id = $1 AND status = 'sent' AND opened_at IS NULL
            ORDER BY sent_at DESC NULLS LAST, created_at DESC
            LIMIT 1
            FOR UPDATE SKIP LOCKED)
        RETURNING `+recordColumns, leadID, at)
}

func (r *SendLogRepository) MarkLatestClicked(ctx context.Context, leadID string, at time.Time) (*domain.SendRecord, error) {
	return r.markLatest(ctx, `
        UPDATE send_records SET status = 'clicked', clicked_at = $2, updated_at = now()
        WHERE id = (
            SELECT id FROM send_records
            WHERE lead_id = $1 AND status IN ('sent', 'opened')
            ORDER BY sent_at DESC NULLS LAST, created_at DESC
            LIMIT 1
            FOR UPDATE SKIP LOCKED)
        RETURNING `+recordColumns, leadID, at)
}

func (r *SendLogRepository) markLatest(ctx context.Context, query, leadID string, at time.Time) (*domain.SendRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, query, leadID, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetStats counts records created in [From, To) by status.
func (r *SendLogRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT status, count(*)
        FROM send_records
        WHERE created_at >= $1 AND created_at < $2 %s
        GROUP BY status`, whereCampaign)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	type statusCount struct {
		Status domain.SendStatus
		Count  int64
	}
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[statusCount])
	if err != nil {
		return nil, err
	}
	resp := &port.StatsResp{}
	for _, c := range counts {
		switch c.Status {
		case domain.SendPending:
			resp.Pending = c.Count
		case domain.SendSent:
			resp.Sent = c.Count
		case domain.SendFailed:
			resp.Failed = c.Count
		case domain.SendOpened:
			resp.Opened = c.Count
		case domain.SendClicked:
			resp.Clicked = c.Count
		}
	}
	return resp, nil
}

func scanRecord(row pgx.Row) (domain.SendRecord, error) {
	var rec domain.SendRecord
	err := row.Scan(
		&rec.ID,
		&rec.CampaignID,
		&rec.LeadID,
		&rec.Kind,
		&rec.FollowUpID,
		&rec.Status,
		&rec.SentAt,
		&rec.OpenedAt,
		&rec.ClickedAt,
		&rec.ErrorMessage,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
