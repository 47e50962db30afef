package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

const campaignColumns = `id, name, subject, body, target_city, target_state, target_category,
    COALESCE(target_group_id::text, ''), follow_ups, status, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts the campaign or replaces the content of an
// existing one with the same id. Status is left untouched on conflict.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	followUps, err := encodeFollowUps(c.FollowUps)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `
        INSERT INTO campaigns
            (id, name, subject, body, target_city, target_state, target_category, target_group_id, follow_ups, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9, $10)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            subject = EXCLUDED.subject,
            body = EXCLUDED.body,
            target_city = EXCLUDED.target_city,
            target_state = EXCLUDED.target_state,
            target_category = EXCLUDED.target_category,
            target_group_id = EXCLUDED.target_group_id,
            follow_ups = EXCLUDED.follow_ups,
            updated_at = now()
        RETURNING status, created_at, updated_at`,
		c.ID, c.Name, c.Subject, c.Body,
		c.Targeting.City, c.Targeting.State, c.Targeting.Category, c.Targeting.GroupID,
		followUps, string(c.Status),
	).Scan(&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign %s: %w", c.ID, err)
	}
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) GetCampaignStatus(ctx context.Context, id string) (domain.CampaignStatus, error) {
	var status domain.CampaignStatus
	err := r.pool.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", port.ErrCampaignNotFound
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *CampaignRepository) ListCampaignsByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE status = $1
        ORDER BY created_at, id`, string(status))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// TransitionStatus is a compare-and-set on the status column.
func (r *CampaignRepository) TransitionStatus(ctx context.Context, id string, from []domain.CampaignStatus, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = $2, updated_at = now()
        WHERE id = $1 AND status = ANY($3)`,
		id, string(to), statusStrings(from))
	if err != nil {
		return false, fmt.Errorf("transition campaign %s to %s: %w", id, to, err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		followUps []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Subject,
		&c.Body,
		&c.Targeting.City,
		&c.Targeting.State,
		&c.Targeting.Category,
		&c.Targeting.GroupID,
		&followUps,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.FollowUps, err = decodeFollowUps(followUps)
	if err != nil {
		return c, fmt.Errorf("campaign %s: %w", c.ID, err)
	}
	return c, nil
}

func encodeFollowUps(fu map[domain.FollowUpType]domain.FollowUpTemplate) ([]byte, error) {
	if fu == nil {
		fu = map[domain.FollowUpType]domain.FollowUpTemplate{}
	}
	b, err := json.Marshal(fu)
	if err != nil {
		return nil, fmt.Errorf("encode follow-ups: %w", err)
	}
	return b, nil
}

// decodeFollowUps drops unknown slot names.
func decodeFollowUps(raw []byte) (map[domain.FollowUpType]domain.FollowUpTemplate, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fu map[domain.FollowUpType]domain.FollowUpTemplate
	if err := json.Unmarshal(raw, &fu); err != nil {
		return nil, fmt.Errorf("decode follow-ups: %w", err)
	}
	for t := range fu {
		if !t.Valid() {
			delete(fu, t)
		}
	}
	if len(fu) == 0 {
		return nil, nil
	}
	return fu, nil
}

func statusStrings[S ~string](in []S) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
