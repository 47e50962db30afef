package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

const leadColumns = `l.id, l.email, l.name, l.business_name, l.telephone, l.website_url, l.address,
    l.city, l.state, l.category, l.created_at, l.updated_at`

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

var _ port.LeadRepository = (*LeadRepository)(nil)

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// FindBySegment matches every non-empty targeting field case-insensitively.
func (r *LeadRepository) FindBySegment(ctx context.Context, t domain.Targeting) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+leadColumns+`
        FROM leads l
        WHERE ($1::text = '' OR lower(l.city) = lower($1))
          AND ($2::text = '' OR lower(l.state) = lower($2))
          AND ($3::text = '' OR lower(l.category) = lower($3))
          AND ($4::text = '' OR EXISTS (
                SELECT 1 FROM lead_groups lg
                WHERE lg.lead_id = l.id AND lg.group_id::text = $4))
        ORDER BY l.created_at, l.id`,
		t.City, t.State, t.Category, t.GroupID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lead, error) {
		return scanLead(row)
	})
}

// GetLead returns a lead by id.
func (r *LeadRepository) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := scanLead(r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads l WHERE l.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpsertLead stores the normalized address. A lead that already exists
// keeps its id and creation time.
func (r *LeadRepository) UpsertLead(ctx context.Context, l *domain.Lead) error {
	l.Email = domain.NormalizeEmail(l.Email)
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO leads
            (id, email, name, business_name, telephone, website_url, address, city, state, category)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT ((lower(email))) DO UPDATE SET
            name = EXCLUDED.name,
            business_name = EXCLUDED.business_name,
            telephone = EXCLUDED.telephone,
            website_url = EXCLUDED.website_url,
            address = EXCLUDED.address,
            city = EXCLUDED.city,
            state = EXCLUDED.state,
            category = EXCLUDED.category,
            updated_at = now()
        RETURNING id, created_at, updated_at`,
		l.ID, l.Email, l.Name, l.BusinessName, l.Telephone, l.WebsiteURL, l.Address,
		l.City, l.State, l.Category,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) CreateGroup(ctx context.Context, g *domain.Group) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO groups (id, name) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
        RETURNING created_at`, g.ID, g.Name).
		Scan(&g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert group %q: %w", g.Name, err)
	}
	return nil
}

func (r *LeadRepository) AddToGroup(ctx context.Context, leadID, groupID string) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO lead_groups (lead_id, group_id) VALUES ($1, $2)
        ON CONFLICT DO NOTHING`, leadID, groupID)
	if err != nil {
		return fmt.Errorf("add lead %s to group %s: %w", leadID, groupID, err)
	}
	return nil
}

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.ID,
		&l.Email,
		&l.Name,
		&l.BusinessName,
		&l.Telephone,
		&l.WebsiteURL,
		&l.Address,
		&l.City,
		&l.State,
		&l.Category,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}
