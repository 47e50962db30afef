// Package memory is a process-local implementation of the repository
// ports. It backs STORE_DRIVER=memory and the usecase tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

// Store keeps every entity in maps guarded by a single mutex. Ordered
// slices of ids preserve insertion order for deterministic listings.
type Store struct {
	mu sync.Mutex

	now func() time.Time

	campaigns     map[string]domain.Campaign
	campaignOrder []string

	leads     map[string]domain.Lead
	leadOrder []string
	byEmail   map[string]string
	groups    map[string]domain.Group
	members   map[string]map[string]struct{} // group id -> lead ids

	records     map[string]domain.SendRecord
	recordOrder []string
	jobs        map[string]domain.FollowUpJob
	jobOrder    []string
}

var (
	_ port.CampaignRepository = (*Store)(nil)
	_ port.LeadRepository     = (*Store)(nil)
	_ port.SendLogRepository  = (*Store)(nil)
	_ port.FollowUpRepository = (*Store)(nil)
)

// NewStore returns an empty store stamping rows with time.Now.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock returns an empty store stamping rows with now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		now:       now,
		campaigns: make(map[string]domain.Campaign),
		leads:     make(map[string]domain.Lead),
		byEmail:   make(map[string]string),
		groups:    make(map[string]domain.Group),
		members:   make(map[string]map[string]struct{}),
		records:   make(map[string]domain.SendRecord),
		jobs:      make(map[string]domain.FollowUpJob),
	}
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	if _, ok := s.campaigns[c.ID]; !ok {
		s.campaignOrder = append(s.campaignOrder, c.ID)
	}
	s.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	c = cloneCampaign(c)
	return &c, nil
}

func (s *Store) GetCampaignStatus(_ context.Context, id string) (domain.CampaignStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return "", port.ErrCampaignNotFound
	}
	return c.Status, nil
}

func (s *Store) ListCampaignsByStatus(_ context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Campaign
	for _, id := range s.campaignOrder {
		if c := s.campaigns[id]; c.Status == status {
			out = append(out, cloneCampaign(c))
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Campaign) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (s *Store) TransitionStatus(_ context.Context, id string, from []domain.CampaignStatus, to domain.CampaignStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok || !slices.Contains(from, c.Status) {
		return false, nil
	}
	c.Status = to
	c.UpdatedAt = s.now()
	s.campaigns[id] = c
	return true, nil
}

func (s *Store) FindBySegment(_ context.Context, t domain.Targeting) ([]domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members map[string]struct{}
	if t.GroupID != "" {
		members = s.members[t.GroupID]
	}
	out := make([]domain.Lead, 0)
	for _, id := range s.leadOrder {
		l := s.leads[id]
		if t.City != "" && !strings.EqualFold(l.City, t.City) {
			continue
		}
		if t.State != "" && !strings.EqualFold(l.State, t.State) {
			continue
		}
		if t.Category != "" && !strings.EqualFold(l.Category, t.Category) {
			continue
		}
		if t.GroupID != "" {
			if _, ok := members[id]; !ok {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *Store) GetLead(_ context.Context, id string) (*domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *Store) UpsertLead(_ context.Context, l *domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.NormalizeEmail(l.Email)
	l.Email = key
	now := s.now()
	if id, ok := s.byEmail[key]; ok {
		existing := s.leads[id]
		l.ID, l.CreatedAt, l.UpdatedAt = existing.ID, existing.CreatedAt, now
		s.leads[id] = *l
		return nil
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt, l.UpdatedAt = now, now
	s.leads[l.ID] = *l
	s.byEmail[key] = l.ID
	s.leadOrder = append(s.leadOrder, l.ID)
	return nil
}

func (s *Store) CreateGroup(_ context.Context, g *domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.CreatedAt = s.now()
	s.groups[g.ID] = *g
	return nil
}

func (s *Store) AddToGroup(_ context.Context, leadID, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[groupID]; !ok {
		s.members[groupID] = make(map[string]struct{})
	}
	s.members[groupID][leadID] = struct{}{}
	return nil
}

func (s *Store) CreateRecord(_ context.Context, rec *domain.SendRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := s.now()
	rec.CreatedAt, rec.UpdatedAt = now, now
	s.records[rec.ID] = *rec
	s.recordOrder = append(s.recordOrder, rec.ID)
	return nil
}

func (s *Store) MarkSent(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || !rec.Status.CanTransitionTo(domain.SendSent) {
		return port.ErrRecordNotPending
	}
	rec.Status = domain.SendSent
	rec.SentAt = &at
	rec.ErrorMessage = ""
	rec.UpdatedAt = s.now()
	s.records[id] = rec
	return nil
}

func (s *Store) MarkFailed(_ context.Context, id string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || !rec.Status.CanTransitionTo(domain.SendFailed) {
		return port.ErrRecordNotPending
	}
	rec.Status = domain.SendFailed
	rec.ErrorMessage = reason
	rec.UpdatedAt = s.now()
	s.records[id] = rec
	return nil
}

func (s *Store) DeliveredLeadIDs(_ context.Context, campaignID string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]struct{})
	for _, rec := range s.records {
		if rec.CampaignID == campaignID && rec.Status.Delivered() {
			out[rec.LeadID] = struct{}{}
		}
	}
	return out, nil
}

func (s *Store) CountPrimaryDelivered(_ context.Context, from, to time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, rec := range s.records {
		if rec.Kind != domain.SendPrimary || !rec.Status.Delivered() || rec.SentAt == nil {
			continue
		}
		if !rec.SentAt.Before(from) && rec.SentAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (s *Store) MarkLatestOpened(_ context.Context, leadID string, at time.Time) (*domain.SendRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.latestLocked(leadID, func(r domain.SendRecord) bool {
		return r.Status == domain.SendSent && r.OpenedAt == nil
	})
	if rec == nil {
		return nil, nil
	}
	rec.Status = domain.SendOpened
	rec.OpenedAt = &at
	rec.UpdatedAt = s.now()
	s.records[rec.ID] = *rec
	return rec, nil
}

func (s *Store) MarkLatestClicked(_ context.Context, leadID string, at time.Time) (*domain.SendRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.latestLocked(leadID, func(r domain.SendRecord) bool {
		return r.Status.CanTransitionTo(domain.SendClicked)
	})
	if rec == nil {
		return nil, nil
	}
	rec.Status = domain.SendClicked
	rec.ClickedAt = &at
	rec.UpdatedAt = s.now()
	s.records[rec.ID] = *rec
	return rec, nil
}

// latestLocked returns the most recently sent record of the lead that
// satisfies match. Later insertion wins ties.
func (s *Store) latestLocked(leadID string, match func(domain.SendRecord) bool) *domain.SendRecord {
	var best *domain.SendRecord
	for _, id := range s.recordOrder {
		r := s.records[id]
		if r.LeadID != leadID || !match(r) {
			continue
		}
		if best == nil || r.SentAt == nil || best.SentAt == nil || !r.SentAt.Before(*best.SentAt) {
			rr := r
			best = &rr
		}
	}
	return best
}

func (s *Store) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := &port.StatsResp{}
	for _, rec := range s.records {
		if rec.CreatedAt.Before(req.From) || !rec.CreatedAt.Before(req.To) {
			continue
		}
		if req.CampaignID != nil && rec.CampaignID != *req.CampaignID {
			continue
		}
		switch rec.Status {
		case domain.SendPending:
			resp.Pending++
		case domain.SendSent:
			resp.Sent++
		case domain.SendFailed:
			resp.Failed++
		case domain.SendOpened:
			resp.Opened++
		case domain.SendClicked:
			resp.Clicked++
		}
	}
	return resp, nil
}

func (s *Store) CreateJob(_ context.Context, job *domain.FollowUpJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = domain.FollowUpPending
	}
	now := s.now()
	job.CreatedAt, job.UpdatedAt = now, now
	s.jobs[job.ID] = *job
	s.jobOrder = append(s.jobOrder, job.ID)
	return nil
}

func (s *Store) DueJobs(_ context.Context, now time.Time) ([]domain.FollowUpJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.FollowUpJob, 0)
	for _, id := range s.jobOrder {
		job := s.jobs[id]
		if job.Status == domain.FollowUpPending && !job.ScheduledFor.After(now) {
			out = append(out, job)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.FollowUpJob) int {
		return a.ScheduledFor.Compare(b.ScheduledFor)
	})
	return out, nil
}

func (s *Store) MarkJobSent(_ context.Context, id string, at time.Time) error {
	return s.finishJob(id, domain.FollowUpSent, &at, "")
}

func (s *Store) MarkJobFailed(_ context.Context, id string, reason string) error {
	return s.finishJob(id, domain.FollowUpFailed, nil, reason)
}

func (s *Store) finishJob(id string, status domain.FollowUpStatus, sentAt *time.Time, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status != domain.FollowUpPending {
		return port.ErrJobNotPending
	}
	job.Status = status
	job.SentAt = sentAt
	job.ErrorMessage = reason
	job.UpdatedAt = s.now()
	s.jobs[id] = job
	return nil
}

// Records returns a snapshot of the send log in insertion order.
func (s *Store) Records() []domain.SendRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SendRecord, 0, len(s.recordOrder))
	for _, id := range s.recordOrder {
		out = append(out, s.records[id])
	}
	return out
}

// Jobs returns a snapshot of the follow-up jobs in insertion order.
func (s *Store) Jobs() []domain.FollowUpJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.FollowUpJob, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		out = append(out, s.jobs[id])
	}
	return out
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	if c.FollowUps != nil {
		fu := make(map[domain.FollowUpType]domain.FollowUpTemplate, len(c.FollowUps))
		for k, v := range c.FollowUps {
			fu[k] = v
		}
		c.FollowUps = fu
	}
	return c
}
