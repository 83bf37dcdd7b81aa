// Package services implements the business logic layer between the HTTP API,
// the workflow engine, and the database.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent"
	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/pkg/gates"
	"github.com/reachforge/reachforge/pkg/graph"
	"github.com/reachforge/reachforge/pkg/models"
)

// CampaignService manages campaign lifecycle and the per-campaign
// connection-request quota counters.
type CampaignService struct {
	client *ent.Client
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(client *ent.Client) *CampaignService {
	return &CampaignService{client: client}
}

// CreateCampaign validates the workflow graph and schedule window, strips
// editor placeholders from the graph, and persists the campaign in draft.
func (s *CampaignService) CreateCampaign(httpCtx context.Context, req models.CreateCampaignRequest) (*ent.Campaign, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ConnectedAccountID == "" {
		return nil, NewValidationError("connected_account_id", "required")
	}
	if len(req.Graph) == 0 {
		return nil, NewValidationError("graph", "required")
	}

	g, err := graph.Parse(req.Graph)
	if err != nil {
		return nil, NewValidationError("graph", err.Error())
	}

	// The schedule window must parse now, not at send time.
	win := gates.Window{Start: req.ScheduleStart, End: req.ScheduleEnd, Timezone: req.Timezone}
	if _, _, err := win.Check(time.Now()); err != nil {
		return nil, NewValidationError("schedule", err.Error())
	}

	// Re-marshal the stripped graph so the stored snapshot is exactly what
	// the engine will interpret.
	snapshot, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph snapshot: %w", err)
	}

	campaignID := req.CampaignID
	if campaignID == "" {
		campaignID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Campaign.Create().
		SetID(campaignID).
		SetOrganizationID(req.OrganizationID).
		SetName(req.Name).
		SetConnectedAccountID(req.ConnectedAccountID).
		SetStatus(campaign.StatusDraft).
		SetGraph(string(snapshot))

	if req.ScheduleStart != "" {
		builder.SetScheduleStart(req.ScheduleStart)
	}
	if req.ScheduleEnd != "" {
		builder.SetScheduleEnd(req.ScheduleEnd)
	}
	if req.Timezone != "" {
		builder.SetTimezone(req.Timezone)
	}
	if req.DailyLimit != nil {
		builder.SetDailyLimit(*req.DailyLimit)
	}
	if req.WeeklyLimit != nil {
		builder.SetWeeklyLimit(*req.WeeklyLimit)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return c, nil
}

// GetCampaign retrieves a campaign by ID
func (s *CampaignService) GetCampaign(ctx context.Context, campaignID string) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns lists campaigns with filtering and pagination
func (s *CampaignService) ListCampaigns(ctx context.Context, filters models.CampaignFilters) (*models.CampaignListResponse, error) {
	query := s.client.Campaign.Query()

	if filters.OrganizationID != "" {
		query = query.Where(campaign.OrganizationIDEQ(filters.OrganizationID))
	}
	if filters.Status != "" {
		query = query.Where(campaign.StatusEQ(campaign.Status(filters.Status)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(campaign.CreatedAtGTE(*filters.CreatedAfter))
	}
	if !filters.IncludeDeleted {
		query = query.Where(campaign.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	campaigns, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(campaign.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return &models.CampaignListResponse{
		Campaigns:  campaigns,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// StatusSummary returns the campaign plus lead counts grouped by status.
func (s *CampaignService) StatusSummary(ctx context.Context, campaignID string) (*models.CampaignStatusResponse, error) {
	c, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.client.Lead.Query().
		Where(lead.CampaignIDEQ(campaignID)).
		GroupBy(lead.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	resp := &models.CampaignStatusResponse{Campaign: c}
	for _, row := range rows {
		resp.LeadsTotal += row.Count
		switch lead.Status(row.Status) {
		case lead.StatusPending:
			resp.LeadsPending = row.Count
		case lead.StatusProcessing:
			resp.LeadsActive = row.Count
		case lead.StatusCompleted:
			resp.LeadsCompleted = row.Count
		case lead.StatusFailed:
			resp.LeadsFailed = row.Count
		}
	}
	return resp, nil
}

// Start moves a draft campaign to active. The graph snapshot is frozen from
// this point on.
func (s *CampaignService) Start(ctx context.Context, campaignID string) error {
	return s.transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusDraft},
		func(u *ent.CampaignUpdate) {
			u.SetStatus(campaign.StatusActive).
				SetStartedAt(time.Now()).
				ClearPauseReason().
				ClearErrorMessage()
		})
}

// Pause moves an active campaign to paused and records why.
func (s *CampaignService) Pause(ctx context.Context, campaignID, reason string) error {
	return s.transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusActive},
		func(u *ent.CampaignUpdate) {
			u.SetStatus(campaign.StatusPaused).
				SetPauseReason(reason)
		})
}

// Resume moves a paused campaign back to active.
func (s *CampaignService) Resume(ctx context.Context, campaignID string) error {
	return s.transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusPaused},
		func(u *ent.CampaignUpdate) {
			u.SetStatus(campaign.StatusActive).
				ClearPauseReason()
		})
}

// Complete marks a campaign as finished. Valid from active or paused (a
// stopped campaign completes regardless of a concurrent pause).
func (s *CampaignService) Complete(ctx context.Context, campaignID string) error {
	return s.transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusActive, campaign.StatusPaused},
		func(u *ent.CampaignUpdate) {
			u.SetStatus(campaign.StatusCompleted).
				SetCompletedAt(time.Now())
		})
}

// Fail marks a campaign as failed with an error message.
func (s *CampaignService) Fail(ctx context.Context, campaignID, errMsg string) error {
	return s.transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusActive, campaign.StatusPaused},
		func(u *ent.CampaignUpdate) {
			u.SetStatus(campaign.StatusFailed).
				SetCompletedAt(time.Now()).
				SetErrorMessage(errMsg)
		})
}

// SoftDelete marks a campaign for retention cleanup. The row (and its leads
// and steps, via cascade) is purged later by the cleanup service.
func (s *CampaignService) SoftDelete(ctx context.Context, campaignID string) error {
	n, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID), campaign.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft-delete campaign: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeDeleted hard-deletes campaigns soft-deleted more than maxAge ago.
// Leads and ledger rows go with them via cascade. Returns the number of
// campaigns removed.
func (s *CampaignService) PurgeDeleted(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := s.client.Campaign.Delete().
		Where(
			campaign.DeletedAtNotNil(),
			campaign.DeletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted campaigns: %w", err)
	}
	return n, nil
}

// transition performs a conditional status update. The row only changes if
// its current status is one of from; otherwise ErrInvalidTransition (or
// ErrNotFound if the campaign does not exist).
func (s *CampaignService) transition(_ context.Context, campaignID string, from []campaign.Status, apply func(*ent.CampaignUpdate)) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Campaign.Update().
		Where(
			campaign.IDEQ(campaignID),
			campaign.StatusIn(from...),
			campaign.DeletedAtIsNil(),
		)
	apply(update)

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Campaign.Query().
			Where(campaign.IDEQ(campaignID), campaign.DeletedAtIsNil()).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check campaign: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

// QuotaCheck applies calendar rollovers to the campaign's counters and
// decides whether another connection request may be sent right now. The row
// is locked for the duration so concurrent lead workflows serialize here.
func (s *CampaignService) QuotaCheck(_ context.Context, campaignID string, now time.Time) (gates.Decision, error) {
	checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(checkCtx)
	if err != nil {
		return gates.Decision{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(campaignID)).
		ForUpdate().
		Only(checkCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return gates.Decision{}, ErrNotFound
		}
		return gates.Decision{}, fmt.Errorf("failed to load campaign for quota check: %w", err)
	}

	// Quota is evaluated in the campaign's local time: rollovers happen at
	// the campaign's midnight, not the server's.
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return gates.Decision{}, NewValidationError("timezone", err.Error())
	}
	localNow := now.In(loc)

	decision := gates.EvaluateQuota(gates.Counters{
		SentDay:       c.SentDay,
		SentWeek:      c.SentWeek,
		LastDayReset:  c.LastDayResetAt,
		LastWeekReset: c.LastWeekResetAt,
		DailyLimit:    c.DailyLimit,
		WeeklyLimit:   c.WeeklyLimit,
	}, localNow)

	if decision.ResetDay || decision.ResetWeek {
		update := tx.Campaign.UpdateOneID(campaignID)
		if decision.ResetDay {
			update.SetSentDay(0).SetLastDayResetAt(now)
		}
		if decision.ResetWeek {
			update.SetSentWeek(0).SetLastWeekResetAt(now)
		}
		if err := update.Exec(checkCtx); err != nil {
			return gates.Decision{}, fmt.Errorf("failed to persist quota reset: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return gates.Decision{}, fmt.Errorf("failed to commit quota check: %w", err)
	}
	return decision, nil
}

// QuotaIncrement bumps both counters after a connection request was actually
// sent. Atomic at the database, safe under concurrent lead workflows.
func (s *CampaignService) QuotaIncrement(_ context.Context, campaignID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Campaign.Update().
		Where(campaign.IDEQ(campaignID)).
		AddSentDay(1).
		AddSentWeek(1).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to increment quota counters: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ParseGraph returns the campaign's stored graph snapshot.
func (s *CampaignService) ParseGraph(ctx context.Context, campaignID string) (*graph.Graph, error) {
	c, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	g, err := graph.Parse([]byte(c.Graph))
	if err != nil {
		return nil, fmt.Errorf("stored graph snapshot is invalid: %w", err)
	}
	return g, nil
}
