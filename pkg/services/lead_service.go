package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/pkg/models"
)

// LeadService manages lead import and per-lead status updates.
type LeadService struct {
	client *ent.Client
}

// NewLeadService creates a new LeadService
func NewLeadService(client *ent.Client) *LeadService {
	return &LeadService{client: client}
}

// ImportLeads inserts leads into a campaign. A row whose profile URL already
// exists in the campaign is counted as skipped, so re-uploading the same list
// is harmless.
func (s *LeadService) ImportLeads(httpCtx context.Context, campaignID string, rows []models.LeadImport) (*models.ImportLeadsResult, error) {
	if campaignID == "" {
		return nil, NewValidationError("campaign_id", "required")
	}
	if len(rows) == 0 {
		return nil, NewValidationError("leads", "at least one lead required")
	}
	for i, row := range rows {
		if row.FirstName == "" {
			return nil, NewValidationError("first_name", fmt.Sprintf("required (row %d)", i))
		}
		if row.ProfileURL == "" {
			return nil, NewValidationError("profile_url", fmt.Sprintf("required (row %d)", i))
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := &models.ImportLeadsResult{}
	for _, row := range rows {
		err := s.client.Lead.Create().
			SetID(uuid.New().String()).
			SetCampaignID(campaignID).
			SetFirstName(row.FirstName).
			SetLastName(row.LastName).
			SetCompany(row.Company).
			SetProfileURL(row.ProfileURL).
			SetStatus(lead.StatusPending).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to import lead %q: %w", row.ProfileURL, err)
		}
		result.Imported++
	}
	return result, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, leadID string) (*ent.Lead, error) {
	l, err := s.client.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

// ListPending returns a campaign's pending leads in import order.
func (s *LeadService) ListPending(ctx context.Context, campaignID string) ([]*ent.Lead, error) {
	leads, err := s.client.Lead.Query().
		Where(
			lead.CampaignIDEQ(campaignID),
			lead.StatusEQ(lead.StatusPending),
		).
		Order(ent.Asc(lead.FieldCreatedAt), ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leads: %w", err)
	}
	return leads, nil
}

// ListByCampaign returns all leads of a campaign in import order.
func (s *LeadService) ListByCampaign(ctx context.Context, campaignID string) ([]*ent.Lead, error) {
	leads, err := s.client.Lead.Query().
		Where(lead.CampaignIDEQ(campaignID)).
		Order(ent.Asc(lead.FieldCreatedAt), ent.Asc(lead.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// MarkProcessing claims a pending lead for its workflow. Safe to call again
// after a replay: a lead already processing is left untouched.
func (s *LeadService) MarkProcessing(_ context.Context, leadID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Lead.Update().
		Where(
			lead.IDEQ(leadID),
			lead.StatusEQ(lead.StatusPending),
		).
		SetStatus(lead.StatusProcessing).
		SetStartedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark lead processing: %w", err)
	}
	if n == 0 {
		// Already claimed or terminal; not an error for a replayed workflow.
		exists, err := s.client.Lead.Query().Where(lead.IDEQ(leadID)).Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check lead: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// MarkCompleted records a lead's walk finishing cleanly.
func (s *LeadService) MarkCompleted(_ context.Context, leadID string) error {
	return s.finish(leadID, lead.StatusCompleted, "")
}

// MarkFailed records a lead's walk ending on a permanent error.
func (s *LeadService) MarkFailed(_ context.Context, leadID, errMsg string) error {
	return s.finish(leadID, lead.StatusFailed, errMsg)
}

func (s *LeadService) finish(leadID string, status lead.Status, errMsg string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Lead.UpdateOneID(leadID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish lead: %w", err)
	}
	return nil
}

// SetProviderID stores the provider URN resolved by the first profile visit.
func (s *LeadService) SetProviderID(_ context.Context, leadID, providerID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Lead.UpdateOneID(leadID).
		SetProviderID(providerID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set lead provider id: %w", err)
	}
	return nil
}
