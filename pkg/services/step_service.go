package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent"
	"github.com/reachforge/reachforge/ent/leadstep"
	"github.com/reachforge/reachforge/pkg/models"
)

// StepService owns the step ledger: one immutable row per
// (campaign, lead, step_index). Recording the same key twice is a no-op and
// the first row wins, which is what makes node executions idempotent across
// workflow replays.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// RecordStep writes a ledger row and returns the row that ended up in the
// ledger — the freshly written one, or the pre-existing one if this key was
// already recorded.
func (s *StepService) RecordStep(httpCtx context.Context, req models.RecordStepRequest) (*ent.LeadStep, error) {
	if req.CampaignID == "" {
		return nil, NewValidationError("campaign_id", "required")
	}
	if req.LeadID == "" {
		return nil, NewValidationError("lead_id", "required")
	}
	if req.StepIndex < 0 {
		return nil, NewValidationError("step_index", "must be >= 0")
	}
	if req.NodeID == "" {
		return nil, NewValidationError("node_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.LeadStep.Create().
		SetID(uuid.New().String()).
		SetCampaignID(req.CampaignID).
		SetLeadID(req.LeadID).
		SetStepIndex(req.StepIndex).
		SetNodeID(req.NodeID).
		SetNodeKind(leadstep.NodeKind(req.NodeKind)).
		SetSuccess(req.Success)
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}
	if req.Result != nil {
		builder.SetResult(req.Result)
	}

	// ON CONFLICT DO NOTHING on the idempotency key.
	err := builder.
		OnConflictColumns(leadstep.FieldCampaignID, leadstep.FieldLeadID, leadstep.FieldStepIndex).
		Ignore().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record step: %w", err)
	}

	// Read back whichever row holds the key now.
	step, err := s.getByKey(ctx, req.CampaignID, req.LeadID, req.StepIndex)
	if err != nil {
		return nil, err
	}
	return step, nil
}

// GetStep returns the ledger row for a (campaign, lead, step_index) key, or
// ErrNotFound if that step has not run yet.
func (s *StepService) GetStep(ctx context.Context, campaignID, leadID string, stepIndex int) (*ent.LeadStep, error) {
	return s.getByKey(ctx, campaignID, leadID, stepIndex)
}

func (s *StepService) getByKey(ctx context.Context, campaignID, leadID string, stepIndex int) (*ent.LeadStep, error) {
	step, err := s.client.LeadStep.Query().
		Where(
			leadstep.CampaignIDEQ(campaignID),
			leadstep.LeadIDEQ(leadID),
			leadstep.StepIndexEQ(stepIndex),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return step, nil
}

// ListForLead returns a lead's ledger in walk order.
func (s *StepService) ListForLead(ctx context.Context, leadID string) ([]*ent.LeadStep, error) {
	steps, err := s.client.LeadStep.Query().
		Where(leadstep.LeadIDEQ(leadID)).
		Order(ent.Asc(leadstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead steps: %w", err)
	}
	return steps, nil
}

// ListForCampaign returns a campaign's ledger, newest first, paginated.
func (s *StepService) ListForCampaign(ctx context.Context, campaignID string, limit, offset int) ([]*ent.LeadStep, error) {
	if limit <= 0 {
		limit = 50 // Default
	}
	if offset < 0 {
		offset = 0
	}
	steps, err := s.client.LeadStep.Query().
		Where(leadstep.CampaignIDEQ(campaignID)).
		Order(ent.Desc(leadstep.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign steps: %w", err)
	}
	return steps, nil
}
