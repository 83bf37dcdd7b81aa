package services

import (
	"context"
	"testing"

	"github.com/reachforge/reachforge/ent/leadstep"
	"github.com/reachforge/reachforge/pkg/models"
	testdb "github.com/reachforge/reachforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepService_RecordStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStepService(client.Client)
	ctx := context.Background()

	c := createTestCampaign(t, client.Client)
	leads := importTestLeads(t, client.Client, c.ID, 2)

	t.Run("records a step", func(t *testing.T) {
		step, err := service.RecordStep(ctx, models.RecordStepRequest{
			CampaignID: c.ID,
			LeadID:     leads[0].ID,
			StepIndex:  0,
			NodeID:     "visit",
			NodeKind:   "profileVisit",
			Success:    true,
			Result:     map[string]interface{}{"provider_id": "urn:li:fsd_profile:123"},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, step.StepIndex)
		assert.Equal(t, leadstep.NodeKindProfileVisit, step.NodeKind)
		assert.True(t, step.Success)
		assert.Equal(t, "urn:li:fsd_profile:123", step.Result["provider_id"])
	})

	t.Run("replay returns the original row", func(t *testing.T) {
		first, err := service.RecordStep(ctx, models.RecordStepRequest{
			CampaignID: c.ID,
			LeadID:     leads[0].ID,
			StepIndex:  1,
			NodeID:     "invite",
			NodeKind:   "sendConnectionRequest",
			Success:    true,
		})
		require.NoError(t, err)

		// Same key, contradictory payload. The ledger keeps the first write.
		replay, err := service.RecordStep(ctx, models.RecordStepRequest{
			CampaignID: c.ID,
			LeadID:     leads[0].ID,
			StepIndex:  1,
			NodeID:     "invite",
			NodeKind:   "sendConnectionRequest",
			Success:    false,
			Result:     map[string]interface{}{"error_code": "cannot_resend_yet"},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, replay.ID)
		assert.True(t, replay.Success)
		assert.Nil(t, replay.Result)

		steps, err := service.ListForLead(ctx, leads[0].ID)
		require.NoError(t, err)
		assert.Len(t, steps, 2)
	})

	t.Run("same index on different leads is distinct", func(t *testing.T) {
		step, err := service.RecordStep(ctx, models.RecordStepRequest{
			CampaignID: c.ID,
			LeadID:     leads[1].ID,
			StepIndex:  0,
			NodeID:     "visit",
			NodeKind:   "profileVisit",
			Success:    false,
			Result:     map[string]interface{}{"error_code": "provider_unreachable"},
		})
		require.NoError(t, err)
		assert.False(t, step.Success)
	})

	t.Run("validates the key", func(t *testing.T) {
		_, err := service.RecordStep(ctx, models.RecordStepRequest{LeadID: "l", StepIndex: 0, NodeID: "n"})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordStep(ctx, models.RecordStepRequest{CampaignID: "c", StepIndex: 0, NodeID: "n"})
		assert.True(t, IsValidationError(err))

		_, err = service.RecordStep(ctx, models.RecordStepRequest{CampaignID: "c", LeadID: "l", StepIndex: -1, NodeID: "n"})
		assert.True(t, IsValidationError(err))
	})
}

func TestStepService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStepService(client.Client)
	ctx := context.Background()

	c := createTestCampaign(t, client.Client)
	leads := importTestLeads(t, client.Client, c.ID, 1)

	for i, nodeID := range []string{"visit", "invite", "followup"} {
		_, err := service.RecordStep(ctx, models.RecordStepRequest{
			CampaignID: c.ID,
			LeadID:     leads[0].ID,
			StepIndex:  i,
			NodeID:     nodeID,
			NodeKind:   "profileVisit",
			Success:    true,
		})
		require.NoError(t, err)
	}

	t.Run("get step by key", func(t *testing.T) {
		step, err := service.GetStep(ctx, c.ID, leads[0].ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "invite", step.NodeID)

		_, err = service.GetStep(ctx, c.ID, leads[0].ID, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lead ledger in walk order", func(t *testing.T) {
		steps, err := service.ListForLead(ctx, leads[0].ID)
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.Equal(t, "visit", steps[0].NodeID)
		assert.Equal(t, "followup", steps[2].NodeID)
	})

	t.Run("campaign ledger paginates", func(t *testing.T) {
		steps, err := service.ListForCampaign(ctx, c.ID, 2, 0)
		require.NoError(t, err)
		assert.Len(t, steps, 2)

		steps, err = service.ListForCampaign(ctx, c.ID, 2, 2)
		require.NoError(t, err)
		assert.Len(t, steps, 1)
	})
}
