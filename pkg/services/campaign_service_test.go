package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/pkg/graph"
	"github.com/reachforge/reachforge/pkg/models"
	testdb "github.com/reachforge/reachforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignService_CreateCampaign(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	t.Run("creates campaign with stripped graph snapshot", func(t *testing.T) {
		req := models.CreateCampaignRequest{
			CampaignID:         uuid.New().String(),
			OrganizationID:     "org-1",
			Name:               "Q3 founders",
			ConnectedAccountID: "acct-1",
			Graph:              json.RawMessage(testGraphJSON),
			ScheduleStart:      "09:00",
			ScheduleEnd:        "17:30",
			Timezone:           "Europe/Berlin",
		}

		c, err := service.CreateCampaign(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.CampaignID, c.ID)
		assert.Equal(t, campaign.StatusDraft, c.Status)
		assert.Equal(t, 20, c.DailyLimit)
		assert.Equal(t, 100, c.WeeklyLimit)
		assert.Equal(t, "Europe/Berlin", c.Timezone)

		// The stored snapshot has the placeholder (and its edges) removed.
		g, err := graph.Parse([]byte(c.Graph))
		require.NoError(t, err)
		assert.Len(t, g.Nodes, 3)
		assert.Len(t, g.Edges, 2)
		_, ok := g.Node("placeholder")
		assert.False(t, ok)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     models.CreateCampaignRequest
			wantErr string
		}{
			{
				name:    "missing organization_id",
				req:     models.CreateCampaignRequest{Name: "n", ConnectedAccountID: "a", Graph: json.RawMessage(testGraphJSON)},
				wantErr: "organization_id",
			},
			{
				name:    "missing name",
				req:     models.CreateCampaignRequest{OrganizationID: "o", ConnectedAccountID: "a", Graph: json.RawMessage(testGraphJSON)},
				wantErr: "name",
			},
			{
				name:    "missing connected_account_id",
				req:     models.CreateCampaignRequest{OrganizationID: "o", Name: "n", Graph: json.RawMessage(testGraphJSON)},
				wantErr: "connected_account_id",
			},
			{
				name:    "missing graph",
				req:     models.CreateCampaignRequest{OrganizationID: "o", Name: "n", ConnectedAccountID: "a"},
				wantErr: "graph",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateCampaign(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("rejects cyclic graph", func(t *testing.T) {
		cyclic := `{
			"nodes": [
				{"id": "a", "kind": "profileVisit"},
				{"id": "b", "kind": "likePost"}
			],
			"edges": [
				{"source": "a", "target": "b"},
				{"source": "b", "target": "a"}
			]
		}`
		_, err := service.CreateCampaign(ctx, models.CreateCampaignRequest{
			OrganizationID:     "org-1",
			Name:               "bad",
			ConnectedAccountID: "acct-1",
			Graph:              json.RawMessage(cyclic),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed schedule window", func(t *testing.T) {
		_, err := service.CreateCampaign(ctx, models.CreateCampaignRequest{
			OrganizationID:     "org-1",
			Name:               "bad window",
			ConnectedAccountID: "acct-1",
			Graph:              json.RawMessage(testGraphJSON),
			ScheduleStart:      "25:99",
			ScheduleEnd:        "17:00",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate campaign id", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)
		_, err := service.CreateCampaign(ctx, models.CreateCampaignRequest{
			CampaignID:         c.ID,
			OrganizationID:     "org-1",
			Name:               "dup",
			ConnectedAccountID: "acct-1",
			Graph:              json.RawMessage(testGraphJSON),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestCampaignService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	t.Run("start pause resume complete", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)

		require.NoError(t, service.Start(ctx, c.ID))
		got, err := service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusActive, got.Status)
		assert.NotNil(t, got.StartedAt)

		require.NoError(t, service.Pause(ctx, c.ID, "manual pause"))
		got, err = service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusPaused, got.Status)
		require.NotNil(t, got.PauseReason)
		assert.Equal(t, "manual pause", *got.PauseReason)

		require.NoError(t, service.Resume(ctx, c.ID))
		got, err = service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusActive, got.Status)
		assert.Nil(t, got.PauseReason)

		require.NoError(t, service.Complete(ctx, c.ID))
		got, err = service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("rejects invalid transitions", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)

		// Draft campaigns can't pause or resume.
		assert.ErrorIs(t, service.Pause(ctx, c.ID, "x"), ErrInvalidTransition)
		assert.ErrorIs(t, service.Resume(ctx, c.ID), ErrInvalidTransition)

		require.NoError(t, service.Start(ctx, c.ID))
		// Starting twice is a no-op-turned-error, not a silent restart.
		assert.ErrorIs(t, service.Start(ctx, c.ID), ErrInvalidTransition)

		require.NoError(t, service.Complete(ctx, c.ID))
		assert.ErrorIs(t, service.Pause(ctx, c.ID, "x"), ErrInvalidTransition)
	})

	t.Run("fail records error message", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)
		require.NoError(t, service.Start(ctx, c.ID))
		require.NoError(t, service.Fail(ctx, c.ID, "account auth failure"))

		got, err := service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "account auth failure", *got.ErrorMessage)
	})

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(t, service.Start(ctx, "no-such-campaign"), ErrNotFound)
		_, err := service.GetCampaign(ctx, "no-such-campaign")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft delete hides campaign", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)
		require.NoError(t, service.SoftDelete(ctx, c.ID))

		_, err := service.GetCampaign(ctx, c.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting twice is ErrNotFound, not a second timestamp.
		assert.ErrorIs(t, service.SoftDelete(ctx, c.ID), ErrNotFound)
	})
}

func TestCampaignService_Quota(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	dailyTwo := 2

	t.Run("counts up to the daily limit", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, func(req *models.CreateCampaignRequest) {
			req.DailyLimit = &dailyTwo
		})
		now := time.Now()

		for i := 0; i < 2; i++ {
			decision, err := service.QuotaCheck(ctx, c.ID, now)
			require.NoError(t, err)
			assert.True(t, decision.CanProceed)
			require.NoError(t, service.QuotaIncrement(ctx, c.ID))
		}

		decision, err := service.QuotaCheck(ctx, c.ID, now)
		require.NoError(t, err)
		assert.False(t, decision.CanProceed)
		assert.False(t, decision.WaitUntil.IsZero())

		got, err := service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.SentDay)
		assert.Equal(t, 2, got.SentWeek)
	})

	t.Run("day rollover resets the daily counter", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, func(req *models.CreateCampaignRequest) {
			req.DailyLimit = &dailyTwo
		})
		now := time.Now()

		for i := 0; i < 2; i++ {
			_, err := service.QuotaCheck(ctx, c.ID, now)
			require.NoError(t, err)
			require.NoError(t, service.QuotaIncrement(ctx, c.ID))
		}
		decision, err := service.QuotaCheck(ctx, c.ID, now)
		require.NoError(t, err)
		require.False(t, decision.CanProceed)

		// Same ISO week, next calendar day: the daily counter resets but the
		// weekly counter survives.
		nextDay := now.Add(24 * time.Hour)
		decision, err = service.QuotaCheck(ctx, c.ID, nextDay)
		require.NoError(t, err)
		assert.True(t, decision.CanProceed)

		got, err := service.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.SentDay)
		assert.Equal(t, 2, got.SentWeek)
		assert.NotNil(t, got.LastDayResetAt)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		_, err := service.QuotaCheck(ctx, "no-such-campaign", time.Now())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.QuotaIncrement(ctx, "no-such-campaign"), ErrNotFound)
	})
}

func TestCampaignService_ListCampaigns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestCampaign(t, client.Client)
	}
	other := createTestCampaign(t, client.Client, func(req *models.CreateCampaignRequest) {
		req.OrganizationID = "org-2"
	})
	require.NoError(t, service.Start(ctx, other.ID))

	t.Run("filters by organization", func(t *testing.T) {
		resp, err := service.ListCampaigns(ctx, models.CampaignFilters{OrganizationID: "org-2"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Campaigns, 1)
		assert.Equal(t, other.ID, resp.Campaigns[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListCampaigns(ctx, models.CampaignFilters{Status: "draft"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.ListCampaigns(ctx, models.CampaignFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Campaigns, 2)
	})
}

func TestCampaignService_StatusSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	leadService := NewLeadService(client.Client)
	ctx := context.Background()

	c := createTestCampaign(t, client.Client)
	leads := importTestLeads(t, client.Client, c.ID, 3)

	require.NoError(t, leadService.MarkProcessing(ctx, leads[0].ID))
	require.NoError(t, leadService.MarkProcessing(ctx, leads[1].ID))
	require.NoError(t, leadService.MarkCompleted(ctx, leads[1].ID))

	resp, err := service.StatusSummary(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.LeadsTotal)
	assert.Equal(t, 1, resp.LeadsPending)
	assert.Equal(t, 1, resp.LeadsActive)
	assert.Equal(t, 1, resp.LeadsCompleted)
	assert.Equal(t, 0, resp.LeadsFailed)
}
