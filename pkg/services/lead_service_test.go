package services

import (
	"context"
	"testing"

	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/pkg/models"
	testdb "github.com/reachforge/reachforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadService_ImportLeads(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	t.Run("imports leads", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)

		result, err := service.ImportLeads(ctx, c.ID, []models.LeadImport{
			{FirstName: "Ada", LastName: "Lovelace", Company: "Analytical Engines", ProfileURL: "https://www.linkedin.com/in/ada"},
			{FirstName: "Grace", ProfileURL: "https://www.linkedin.com/in/grace"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 0, result.Skipped)

		leads, err := service.ListByCampaign(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, leads, 2)
		assert.Equal(t, "Ada", leads[0].FirstName)
		assert.Equal(t, lead.StatusPending, leads[0].Status)
	})

	t.Run("re-import skips duplicates", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)

		rows := []models.LeadImport{
			{FirstName: "Ada", ProfileURL: "https://www.linkedin.com/in/ada"},
			{FirstName: "Grace", ProfileURL: "https://www.linkedin.com/in/grace"},
		}
		_, err := service.ImportLeads(ctx, c.ID, rows)
		require.NoError(t, err)

		// Same list again plus one new row.
		rows = append(rows, models.LeadImport{FirstName: "Edsger", ProfileURL: "https://www.linkedin.com/in/edsger"})
		result, err := service.ImportLeads(ctx, c.ID, rows)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 2, result.Skipped)

		leads, err := service.ListByCampaign(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, leads, 3)
	})

	t.Run("same profile in two campaigns is fine", func(t *testing.T) {
		c1 := createTestCampaign(t, client.Client)
		c2 := createTestCampaign(t, client.Client)

		row := []models.LeadImport{{FirstName: "Ada", ProfileURL: "https://www.linkedin.com/in/ada"}}
		r1, err := service.ImportLeads(ctx, c1.ID, row)
		require.NoError(t, err)
		r2, err := service.ImportLeads(ctx, c2.ID, row)
		require.NoError(t, err)
		assert.Equal(t, 1, r1.Imported)
		assert.Equal(t, 1, r2.Imported)
	})

	t.Run("validates rows", func(t *testing.T) {
		c := createTestCampaign(t, client.Client)

		_, err := service.ImportLeads(ctx, c.ID, nil)
		assert.True(t, IsValidationError(err))

		_, err = service.ImportLeads(ctx, c.ID, []models.LeadImport{{ProfileURL: "https://www.linkedin.com/in/x"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first_name")

		_, err = service.ImportLeads(ctx, c.ID, []models.LeadImport{{FirstName: "Ada"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile_url")
	})
}

func TestLeadService_StatusUpdates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLeadService(client.Client)
	ctx := context.Background()

	c := createTestCampaign(t, client.Client)
	leads := importTestLeads(t, client.Client, c.ID, 2)

	t.Run("mark processing claims pending lead", func(t *testing.T) {
		require.NoError(t, service.MarkProcessing(ctx, leads[0].ID))

		got, err := service.GetLead(ctx, leads[0].ID)
		require.NoError(t, err)
		assert.Equal(t, lead.StatusProcessing, got.Status)
		assert.NotNil(t, got.StartedAt)

		// A replayed workflow calling it again is a no-op.
		require.NoError(t, service.MarkProcessing(ctx, leads[0].ID))
	})

	t.Run("pending leads shrink as they are claimed", func(t *testing.T) {
		pending, err := service.ListPending(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, leads[1].ID, pending[0].ID)
	})

	t.Run("mark completed", func(t *testing.T) {
		require.NoError(t, service.MarkCompleted(ctx, leads[0].ID))
		got, err := service.GetLead(ctx, leads[0].ID)
		require.NoError(t, err)
		assert.Equal(t, lead.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
		assert.Nil(t, got.ErrorMessage)
	})

	t.Run("mark failed records error", func(t *testing.T) {
		require.NoError(t, service.MarkFailed(ctx, leads[1].ID, "invalid recipient"))
		got, err := service.GetLead(ctx, leads[1].ID)
		require.NoError(t, err)
		assert.Equal(t, lead.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "invalid recipient", *got.ErrorMessage)
	})

	t.Run("set provider id", func(t *testing.T) {
		require.NoError(t, service.SetProviderID(ctx, leads[0].ID, "urn:li:fsd_profile:123"))
		got, err := service.GetLead(ctx, leads[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got.ProviderID)
		assert.Equal(t, "urn:li:fsd_profile:123", *got.ProviderID)
	})

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(t, service.MarkProcessing(ctx, "no-such-lead"), ErrNotFound)
		assert.ErrorIs(t, service.MarkCompleted(ctx, "no-such-lead"), ErrNotFound)
		assert.ErrorIs(t, service.SetProviderID(ctx, "no-such-lead", "urn"), ErrNotFound)
		_, err := service.GetLead(ctx, "no-such-lead")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
