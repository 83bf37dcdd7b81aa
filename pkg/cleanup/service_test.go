package cleanup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reachforge/reachforge/ent"
	entcampaign "github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/pkg/config"
	"github.com/reachforge/reachforge/pkg/models"
	"github.com/reachforge/reachforge/pkg/services"
	testdb "github.com/reachforge/reachforge/test/database"
)

const cleanupTestGraph = `{
	"nodes": [{"id": "visit", "kind": "profileVisit"}],
	"edges": []
}`

func setupCampaign(t *testing.T) (*ent.Client, *services.CampaignService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := services.NewCampaignService(client.Client)

	c, err := svc.CreateCampaign(context.Background(), models.CreateCampaignRequest{
		CampaignID:         uuid.New().String(),
		OrganizationID:     "org-1",
		Name:               "retention test",
		ConnectedAccountID: "acct-1",
		Graph:              json.RawMessage(cleanupTestGraph),
	})
	require.NoError(t, err)
	return client.Client, svc, c.ID
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:  true,
		MaxAge:   30 * 24 * time.Hour,
		Interval: time.Hour,
	}
}

func TestService_PurgesOldSoftDeletedCampaigns(t *testing.T) {
	client, campaigns, id := setupCampaign(t)
	ctx := context.Background()

	err := client.Campaign.UpdateOneID(id).
		SetDeletedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), campaigns)
	svc.purge()

	exists, err := client.Campaign.Query().Where(entcampaign.IDEQ(id)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "campaign past retention should be gone")
}

func TestService_PreservesRecentlyDeletedCampaigns(t *testing.T) {
	client, campaigns, id := setupCampaign(t)
	ctx := context.Background()

	require.NoError(t, campaigns.SoftDelete(ctx, id))

	svc := NewService(retentionConfig(), campaigns)
	svc.purge()

	exists, err := client.Campaign.Query().Where(entcampaign.IDEQ(id)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists, "recently deleted campaign stays until MaxAge passes")
}

func TestService_PreservesLiveCampaigns(t *testing.T) {
	client, campaigns, id := setupCampaign(t)
	ctx := context.Background()

	svc := NewService(retentionConfig(), campaigns)
	svc.purge()

	c, err := client.Campaign.Query().Where(entcampaign.IDEQ(id)).Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, c.DeletedAt)
}
