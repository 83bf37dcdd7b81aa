package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent"
	"github.com/reachforge/reachforge/pkg/models"
	"github.com/stretchr/testify/require"
)

// testGraphJSON is a minimal valid campaign graph: visit, then a conditional
// connection request with an editor placeholder still attached.
const testGraphJSON = `{
	"nodes": [
		{"id": "visit", "kind": "profileVisit"},
		{"id": "invite", "kind": "sendConnectionRequest", "config": {"message": "Hi {{first_name}}"}},
		{"id": "followup", "kind": "sendFollowup", "config": {"message": "Thanks for connecting!"}},
		{"id": "placeholder", "kind": "addStep"}
	],
	"edges": [
		{"source": "visit", "target": "invite", "delay": {"magnitude": 1, "unit": "h"}},
		{"source": "invite", "target": "followup", "condition": {"branch": "positive"}},
		{"source": "invite", "target": "placeholder", "condition": {"branch": "negative"}}
	]
}`

// createTestCampaign creates a draft campaign with the standard test graph.
func createTestCampaign(t *testing.T, client *ent.Client, opts ...func(*models.CreateCampaignRequest)) *ent.Campaign {
	t.Helper()

	req := models.CreateCampaignRequest{
		CampaignID:         uuid.New().String(),
		OrganizationID:     "org-1",
		Name:               "test campaign",
		ConnectedAccountID: "acct-1",
		Graph:              json.RawMessage(testGraphJSON),
	}
	for _, opt := range opts {
		opt(&req)
	}

	c, err := NewCampaignService(client).CreateCampaign(context.Background(), req)
	require.NoError(t, err)
	return c
}

// importTestLeads imports n leads into the campaign and returns them in
// import order.
func importTestLeads(t *testing.T, client *ent.Client, campaignID string, n int) []*ent.Lead {
	t.Helper()
	ctx := context.Background()

	svc := NewLeadService(client)
	rows := make([]models.LeadImport, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.LeadImport{
			FirstName:  "Lead",
			LastName:   string(rune('A' + i)),
			ProfileURL: "https://www.linkedin.com/in/test-lead-" + string(rune('a'+i)),
		})
	}
	_, err := svc.ImportLeads(ctx, campaignID, rows)
	require.NoError(t, err)

	leads, err := svc.ListByCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Len(t, leads, n)
	return leads
}
