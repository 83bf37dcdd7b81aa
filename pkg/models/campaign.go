// Package models defines request/response types shared by the API layer and services.
package models

import (
	"encoding/json"
	"time"

	"github.com/reachforge/reachforge/ent"
)

// CreateCampaignRequest is the payload for creating a campaign.
// The graph is stored verbatim as the campaign's immutable snapshot once the
// campaign starts; it is validated (and addStep placeholders stripped) before
// persisting.
type CreateCampaignRequest struct {
	CampaignID         string          `json:"campaign_id,omitempty"`
	OrganizationID     string          `json:"organization_id" binding:"required"`
	Name               string          `json:"name" binding:"required"`
	ConnectedAccountID string          `json:"connected_account_id" binding:"required"`
	Graph              json.RawMessage `json:"graph" binding:"required"`

	ScheduleStart string `json:"schedule_start,omitempty"`
	ScheduleEnd   string `json:"schedule_end,omitempty"`
	Timezone      string `json:"timezone,omitempty"`

	DailyLimit  *int `json:"daily_limit,omitempty"`
	WeeklyLimit *int `json:"weekly_limit,omitempty"`
}

// CampaignFilters controls campaign listing.
type CampaignFilters struct {
	OrganizationID string
	Status         string
	CreatedAfter   *time.Time
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// CampaignListResponse is a paginated campaign list.
type CampaignListResponse struct {
	Campaigns  []*ent.Campaign `json:"campaigns"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// CampaignStatusResponse reports a campaign's persisted state plus live
// counts derived from its leads.
type CampaignStatusResponse struct {
	Campaign       *ent.Campaign `json:"campaign"`
	LeadsTotal     int           `json:"leads_total"`
	LeadsPending   int           `json:"leads_pending"`
	LeadsActive    int           `json:"leads_active"`
	LeadsCompleted int           `json:"leads_completed"`
	LeadsFailed    int           `json:"leads_failed"`
	WorkflowStatus string        `json:"workflow_status,omitempty"`
}
