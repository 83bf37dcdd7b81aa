// Package engine is the durable workflow layer: the campaign orchestrator,
// the per-lead DAG interpreter, and the activities they run against the
// provider, the gates, and the step ledger. Everything long-lived and
// restartable lives here; everything stateful is behind an activity.
package engine

import (
	"time"

	"github.com/reachforge/reachforge/pkg/gates"
)

// Workflow type names as registered with the runtime.
const (
	CampaignWorkflowName = "CampaignOrchestrator"
	LeadWorkflowName     = "LeadOutreach"
)

// Signal and query names on the campaign orchestrator.
const (
	SignalPauseCampaign  = "PauseCampaign"
	SignalResumeCampaign = "ResumeCampaign"
	SignalStopCampaign   = "StopCampaign"
	QueryCampaignStatus  = "CampaignStatus"
)

// PauseSignal asks the orchestrator to stop spawning leads. Running leads
// continue.
type PauseSignal struct {
	Reason string `json:"reason,omitempty"`
}

// ResumeSignal restores spawning after a pause.
type ResumeSignal struct{}

// StopSignal terminates the campaign. With CompleteCurrent, running leads
// finish their walks; without it they are cancelled.
type StopSignal struct {
	CompleteCurrent bool   `json:"complete_current"`
	Reason          string `json:"reason,omitempty"`
}

// CampaignWorkflowInput starts a campaign orchestrator.
type CampaignWorkflowInput struct {
	CampaignID         string        `json:"campaign_id"`
	MaxConcurrentLeads int           `json:"max_concurrent_leads,omitempty"`
	LeadStagger        time.Duration `json:"lead_stagger,omitempty"`
}

// CampaignStatusReport answers the CampaignStatus query.
type CampaignStatusReport struct {
	Status     string     `json:"status"`
	TotalLeads int        `json:"total_leads"`
	Processed  int        `json:"processed"`
	Success    int        `json:"success"`
	Fail       int        `json:"fail"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}

// LeadSnapshot is the lead data a workflow carries by value. No entity
// back-pointers cross the activity boundary.
type LeadSnapshot struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name,omitempty"`
	Company    string `json:"company,omitempty"`
	ProfileURL string `json:"profile_url"`
}

// CampaignSnapshot is what the orchestrator loads once at start: the frozen
// graph and everything children need, passed to them by value.
type CampaignSnapshot struct {
	CampaignID        string       `json:"campaign_id"`
	OrganizationID    string       `json:"organization_id"`
	Name              string       `json:"name"`
	AccountID         string       `json:"account_id"`
	ProviderAccountID string       `json:"provider_account_id"`
	GraphJSON         string       `json:"graph_json"`
	Window            gates.Window `json:"window"`
}

// LeadWorkflowInput starts one lead's walk through the graph.
type LeadWorkflowInput struct {
	CampaignID        string       `json:"campaign_id"`
	AccountID         string       `json:"account_id"`
	ProviderAccountID string       `json:"provider_account_id"`
	Lead              LeadSnapshot `json:"lead"`
	GraphJSON         string       `json:"graph_json"`
	Window            gates.Window `json:"window"`
}

// LeadWorkflowResult summarizes a finished walk for the orchestrator's
// counters.
type LeadWorkflowResult struct {
	LeadID        string `json:"lead_id"`
	Completed     bool   `json:"completed"`
	StepsExecuted int    `json:"steps_executed"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// NodeInput is the executor activity's argument: one node, one lead.
type NodeInput struct {
	CampaignID        string                 `json:"campaign_id"`
	ProviderAccountID string                 `json:"provider_account_id"`
	Lead              LeadSnapshot           `json:"lead"`
	StepIndex         int                    `json:"step_index"`
	NodeID            string                 `json:"node_id"`
	Kind              string                 `json:"kind"`
	Config            map[string]interface{} `json:"config,omitempty"`
}

// NodeResult is what an executor returns on success (including no-op and
// already-done successes). Failures travel as typed application errors.
type NodeResult struct {
	Success    bool                   `json:"success"`
	ProviderID string                 `json:"provider_id,omitempty"`
	Result     map[string]interface{} `json:"result,omitempty"`
}

// InviteResult is the send-invitation activity's outcome.
type InviteResult struct {
	// Status is one of "sent", "already_invited", "already_connected".
	Status     string `json:"status"`
	ProviderID string `json:"provider_id,omitempty"`
}

// Invite statuses.
const (
	InviteSent             = "sent"
	InviteAlreadyInvited   = "already_invited"
	InviteAlreadyConnected = "already_connected"
)

// Connection sub-machine terminal states, recorded in the ledger row.
const (
	ConnAccepted         = "accepted"
	ConnRejected         = "rejected"
	ConnTimedOut         = "timed_out"
	ConnAlreadyConnected = "already_connected"
)

// Application error types the activities raise for the workflow to branch
// on. All three are non-retryable at the runtime level: the workflow, not
// the retry policy, decides what happens next.
const (
	ErrTypePermanent     = "PermanentProviderError"
	ErrTypeAuthFailure   = "AuthFailure"
	ErrTypeQuotaExceeded = "QuotaExhausted"
)

// Defaults mirrored from config; used when the input leaves them zero.
const (
	DefaultMaxConcurrentLeads = 100
	DefaultLeadStagger        = 30 * time.Second
	DefaultPollBudget         = 10 * 24 * time.Hour
)
