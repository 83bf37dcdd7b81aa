package models

// RecordStepRequest is the idempotent write into the step ledger.
// (CampaignID, LeadID, StepIndex) is the idempotency key: a second write for
// the same key is silently dropped and the original row wins.
type RecordStepRequest struct {
	CampaignID string
	LeadID     string
	StepIndex  int
	NodeID     string
	NodeKind   string
	Config     map[string]interface{}
	Success    bool
	Result     map[string]interface{}
}
