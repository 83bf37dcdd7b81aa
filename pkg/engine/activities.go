package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/pkg/gates"
	"github.com/reachforge/reachforge/pkg/generator"
	"github.com/reachforge/reachforge/pkg/models"
	"github.com/reachforge/reachforge/pkg/provider"
	"github.com/reachforge/reachforge/pkg/services"
	"github.com/reachforge/reachforge/pkg/slack"
)

// ErrorDetail travels inside typed application errors so the workflow can
// put the provider code into the ledger without re-parsing anything.
type ErrorDetail struct {
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// Activities is the worker-scoped activity surface. One instance per worker;
// handles are injected at startup, never reached through globals.
type Activities struct {
	Provider  *provider.Client
	Campaigns *services.CampaignService
	Leads     *services.LeadService
	Steps     *services.StepService
	Accounts  *services.AccountService
	Generator generator.Comment

	// Notifier posts campaign lifecycle events to Slack. Nil-safe.
	Notifier *slack.Service

	// WebhookClient posts step-ledger webhooks. Defaults to a 30s client.
	WebhookClient *http.Client
}

// NotifyCampaignEvent posts a lifecycle notification. Never fails: a broken
// Slack integration must not fail a workflow.
func (a *Activities) NotifyCampaignEvent(ctx context.Context, input slack.CampaignEventInput) error {
	a.Notifier.NotifyCampaignEvent(ctx, input)
	return nil
}

func (a *Activities) webhookClient() *http.Client {
	if a.WebhookClient != nil {
		return a.WebhookClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// LoadCampaign resolves the campaign snapshot the orchestrator runs on: the
// frozen graph, the schedule window, and the provider account handle.
func (a *Activities) LoadCampaign(ctx context.Context, campaignID string) (*CampaignSnapshot, error) {
	c, err := a.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	acct, err := a.Accounts.GetAccount(ctx, c.ConnectedAccountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, temporal.NewNonRetryableApplicationError(
				"connected account not found", ErrTypeAuthFailure, err,
				ErrorDetail{Code: "account_not_found"})
		}
		return nil, err
	}

	win := gates.Window{Timezone: c.Timezone}
	if c.ScheduleStart != nil {
		win.Start = *c.ScheduleStart
	}
	if c.ScheduleEnd != nil {
		win.End = *c.ScheduleEnd
	}

	return &CampaignSnapshot{
		CampaignID:        c.ID,
		OrganizationID:    c.OrganizationID,
		Name:              c.Name,
		AccountID:         acct.ID,
		ProviderAccountID: acct.ProviderAccountID,
		GraphJSON:         c.Graph,
		Window:            win,
	}, nil
}

// ListPendingLeads returns the campaign's unprocessed leads in import order.
func (a *Activities) ListPendingLeads(ctx context.Context, campaignID string) ([]LeadSnapshot, error) {
	leads, err := a.Leads.ListPending(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	snapshots := make([]LeadSnapshot, 0, len(leads))
	for _, l := range leads {
		snapshots = append(snapshots, LeadSnapshot{
			ID:         l.ID,
			FirstName:  l.FirstName,
			LastName:   l.LastName,
			Company:    l.Company,
			ProfileURL: l.ProfileURL,
		})
	}
	return snapshots, nil
}

// CheckAccount verifies the campaign's provider account is still usable.
// A missing or errored account surfaces as an auth failure so the walk stops
// and the campaign pauses.
func (a *Activities) CheckAccount(ctx context.Context, accountID string) error {
	acct, err := a.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return temporal.NewNonRetryableApplicationError(
				"connected account not found", ErrTypeAuthFailure, err,
				ErrorDetail{Code: "account_not_found"})
		}
		return err
	}
	if acct.Status == connectedaccount.StatusError {
		return temporal.NewNonRetryableApplicationError(
			"connected account in error state", ErrTypeAuthFailure, nil,
			ErrorDetail{Code: "account_error"})
	}
	return nil
}

// Campaign lifecycle updates. Invalid transitions are swallowed: a retried
// activity finding the status already moved is a replay, not a problem.

func (a *Activities) MarkCampaignActive(ctx context.Context, campaignID string) error {
	return ignoreTransition(a.Campaigns.Start(ctx, campaignID))
}

func (a *Activities) PauseCampaign(ctx context.Context, campaignID, reason string) error {
	return ignoreTransition(a.Campaigns.Pause(ctx, campaignID, reason))
}

func (a *Activities) ResumeCampaign(ctx context.Context, campaignID string) error {
	return ignoreTransition(a.Campaigns.Resume(ctx, campaignID))
}

func (a *Activities) CompleteCampaign(ctx context.Context, campaignID string) error {
	return ignoreTransition(a.Campaigns.Complete(ctx, campaignID))
}

func (a *Activities) FailCampaign(ctx context.Context, campaignID, errMsg string) error {
	return ignoreTransition(a.Campaigns.Fail(ctx, campaignID, errMsg))
}

func ignoreTransition(err error) error {
	if errors.Is(err, services.ErrInvalidTransition) {
		return nil
	}
	return err
}

// Lead lifecycle updates.

func (a *Activities) MarkLeadProcessing(ctx context.Context, leadID string) error {
	return a.Leads.MarkProcessing(ctx, leadID)
}

func (a *Activities) MarkLeadCompleted(ctx context.Context, leadID string) error {
	return a.Leads.MarkCompleted(ctx, leadID)
}

func (a *Activities) MarkLeadFailed(ctx context.Context, leadID, errMsg string) error {
	return a.Leads.MarkFailed(ctx, leadID, errMsg)
}

// QuotaCheck runs the quota gate against the database counters.
func (a *Activities) QuotaCheck(ctx context.Context, campaignID string) (gates.Decision, error) {
	return a.Campaigns.QuotaCheck(ctx, campaignID, time.Now())
}

// QuotaIncrement bumps the counters after a provider-acknowledged send.
func (a *Activities) QuotaIncrement(ctx context.Context, campaignID string) error {
	return a.Campaigns.QuotaIncrement(ctx, campaignID)
}

// RecordStep writes the idempotent ledger row for one node execution.
func (a *Activities) RecordStep(ctx context.Context, req models.RecordStepRequest) error {
	_, err := a.Steps.RecordStep(ctx, req)
	return err
}

// ExecuteNode runs one non-invite node against the provider and returns its
// typed result. Invites go through SendInvite and the polling activities
// instead, because their control flow lives in the workflow.
func (a *Activities) ExecuteNode(ctx context.Context, in NodeInput) (*NodeResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Executing node", "node_id", in.NodeID, "kind", in.Kind, "lead_id", in.Lead.ID)

	switch in.Kind {
	case "profileVisit":
		return a.execProfileVisit(ctx, in)
	case "likePost":
		return a.execLikePost(ctx, in)
	case "commentPost":
		return a.execCommentPost(ctx, in)
	case "sendFollowup":
		return a.execSendFollowup(ctx, in)
	case "sendInmail":
		// Kept as a node kind to preserve graph semantics; not wired to the
		// provider yet.
		return &NodeResult{Success: true, Result: map[string]interface{}{"status": "stubbed"}}, nil
	case "withdrawRequest":
		return a.execWithdraw(ctx, in)
	case "webhook":
		return a.execWebhook(ctx, in)
	default:
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("unknown node kind %q", in.Kind), ErrTypePermanent, nil,
			ErrorDetail{Code: "unknown_node_kind"})
	}
}

func (a *Activities) execProfileVisit(ctx context.Context, in NodeInput) (*NodeResult, error) {
	p, res, err := a.visit(ctx, in)
	if res != nil || err != nil {
		return res, err
	}
	return &NodeResult{
		Success:    true,
		ProviderID: p.ProviderID,
		Result: map[string]interface{}{
			"provider_id":  p.ProviderID,
			"first_name":   p.FirstName,
			"last_name":    p.LastName,
			"last_company": p.LastCompany,
		},
	}, nil
}

func (a *Activities) execLikePost(ctx context.Context, in NodeInput) (*NodeResult, error) {
	p, res, err := a.visit(ctx, in)
	if res != nil || err != nil {
		return res, err
	}

	lookback := configInt(in.Config, "recentPostDays", 7)
	reaction := configString(in.Config, "reaction", "like")

	postID, err := a.Provider.LikeRecentPost(ctx, in.ProviderAccountID, p.ProviderID, lookback, reaction)
	if err != nil {
		return a.classifyErr(err)
	}
	if postID == "" {
		return &NodeResult{Success: true, ProviderID: p.ProviderID,
			Result: map[string]interface{}{"status": "no_recent_post"}}, nil
	}
	return &NodeResult{Success: true, ProviderID: p.ProviderID,
		Result: map[string]interface{}{"post_id": postID, "reaction": reaction}}, nil
}

func (a *Activities) generateComment(ctx context.Context, in NodeInput, p *provider.Profile) (string, error) {
	req := generator.Request{
		FirstName: p.FirstName,
		Tone:      configString(in.Config, "tone", ""),
		Template:  configString(in.Config, "template", ""),
	}
	return a.Generator.Generate(ctx, req)
}

func (a *Activities) execCommentPost(ctx context.Context, in NodeInput) (*NodeResult, error) {
	p, res, err := a.visit(ctx, in)
	if res != nil || err != nil {
		return res, err
	}

	text, err := a.generateComment(ctx, in, p)
	if err != nil {
		return nil, fmt.Errorf("generate comment: %w", err)
	}

	lookback := configInt(in.Config, "recentPostDays", 7)
	postID, err := a.Provider.CommentRecentPost(ctx, in.ProviderAccountID, p.ProviderID, lookback, text)
	if err != nil {
		return a.classifyErr(err)
	}
	if postID == "" {
		return &NodeResult{Success: true, ProviderID: p.ProviderID,
			Result: map[string]interface{}{"status": "no_recent_post"}}, nil
	}
	return &NodeResult{Success: true, ProviderID: p.ProviderID,
		Result: map[string]interface{}{"post_id": postID, "comment": text}}, nil
}

func (a *Activities) execSendFollowup(ctx context.Context, in NodeInput) (*NodeResult, error) {
	p, res, err := a.visit(ctx, in)
	if res != nil || err != nil {
		return res, err
	}

	text := generator.RenderTemplate(configString(in.Config, "message", ""), map[string]string{
		"first_name": in.Lead.FirstName,
		"last_name":  in.Lead.LastName,
		"company":    in.Lead.Company,
	})

	if err := a.Provider.SendMessage(ctx, in.ProviderAccountID, []string{p.ProviderID}, text); err != nil {
		return a.classifyErr(err)
	}
	return &NodeResult{Success: true, ProviderID: p.ProviderID,
		Result: map[string]interface{}{"message": text}}, nil
}

func (a *Activities) execWithdraw(ctx context.Context, in NodeInput) (*NodeResult, error) {
	p, res, err := a.visit(ctx, in)
	if res != nil || err != nil {
		return res, err
	}

	invitations, err := a.Provider.ListSentInvitations(ctx, in.ProviderAccountID)
	if err != nil {
		return a.classifyErr(err)
	}
	for _, inv := range invitations {
		if inv.InvitedProviderID == p.ProviderID {
			if err := a.Provider.CancelInvitation(ctx, in.ProviderAccountID, inv.ID); err != nil {
				return a.classifyErr(err)
			}
			return &NodeResult{Success: true, ProviderID: p.ProviderID,
				Result: map[string]interface{}{"status": "withdrawn", "invitation_id": inv.ID}}, nil
		}
	}
	return &NodeResult{Success: true, ProviderID: p.ProviderID,
		Result: map[string]interface{}{"status": "nothing_to_withdraw"}}, nil
}

func (a *Activities) execWebhook(ctx context.Context, in NodeInput) (*NodeResult, error) {
	url := configString(in.Config, "url", "")
	if url == "" {
		return nil, temporal.NewNonRetryableApplicationError(
			"webhook node has no url", ErrTypePermanent, nil,
			ErrorDetail{Code: "missing_webhook_url"})
	}

	l, err := a.Leads.GetLead(ctx, in.Lead.ID)
	if err != nil {
		return nil, err
	}
	steps, err := a.Steps.ListForLead(ctx, in.Lead.ID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"lead":      l,
		"leadSteps": steps,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid webhook url", ErrTypePermanent, err,
			ErrorDetail{Code: "invalid_webhook_url"})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.webhookClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return &NodeResult{Success: true,
		Result: map[string]interface{}{"status_code": resp.StatusCode}}, nil
}

// SendInvite sends the connection request for the polling sub-machine. The
// quota gate runs in the workflow before this is called.
func (a *Activities) SendInvite(ctx context.Context, in NodeInput) (*InviteResult, error) {
	p, res, err := a.visit(ctx, in)
	if err != nil {
		return nil, err
	}
	if res != nil {
		// The profile visit short-circuited (already_done / wait_24h). The
		// invite can't proceed without a provider id; treat as connected.
		return &InviteResult{Status: InviteAlreadyConnected}, nil
	}

	message := generator.RenderTemplate(configString(in.Config, "message", ""), map[string]string{
		"first_name": in.Lead.FirstName,
		"last_name":  in.Lead.LastName,
		"company":    in.Lead.Company,
	})

	if err := a.Provider.SendInvitation(ctx, in.ProviderAccountID, p.ProviderID, message); err != nil {
		switch provider.Classify(err) {
		case provider.VerdictAlreadyDone:
			return &InviteResult{Status: InviteAlreadyConnected, ProviderID: p.ProviderID}, nil
		case provider.VerdictAlreadyInvited, provider.VerdictWait24h:
			// The provider refuses to send again; whatever we sent before is
			// still in flight, so poll it.
			return &InviteResult{Status: InviteAlreadyInvited, ProviderID: p.ProviderID}, nil
		default:
			_, cerr := a.classifyErr(err)
			return nil, cerr
		}
	}
	return &InviteResult{Status: InviteSent, ProviderID: p.ProviderID}, nil
}

// CheckConnected reports whether the account is now connected to the lead.
func (a *Activities) CheckConnected(ctx context.Context, providerAccountID, profileURL string) (bool, error) {
	identifier := provider.ExtractPublicIdentifier(profileURL)
	if identifier == "" {
		return false, temporal.NewNonRetryableApplicationError(
			"profile url has no public identifier", ErrTypePermanent, nil,
			ErrorDetail{Code: "invalid_profile_url"})
	}
	connected, err := a.Provider.IsConnected(ctx, providerAccountID, identifier)
	if err != nil {
		_, cerr := a.classifyErr(err)
		return false, cerr
	}
	return connected, nil
}

// HasPendingInvite reports whether our invitation to the lead is still in
// the account's sent list. Absence after a send means the lead declined.
func (a *Activities) HasPendingInvite(ctx context.Context, providerAccountID, providerID string) (bool, error) {
	invitations, err := a.Provider.ListSentInvitations(ctx, providerAccountID)
	if err != nil {
		_, cerr := a.classifyErr(err)
		return false, cerr
	}
	for _, inv := range invitations {
		if inv.InvitedProviderID == providerID {
			return true, nil
		}
	}
	return false, nil
}

// visit resolves the lead's public identifier and performs the silent
// profile visit every executor needs for a provider id. A non-nil NodeResult
// means the caller should return it as-is (short-circuit success).
func (a *Activities) visit(ctx context.Context, in NodeInput) (*provider.Profile, *NodeResult, error) {
	identifier := provider.ExtractPublicIdentifier(in.Lead.ProfileURL)
	if identifier == "" {
		return nil, nil, temporal.NewNonRetryableApplicationError(
			"profile url has no public identifier", ErrTypePermanent, nil,
			ErrorDetail{Code: "invalid_profile_url"})
	}

	p, err := a.Provider.VisitProfile(ctx, in.ProviderAccountID, identifier, false)
	if err != nil {
		res, cerr := a.classifyErr(err)
		return nil, res, cerr
	}
	return p, nil, nil
}

// classifyErr translates a provider error into either a short-circuit
// success (already done, wait 24h), a typed non-retryable application error
// (permanent, auth, quota), or the raw error for the retry policy.
func (a *Activities) classifyErr(err error) (*NodeResult, error) {
	perr, _ := provider.AsProviderError(err)

	switch provider.Classify(err) {
	case provider.VerdictAlreadyDone, provider.VerdictAlreadyInvited:
		return &NodeResult{Success: true,
			Result: map[string]interface{}{"status": "already_done"}}, nil
	case provider.VerdictWait24h:
		return &NodeResult{Success: true,
			Result: map[string]interface{}{"status": "wait_24h"}}, nil
	case provider.VerdictPermanent:
		return nil, temporal.NewNonRetryableApplicationError(
			err.Error(), ErrTypePermanent, err, detailOf(perr))
	case provider.VerdictAuthFailure:
		return nil, temporal.NewNonRetryableApplicationError(
			err.Error(), ErrTypeAuthFailure, err, detailOf(perr))
	case provider.VerdictQuotaExhausted:
		return nil, temporal.NewNonRetryableApplicationError(
			err.Error(), ErrTypeQuotaExceeded, err, detailOf(perr))
	default:
		return nil, err
	}
}

func detailOf(perr *provider.Error) ErrorDetail {
	if perr == nil {
		return ErrorDetail{}
	}
	return ErrorDetail{Code: string(perr.Code), Detail: perr.Detail}
}

func configString(config map[string]interface{}, key, fallback string) string {
	if v, ok := config[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func configInt(config map[string]interface{}, key string, fallback int) int {
	switch v := config[key].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}
