package engine

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/reachforge/reachforge/pkg/gates"
	"github.com/reachforge/reachforge/pkg/graph"
	"github.com/reachforge/reachforge/pkg/models"
)

// defaultActivityOptions is the retry envelope every engine activity runs
// under. The typed error types are non-retryable: the workflow decides what
// a permanent, auth, or quota failure means, not the retry policy.
func defaultActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    10,
			NonRetryableErrorTypes: []string{
				ErrTypePermanent,
				ErrTypeAuthFailure,
				ErrTypeQuotaExceeded,
			},
		},
	}
}

// LeadWorkflow walks one lead through the campaign graph: topological order,
// per-edge delays, conditional branches, the connection-request sub-machine,
// and the window and quota gates. It may run for weeks; every provider call
// and every sleep is durable.
func LeadWorkflow(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
	logger := workflow.GetLogger(ctx)
	result := &LeadWorkflowResult{LeadID: in.Lead.ID}

	g, err := graph.Parse([]byte(in.GraphJSON))
	if err != nil {
		// The snapshot was validated at campaign creation; a bad graph here
		// is a config error, not something a retry fixes.
		failLead(ctx, in.Lead.ID, "invalid graph snapshot: "+err.Error())
		result.FailureReason = "invalid graph snapshot"
		return result, nil
	}

	actCtx := workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities

	if err := workflow.ExecuteActivity(actCtx, a.MarkLeadProcessing, in.Lead.ID).Get(ctx, nil); err != nil {
		return result, err
	}

	// Cancellation arrives when the operator stops the campaign without
	// letting leads finish. The ledger already reflects every completed
	// step; only the lead status needs a terminal write.
	defer func() {
		if ctx.Err() != nil {
			failLead(ctx, in.Lead.ID, "campaign stopped")
			result.FailureReason = "campaign stopped"
		}
	}()

	adjacency := g.Adjacency()
	incoming := g.InDegrees()
	queue := g.Sources()
	stepIndex := 0

	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]
		node, ok := g.Node(nodeID)
		if !ok {
			continue
		}

		// The account must still resolve before every node. A deleted or
		// errored account is an auth failure: pause the campaign, fail the
		// lead.
		if err := workflow.ExecuteActivity(actCtx, a.CheckAccount, in.AccountID).Get(ctx, nil); err != nil {
			return result, handleNodeError(ctx, in, node, stepIndex, err, result)
		}

		if err := waitForWindow(ctx, in.Window); err != nil {
			return result, err
		}

		nodeIn := NodeInput{
			CampaignID:        in.CampaignID,
			ProviderAccountID: in.ProviderAccountID,
			Lead:              in.Lead,
			StepIndex:         stepIndex,
			NodeID:            node.ID,
			Kind:              string(node.Kind),
			Config:            node.Config,
		}

		var nodeResult *NodeResult
		if node.Kind == graph.KindSendConnectionRequest {
			nodeResult, err = runConnectionRequest(ctx, actCtx, in, nodeIn, pollBudget(adjacency[nodeID]))
		} else {
			nodeResult, err = runNode(ctx, actCtx, in, nodeIn)
		}
		if err != nil {
			return result, handleNodeError(ctx, in, node, stepIndex, err, result)
		}

		// Ledger write precedes any sleep or further advance, so a replay
		// after a crash lands on an idempotent no-op.
		if err := recordStep(ctx, actCtx, nodeIn, nodeResult.Success, nodeResult.Result); err != nil {
			return result, err
		}
		stepIndex++
		result.StepsExecuted++

		branch := graph.BranchNegative
		if nodeResult.Success {
			branch = graph.BranchPositive
		}

		for _, e := range adjacency[nodeID] {
			if e.IsConditional() && e.Condition.Branch != branch {
				continue
			}
			if e.Delay != nil {
				if err := workflow.Sleep(ctx, e.Delay.Duration()); err != nil {
					return result, err
				}
			}
			incoming[e.Target]--
			if incoming[e.Target] == 0 {
				queue = append(queue, e.Target)
			}
		}
	}

	if err := workflow.ExecuteActivity(actCtx, a.MarkLeadCompleted, in.Lead.ID).Get(ctx, nil); err != nil {
		return result, err
	}
	logger.Info("Lead walk completed", "lead_id", in.Lead.ID, "steps", result.StepsExecuted)
	result.Completed = true
	return result, nil
}

// runNode executes a plain node, absorbing quota exhaustion by sleeping
// until the gate opens and retrying the same step.
func runNode(ctx workflow.Context, actCtx workflow.Context, in LeadWorkflowInput, nodeIn NodeInput) (*NodeResult, error) {
	var a *Activities
	for {
		var nodeResult NodeResult
		err := workflow.ExecuteActivity(actCtx, a.ExecuteNode, nodeIn).Get(ctx, &nodeResult)
		if err == nil {
			return &nodeResult, nil
		}
		if errType(err) != ErrTypeQuotaExceeded {
			return nil, err
		}
		if err := sleepUntilQuotaOpens(ctx, actCtx, in.CampaignID); err != nil {
			return nil, err
		}
	}
}

// runConnectionRequest is the invite sub-machine:
// Sending → Polling → {Accepted, Rejected, TimedOut, AlreadyConnected}.
func runConnectionRequest(ctx workflow.Context, actCtx workflow.Context, in LeadWorkflowInput, nodeIn NodeInput, budget time.Duration) (*NodeResult, error) {
	logger := workflow.GetLogger(ctx)
	var a *Activities

	// Sending: gate through the quota, then send. Quota exhaustion reported
	// by the provider itself also lands back here.
	var invite InviteResult
	for {
		if err := sleepUntilQuotaOpens(ctx, actCtx, in.CampaignID); err != nil {
			return nil, err
		}
		err := workflow.ExecuteActivity(actCtx, a.SendInvite, nodeIn).Get(ctx, &invite)
		if err == nil {
			break
		}
		if errType(err) != ErrTypeQuotaExceeded {
			return nil, err
		}
	}

	switch invite.Status {
	case InviteAlreadyConnected:
		return &NodeResult{Success: true, ProviderID: invite.ProviderID,
			Result: map[string]interface{}{"status": ConnAlreadyConnected}}, nil
	case InviteSent:
		// Counted on provider-acknowledged send, not on acceptance.
		if err := workflow.ExecuteActivity(actCtx, a.QuotaIncrement, in.CampaignID).Get(ctx, nil); err != nil {
			return nil, err
		}
	}

	// Polling.
	interval := pollInterval(budget)
	deadline := workflow.Now(ctx).Add(budget)
	logger.Info("Polling invitation", "lead_id", in.Lead.ID, "budget", budget, "interval", interval)

	for workflow.Now(ctx).Before(deadline) {
		if err := workflow.Sleep(ctx, interval); err != nil {
			return nil, err
		}

		var connected bool
		if err := workflow.ExecuteActivity(actCtx, a.CheckConnected, in.ProviderAccountID, in.Lead.ProfileURL).Get(ctx, &connected); err != nil {
			return nil, err
		}
		if connected {
			return &NodeResult{Success: true, ProviderID: invite.ProviderID,
				Result: map[string]interface{}{"status": ConnAccepted}}, nil
		}

		var pending bool
		if err := workflow.ExecuteActivity(actCtx, a.HasPendingInvite, in.ProviderAccountID, invite.ProviderID).Get(ctx, &pending); err != nil {
			return nil, err
		}
		if !pending {
			return &NodeResult{Success: false, ProviderID: invite.ProviderID,
				Result: map[string]interface{}{"status": ConnRejected}}, nil
		}
	}

	return &NodeResult{Success: false, ProviderID: invite.ProviderID,
		Result: map[string]interface{}{"status": ConnTimedOut}}, nil
}

// sleepUntilQuotaOpens loops on the quota gate, sleeping to each WaitUntil
// instant, until another connection request may be sent.
func sleepUntilQuotaOpens(ctx workflow.Context, actCtx workflow.Context, campaignID string) error {
	var a *Activities
	for {
		var decision gates.Decision
		if err := workflow.ExecuteActivity(actCtx, a.QuotaCheck, campaignID).Get(ctx, &decision); err != nil {
			return err
		}
		if decision.CanProceed {
			return nil
		}
		wait := decision.WaitUntil.Sub(workflow.Now(ctx))
		if wait <= 0 {
			wait = time.Minute
		}
		if err := workflow.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// waitForWindow sleeps until the campaign's schedule window is open. A
// malformed window fails open: outreach is better sent off-hours than never.
func waitForWindow(ctx workflow.Context, win gates.Window) error {
	for {
		inWindow, wait, err := win.Check(workflow.Now(ctx))
		if err != nil || inWindow {
			return nil
		}
		if err := workflow.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// handleNodeError maps a typed activity error to its terminal effect:
// ledger row, lead status, and - for auth failures - pausing the parent
// campaign. A nil return means the workflow ends cleanly with the lead
// failed; only infrastructure errors propagate as workflow errors.
func handleNodeError(ctx workflow.Context, in LeadWorkflowInput, node graph.Node, stepIndex int, err error, result *LeadWorkflowResult) error {
	if temporal.IsCanceledError(err) || ctx.Err() != nil {
		return err
	}

	actCtx := workflow.WithActivityOptions(ctx, defaultActivityOptions())
	detail := errorDetail(err)
	stepResult := map[string]interface{}{"error_code": detail.Code}
	if detail.Detail != "" {
		stepResult["detail"] = detail.Detail
	}

	nodeIn := NodeInput{
		CampaignID:        in.CampaignID,
		ProviderAccountID: in.ProviderAccountID,
		Lead:              in.Lead,
		StepIndex:         stepIndex,
		NodeID:            node.ID,
		Kind:              string(node.Kind),
		Config:            node.Config,
	}
	if recErr := recordStep(ctx, actCtx, nodeIn, false, stepResult); recErr != nil {
		return recErr
	}

	reason := detail.Code
	if reason == "" {
		reason = err.Error()
	}

	if errType(err) == ErrTypeAuthFailure {
		pauseParentCampaign(ctx, "account auth failure: "+reason)
	}

	failLead(ctx, in.Lead.ID, reason)
	result.FailureReason = reason
	return nil
}

// pauseParentCampaign signals the orchestrator that spawned us. Best effort:
// a lead workflow started by hand has no parent.
func pauseParentCampaign(ctx workflow.Context, reason string) {
	parent := workflow.GetInfo(ctx).ParentWorkflowExecution
	if parent == nil {
		return
	}
	err := workflow.SignalExternalWorkflow(ctx, parent.ID, "", SignalPauseCampaign, PauseSignal{Reason: reason}).Get(ctx, nil)
	if err != nil {
		workflow.GetLogger(ctx).Warn("Failed to signal campaign pause", "error", err)
	}
}

// failLead marks the lead failed even when the workflow context is already
// cancelled.
func failLead(ctx workflow.Context, leadID, reason string) {
	dctx, cancel := workflow.NewDisconnectedContext(ctx)
	defer cancel()
	actCtx := workflow.WithActivityOptions(dctx, defaultActivityOptions())
	var a *Activities
	if err := workflow.ExecuteActivity(actCtx, a.MarkLeadFailed, leadID, reason).Get(dctx, nil); err != nil {
		workflow.GetLogger(ctx).Warn("Failed to mark lead failed", "lead_id", leadID, "error", err)
	}
}

func recordStep(ctx workflow.Context, actCtx workflow.Context, nodeIn NodeInput, success bool, stepResult map[string]interface{}) error {
	var a *Activities
	return workflow.ExecuteActivity(actCtx, a.RecordStep, models.RecordStepRequest{
		CampaignID: nodeIn.CampaignID,
		LeadID:     nodeIn.Lead.ID,
		StepIndex:  nodeIn.StepIndex,
		NodeID:     nodeIn.NodeID,
		NodeKind:   nodeIn.Kind,
		Config:     nodeIn.Config,
		Success:    success,
		Result:     stepResult,
	}).Get(ctx, nil)
}

// pollBudget is the invite polling budget: the delay on the outgoing
// negative conditional edge when present, ten days otherwise.
func pollBudget(edges []graph.Edge) time.Duration {
	for _, e := range edges {
		if e.IsConditional() && e.Condition.Branch == graph.BranchNegative && e.Delay != nil {
			return e.Delay.Duration()
		}
	}
	return DefaultPollBudget
}

// pollInterval scales the poll frequency with the budget.
func pollInterval(budget time.Duration) time.Duration {
	switch {
	case budget < 24*time.Hour:
		return 15 * time.Minute
	case budget < 7*24*time.Hour:
		return 30 * time.Minute
	default:
		return time.Hour
	}
}

// errType extracts the application error type from an activity failure.
func errType(err error) string {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Type()
	}
	return ""
}

// errorDetail extracts the provider code carried by a typed activity error.
func errorDetail(err error) ErrorDetail {
	var detail ErrorDetail
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.HasDetails() {
		if derr := appErr.Details(&detail); derr == nil {
			return detail
		}
	}
	return ErrorDetail{Code: "activity_failure"}
}
