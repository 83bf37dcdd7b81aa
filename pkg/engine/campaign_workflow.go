package engine

import (
	"fmt"
	"time"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/workflow"

	"github.com/reachforge/reachforge/pkg/graph"
	"github.com/reachforge/reachforge/pkg/slack"
)

// CampaignWorkflow supervises one campaign: it loads the frozen graph and
// the lead list, spawns a LeadWorkflow child per lead with a staggered start
// and bounded concurrency, and answers operator signals.
//
// Children are abandoned on parent close — a finished or stopped
// orchestrator never kills a running lead unless Stop explicitly asked for
// cancellation.
func CampaignWorkflow(ctx workflow.Context, in CampaignWorkflowInput) (*CampaignStatusReport, error) {
	logger := workflow.GetLogger(ctx)

	maxConcurrent := in.MaxConcurrentLeads
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentLeads
	}
	stagger := in.LeadStagger
	if stagger <= 0 {
		stagger = DefaultLeadStagger
	}

	report := &CampaignStatusReport{
		Status:    "starting",
		StartTime: workflow.Now(ctx),
	}
	if err := workflow.SetQueryHandler(ctx, QueryCampaignStatus, func() (CampaignStatusReport, error) {
		return *report, nil
	}); err != nil {
		return report, err
	}

	actCtx := workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities

	var snapshot CampaignSnapshot
	if err := workflow.ExecuteActivity(actCtx, a.LoadCampaign, in.CampaignID).Get(ctx, &snapshot); err != nil {
		report.Status = "failed"
		failCampaign(ctx, in.CampaignID, "failed to load campaign: "+err.Error())
		return report, err
	}

	// The snapshot was validated at creation, but the walk must never start
	// on a graph that stopped parsing. Config errors fail the campaign.
	if _, err := graph.Parse([]byte(snapshot.GraphJSON)); err != nil {
		report.Status = "failed"
		failCampaign(ctx, in.CampaignID, "invalid graph: "+err.Error())
		return report, fmt.Errorf("invalid campaign graph: %w", err)
	}

	if err := workflow.ExecuteActivity(actCtx, a.MarkCampaignActive, in.CampaignID).Get(ctx, nil); err != nil {
		return report, err
	}
	report.Status = "active"

	var leads []LeadSnapshot
	if err := workflow.ExecuteActivity(actCtx, a.ListPendingLeads, in.CampaignID).Get(ctx, &leads); err != nil {
		return report, err
	}
	report.TotalLeads = len(leads)

	notify(ctx, actCtx, &snapshot, report, "started", "")

	// Mutable orchestration state, shared between the main loop and the
	// signal drain goroutines. All access happens on the workflow's single
	// logical thread, so no locking.
	var (
		paused  bool
		stopped bool
		active  int
	)

	childCtx, cancelChildren := workflow.WithCancel(ctx)

	pauseCh := workflow.GetSignalChannel(ctx, SignalPauseCampaign)
	resumeCh := workflow.GetSignalChannel(ctx, SignalResumeCampaign)
	stopCh := workflow.GetSignalChannel(ctx, SignalStopCampaign)

	workflow.Go(ctx, func(gctx workflow.Context) {
		for {
			var sig PauseSignal
			pauseCh.Receive(gctx, &sig)
			if paused || stopped {
				continue
			}
			logger.Info("Campaign paused", "campaign_id", in.CampaignID, "reason", sig.Reason)
			paused = true
			report.Status = "paused"
			gact := workflow.WithActivityOptions(gctx, defaultActivityOptions())
			_ = workflow.ExecuteActivity(gact, a.PauseCampaign, in.CampaignID, sig.Reason).Get(gctx, nil)
			notify(gctx, gact, &snapshot, report, "paused", sig.Reason)
		}
	})

	workflow.Go(ctx, func(gctx workflow.Context) {
		for {
			var sig ResumeSignal
			resumeCh.Receive(gctx, &sig)
			if !paused || stopped {
				continue
			}
			logger.Info("Campaign resumed", "campaign_id", in.CampaignID)
			paused = false
			report.Status = "active"
			gact := workflow.WithActivityOptions(gctx, defaultActivityOptions())
			_ = workflow.ExecuteActivity(gact, a.ResumeCampaign, in.CampaignID).Get(gctx, nil)
			notify(gctx, gact, &snapshot, report, "resumed", "")
		}
	})

	var stopSig StopSignal
	workflow.Go(ctx, func(gctx workflow.Context) {
		stopCh.Receive(gctx, &stopSig)
		logger.Info("Campaign stop requested",
			"campaign_id", in.CampaignID,
			"complete_current", stopSig.CompleteCurrent,
			"reason", stopSig.Reason)
		stopped = true
		report.Status = "stopping"
		if !stopSig.CompleteCurrent {
			cancelChildren()
		}
	})

	// Spawn loop: FIFO over the lead list, staggered, gated on concurrency
	// and pause state.
	for i, l := range leads {
		if err := workflow.Await(ctx, func() bool {
			return stopped || (!paused && active < maxConcurrent)
		}); err != nil {
			return report, err
		}
		if stopped {
			break
		}

		lead := l
		childOpts := workflow.ChildWorkflowOptions{
			WorkflowID:               fmt.Sprintf("lead-%s-%s", in.CampaignID, lead.ID),
			ParentClosePolicy:        enumspb.PARENT_CLOSE_POLICY_ABANDON,
			WorkflowExecutionTimeout: 30 * 24 * time.Hour,
		}
		cctx := workflow.WithChildOptions(childCtx, childOpts)
		future := workflow.ExecuteChildWorkflow(cctx, LeadWorkflow, LeadWorkflowInput{
			CampaignID:        snapshot.CampaignID,
			AccountID:         snapshot.AccountID,
			ProviderAccountID: snapshot.ProviderAccountID,
			Lead:              lead,
			GraphJSON:         snapshot.GraphJSON,
			Window:            snapshot.Window,
		})
		active++

		workflow.Go(ctx, func(gctx workflow.Context) {
			var res LeadWorkflowResult
			err := future.Get(gctx, &res)
			active--
			report.Processed++
			if err == nil && res.Completed {
				report.Success++
			} else {
				report.Fail++
			}
		})

		if i < len(leads)-1 && !stopped {
			if err := workflow.Sleep(ctx, stagger); err != nil {
				return report, err
			}
		}
	}

	// Drain: every spawned child terminates before the campaign closes.
	if err := workflow.Await(ctx, func() bool { return active == 0 }); err != nil {
		return report, err
	}

	endTime := workflow.Now(ctx)
	report.EndTime = &endTime
	report.Status = "completed"

	if err := workflow.ExecuteActivity(actCtx, a.CompleteCampaign, in.CampaignID).Get(ctx, nil); err != nil {
		return report, err
	}
	event := "completed"
	if stopped {
		event = "stopped"
	}
	notify(ctx, actCtx, &snapshot, report, event, stopSig.Reason)

	logger.Info("Campaign finished",
		"campaign_id", in.CampaignID,
		"total", report.TotalLeads,
		"success", report.Success,
		"fail", report.Fail)
	return report, nil
}

// failCampaign records a terminal failure even when ctx is already dead.
func failCampaign(ctx workflow.Context, campaignID, reason string) {
	dctx, cancel := workflow.NewDisconnectedContext(ctx)
	defer cancel()
	actCtx := workflow.WithActivityOptions(dctx, defaultActivityOptions())
	var a *Activities
	if err := workflow.ExecuteActivity(actCtx, a.FailCampaign, campaignID, reason).Get(dctx, nil); err != nil {
		workflow.GetLogger(ctx).Warn("Failed to mark campaign failed", "campaign_id", campaignID, "error", err)
	}
}

// notify posts a lifecycle event to Slack, best effort.
func notify(ctx workflow.Context, actCtx workflow.Context, snapshot *CampaignSnapshot, report *CampaignStatusReport, event, reason string) {
	var a *Activities
	input := slack.CampaignEventInput{
		CampaignID:   snapshot.CampaignID,
		CampaignName: snapshot.Name,
		Event:        event,
		Reason:       reason,
		TotalLeads:   report.TotalLeads,
		Processed:    report.Processed,
		Success:      report.Success,
		Fail:         report.Fail,
	}
	if err := workflow.ExecuteActivity(actCtx, a.NotifyCampaignEvent, input).Get(ctx, nil); err != nil {
		workflow.GetLogger(ctx).Warn("Failed to send campaign notification", "event", event, "error", err)
	}
}
