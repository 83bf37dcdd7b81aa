package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"

	"github.com/reachforge/reachforge/pkg/slack"
)

func campaignSnapshot() *CampaignSnapshot {
	return &CampaignSnapshot{
		CampaignID:        "camp-1",
		OrganizationID:    "org-1",
		Name:              "Q3 outreach",
		AccountID:         "acct-1",
		ProviderAccountID: "prov-acct-1",
		GraphJSON:         leadTestGraph,
	}
}

func testLeads(n int) []LeadSnapshot {
	leads := make([]LeadSnapshot, 0, n)
	for i := 0; i < n; i++ {
		leads = append(leads, LeadSnapshot{
			ID:         "lead-" + string(rune('1'+i)),
			FirstName:  "Lead",
			ProfileURL: "https://www.linkedin.com/in/lead-" + string(rune('a'+i)),
		})
	}
	return leads
}

// eventRecorder collects the Slack notifications a campaign run emits.
type eventRecorder struct {
	events []slack.CampaignEventInput
}

func (r *eventRecorder) mock(env *testsuite.TestWorkflowEnvironment) {
	var a *Activities
	env.OnActivity(a.NotifyCampaignEvent, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			r.events = append(r.events, args.Get(1).(slack.CampaignEventInput))
		}).
		Return(nil)
}

func (r *eventRecorder) names() []string {
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Event)
	}
	return names
}

func mockCampaignBookkeeping(env *testsuite.TestWorkflowEnvironment, leads []LeadSnapshot) {
	var a *Activities
	env.OnActivity(a.LoadCampaign, mock.Anything, "camp-1").Return(campaignSnapshot(), nil)
	env.OnActivity(a.MarkCampaignActive, mock.Anything, "camp-1").Return(nil)
	env.OnActivity(a.ListPendingLeads, mock.Anything, "camp-1").Return(leads, nil)
	env.OnActivity(a.CompleteCampaign, mock.Anything, "camp-1").Return(nil)
}

func TestCampaignWorkflow_RunsAllLeads(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	env.RegisterWorkflow(LeadWorkflow)

	mockCampaignBookkeeping(env, testLeads(3))
	rec := &eventRecorder{}
	rec.mock(env)

	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.Anything).
		Return(func(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
			return &LeadWorkflowResult{LeadID: in.Lead.ID, Completed: true, StepsExecuted: 3}, nil
		})

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{
		CampaignID:  "camp-1",
		LeadStagger: time.Minute,
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var report CampaignStatusReport
	require.NoError(t, env.GetWorkflowResult(&report))
	require.Equal(t, "completed", report.Status)
	require.Equal(t, 3, report.TotalLeads)
	require.Equal(t, 3, report.Processed)
	require.Equal(t, 3, report.Success)
	require.Zero(t, report.Fail)
	require.NotNil(t, report.EndTime)

	require.Equal(t, []string{"started", "completed"}, rec.names())
}

func TestCampaignWorkflow_CountsFailedLeads(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	env.RegisterWorkflow(LeadWorkflow)

	mockCampaignBookkeeping(env, testLeads(2))
	rec := &eventRecorder{}
	rec.mock(env)

	// One lead finishes, one fails its walk.
	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.Anything).
		Return(func(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
			if in.Lead.ID == "lead-1" {
				return &LeadWorkflowResult{LeadID: in.Lead.ID, Completed: true}, nil
			}
			return &LeadWorkflowResult{LeadID: in.Lead.ID, FailureReason: "invalid_recipient"}, nil
		})

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{
		CampaignID:  "camp-1",
		LeadStagger: time.Second,
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var report CampaignStatusReport
	require.NoError(t, env.GetWorkflowResult(&report))
	require.Equal(t, 2, report.Processed)
	require.Equal(t, 1, report.Success)
	require.Equal(t, 1, report.Fail)

	last := rec.events[len(rec.events)-1]
	require.Equal(t, "completed", last.Event)
	require.Equal(t, 1, last.Fail)
}

func TestCampaignWorkflow_PauseHaltsSpawningUntilResume(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockCampaignBookkeeping(env, testLeads(3))
	rec := &eventRecorder{}
	rec.mock(env)
	env.OnActivity(a.PauseCampaign, mock.Anything, "camp-1", "operator request").Return(nil)
	env.OnActivity(a.ResumeCampaign, mock.Anything, "camp-1").Return(nil)

	var spawnTimes []time.Time
	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { spawnTimes = append(spawnTimes, env.Now()) }).
		Return(func(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
			return &LeadWorkflowResult{LeadID: in.Lead.ID, Completed: true}, nil
		})

	// Leads 1 and 2 start before the pause lands; lead 3 must wait for the
	// resume three hours later.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(SignalPauseCampaign, PauseSignal{Reason: "operator request"})
	}, 90*time.Second)
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(SignalResumeCampaign, ResumeSignal{})
	}, 3*time.Hour)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{
		CampaignID:  "camp-1",
		LeadStagger: time.Minute,
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var report CampaignStatusReport
	require.NoError(t, env.GetWorkflowResult(&report))
	require.Equal(t, 3, report.Processed)
	require.Equal(t, 3, report.Success)

	require.Len(t, spawnTimes, 3)
	require.True(t, spawnTimes[2].Sub(spawnTimes[0]) >= 3*time.Hour,
		"third lead should not start until the campaign is resumed")

	require.Equal(t, []string{"started", "paused", "resumed", "completed"}, rec.names())
	env.AssertCalled(t, "PauseCampaign", mock.Anything, "camp-1", "operator request")
	env.AssertCalled(t, "ResumeCampaign", mock.Anything, "camp-1")
}

func TestCampaignWorkflow_StopSkipsRemainingLeads(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	env.RegisterWorkflow(LeadWorkflow)

	mockCampaignBookkeeping(env, testLeads(3))
	rec := &eventRecorder{}
	rec.mock(env)

	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.Anything).
		Return(func(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
			return &LeadWorkflowResult{LeadID: in.Lead.ID, Completed: true}, nil
		})

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(SignalStopCampaign, StopSignal{CompleteCurrent: true, Reason: "list exhausted"})
	}, 30*time.Minute)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{
		CampaignID:  "camp-1",
		LeadStagger: time.Hour,
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var report CampaignStatusReport
	require.NoError(t, env.GetWorkflowResult(&report))
	require.Equal(t, 3, report.TotalLeads)
	require.Equal(t, 1, report.Processed, "only the lead spawned before the stop runs")

	last := rec.events[len(rec.events)-1]
	require.Equal(t, "stopped", last.Event)
	require.Equal(t, "list exhausted", last.Reason)
}

func TestCampaignWorkflow_StatusQuery(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	env.RegisterWorkflow(LeadWorkflow)

	mockCampaignBookkeeping(env, testLeads(2))
	rec := &eventRecorder{}
	rec.mock(env)

	env.OnWorkflow(LeadWorkflow, mock.Anything, mock.Anything).
		Return(func(ctx workflow.Context, in LeadWorkflowInput) (*LeadWorkflowResult, error) {
			return &LeadWorkflowResult{LeadID: in.Lead.ID, Completed: true}, nil
		})

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{
		CampaignID:  "camp-1",
		LeadStagger: time.Second,
	})
	require.True(t, env.IsWorkflowCompleted())

	val, err := env.QueryWorkflow(QueryCampaignStatus)
	require.NoError(t, err)
	var report CampaignStatusReport
	require.NoError(t, val.Get(&report))
	require.Equal(t, "completed", report.Status)
	require.Equal(t, 2, report.Success)
}

func TestCampaignWorkflow_LoadFailureFailsCampaign(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	var a *Activities

	env.OnActivity(a.LoadCampaign, mock.Anything, "camp-1").
		Return(nil, temporal.NewNonRetryableApplicationError(
			"connected account not found", ErrTypeAuthFailure, nil,
			ErrorDetail{Code: "auth_failure"}))
	env.OnActivity(a.FailCampaign, mock.Anything, "camp-1", mock.Anything).Return(nil)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{CampaignID: "camp-1"})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	env.AssertCalled(t, "FailCampaign", mock.Anything, "camp-1", mock.Anything)
}

func TestCampaignWorkflow_BadGraphFailsCampaign(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(CampaignWorkflow)
	var a *Activities

	snapshot := campaignSnapshot()
	snapshot.GraphJSON = `{"nodes": [{"id": "a", "kind": "profileVisit"}], "edges": [{"source": "a", "target": "missing"}]}`
	env.OnActivity(a.LoadCampaign, mock.Anything, "camp-1").Return(snapshot, nil)
	env.OnActivity(a.FailCampaign, mock.Anything, "camp-1", mock.Anything).Return(nil)

	env.ExecuteWorkflow(CampaignWorkflow, CampaignWorkflowInput{CampaignID: "camp-1"})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	env.AssertCalled(t, "FailCampaign", mock.Anything, "camp-1", mock.Anything)
	env.AssertNotCalled(t, "MarkCampaignActive", mock.Anything, mock.Anything)
}
