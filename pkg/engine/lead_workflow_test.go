package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/reachforge/reachforge/pkg/gates"
	"github.com/reachforge/reachforge/pkg/models"
)

// leadTestGraph: visit, then a conditional connection request. Acceptance
// leads to a followup message, rejection to a withdrawal two days later.
const leadTestGraph = `{
	"nodes": [
		{"id": "visit", "kind": "profileVisit"},
		{"id": "invite", "kind": "sendConnectionRequest", "config": {"message": "Hi {{first_name}}"}},
		{"id": "followup", "kind": "sendFollowup", "config": {"message": "Thanks for connecting!"}},
		{"id": "withdraw", "kind": "withdrawRequest"}
	],
	"edges": [
		{"source": "visit", "target": "invite", "delay": {"magnitude": 1, "unit": "h"}},
		{"source": "invite", "target": "followup", "condition": {"branch": "positive"}},
		{"source": "invite", "target": "withdraw", "condition": {"branch": "negative"}, "delay": {"magnitude": 2, "unit": "d"}}
	]
}`

func leadInput() LeadWorkflowInput {
	return LeadWorkflowInput{
		CampaignID:        "camp-1",
		AccountID:         "acct-1",
		ProviderAccountID: "prov-acct-1",
		Lead: LeadSnapshot{
			ID:         "lead-1",
			FirstName:  "Ada",
			ProfileURL: "https://www.linkedin.com/in/ada-example",
		},
		GraphJSON: leadTestGraph,
	}
}

// stepRecorder collects the ledger writes a workflow makes, in order.
type stepRecorder struct {
	steps []models.RecordStepRequest
}

func (r *stepRecorder) mock(env *testsuite.TestWorkflowEnvironment) {
	var a *Activities
	env.OnActivity(a.RecordStep, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			r.steps = append(r.steps, args.Get(1).(models.RecordStepRequest))
		}).
		Return(nil)
}

func mockLeadBookkeeping(env *testsuite.TestWorkflowEnvironment) {
	var a *Activities
	env.OnActivity(a.MarkLeadProcessing, mock.Anything, "lead-1").Return(nil)
	env.OnActivity(a.CheckAccount, mock.Anything, "acct-1").Return(nil)
}

func openQuota(env *testsuite.TestWorkflowEnvironment) {
	var a *Activities
	env.OnActivity(a.QuotaCheck, mock.Anything, "camp-1").
		Return(gates.Decision{CanProceed: true}, nil)
}

func TestLeadWorkflow_HappyPath(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	openQuota(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(&NodeResult{Success: true, ProviderID: "prov-123"}, nil)

	env.OnActivity(a.SendInvite, mock.Anything, mock.Anything).
		Return(&InviteResult{Status: InviteSent, ProviderID: "prov-123"}, nil)
	env.OnActivity(a.QuotaIncrement, mock.Anything, "camp-1").Return(nil)
	env.OnActivity(a.CheckConnected, mock.Anything, "prov-acct-1", mock.Anything).
		Return(true, nil)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "followup"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.MarkLeadCompleted, mock.Anything, "lead-1").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.True(t, result.Completed)
	require.Equal(t, 3, result.StepsExecuted)

	// Ledger rows land in walk order with contiguous step indexes, and the
	// invite row carries the sub-machine outcome.
	require.Len(t, rec.steps, 3)
	require.Equal(t, []string{"visit", "invite", "followup"},
		[]string{rec.steps[0].NodeID, rec.steps[1].NodeID, rec.steps[2].NodeID})
	for i, s := range rec.steps {
		require.Equal(t, i, s.StepIndex)
		require.True(t, s.Success)
	}
	require.Equal(t, ConnAccepted, rec.steps[1].Result["status"])

	env.AssertNotCalled(t, "ExecuteNode", mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "withdraw"
	}))
}

func TestLeadWorkflow_InviteRejectedTakesNegativeBranch(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	openQuota(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.SendInvite, mock.Anything, mock.Anything).
		Return(&InviteResult{Status: InviteSent, ProviderID: "prov-123"}, nil)
	env.OnActivity(a.QuotaIncrement, mock.Anything, "camp-1").Return(nil)
	env.OnActivity(a.CheckConnected, mock.Anything, "prov-acct-1", mock.Anything).
		Return(false, nil)
	// Invitation gone from the sent list without a connection: rejected.
	env.OnActivity(a.HasPendingInvite, mock.Anything, "prov-acct-1", "prov-123").
		Return(false, nil)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "withdraw"
	})).Return(&NodeResult{Success: true, Result: map[string]interface{}{"status": "nothing_to_withdraw"}}, nil)

	env.OnActivity(a.MarkLeadCompleted, mock.Anything, "lead-1").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.True(t, result.Completed)

	require.Len(t, rec.steps, 3)
	require.Equal(t, "invite", rec.steps[1].NodeID)
	require.False(t, rec.steps[1].Success)
	require.Equal(t, ConnRejected, rec.steps[1].Result["status"])
	require.Equal(t, "withdraw", rec.steps[2].NodeID)

	env.AssertNotCalled(t, "ExecuteNode", mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "followup"
	}))
}

func TestLeadWorkflow_PollTimeout(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	openQuota(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.SendInvite, mock.Anything, mock.Anything).
		Return(&InviteResult{Status: InviteSent, ProviderID: "prov-123"}, nil)
	env.OnActivity(a.QuotaIncrement, mock.Anything, "camp-1").Return(nil)
	// Never accepted, never withdrawn by the peer: the poll budget (the
	// two-day negative edge delay) runs out.
	env.OnActivity(a.CheckConnected, mock.Anything, "prov-acct-1", mock.Anything).
		Return(false, nil)
	env.OnActivity(a.HasPendingInvite, mock.Anything, "prov-acct-1", "prov-123").
		Return(true, nil)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "withdraw"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.MarkLeadCompleted, mock.Anything, "lead-1").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	require.Len(t, rec.steps, 3)
	require.False(t, rec.steps[1].Success)
	require.Equal(t, ConnTimedOut, rec.steps[1].Result["status"])
	require.Equal(t, "withdraw", rec.steps[2].NodeID)
}

func TestLeadWorkflow_AlreadyConnectedSkipsInvite(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	openQuota(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.SendInvite, mock.Anything, mock.Anything).
		Return(&InviteResult{Status: InviteAlreadyConnected, ProviderID: "prov-123"}, nil)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "followup"
	})).Return(&NodeResult{Success: true}, nil)

	env.OnActivity(a.MarkLeadCompleted, mock.Anything, "lead-1").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	// No quota consumed, no polling, straight onto the positive branch.
	env.AssertNotCalled(t, "QuotaIncrement", mock.Anything, mock.Anything)
	env.AssertNotCalled(t, "CheckConnected", mock.Anything, mock.Anything, mock.Anything)
	require.Equal(t, ConnAlreadyConnected, rec.steps[1].Result["status"])
	require.Equal(t, "followup", rec.steps[2].NodeID)
}

func TestLeadWorkflow_PermanentErrorFailsLead(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(nil, temporal.NewNonRetryableApplicationError(
		"invitation rejected by provider", ErrTypePermanent, nil,
		ErrorDetail{Code: "invalid_recipient", Detail: "recipient cannot be reached"}))

	env.OnActivity(a.MarkLeadFailed, mock.Anything, "lead-1", "invalid_recipient").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.False(t, result.Completed)
	require.Equal(t, "invalid_recipient", result.FailureReason)

	// The failed attempt still gets its ledger row, and the walk stops dead.
	require.Len(t, rec.steps, 1)
	require.False(t, rec.steps[0].Success)
	require.Equal(t, "invalid_recipient", rec.steps[0].Result["error_code"])
	env.AssertNotCalled(t, "SendInvite", mock.Anything, mock.Anything)
	env.AssertNotCalled(t, "MarkLeadCompleted", mock.Anything, mock.Anything)
}

func TestLeadWorkflow_AuthFailureFailsLead(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	env.OnActivity(a.MarkLeadProcessing, mock.Anything, "lead-1").Return(nil)
	env.OnActivity(a.CheckAccount, mock.Anything, "acct-1").
		Return(temporal.NewNonRetryableApplicationError(
			"account disconnected", ErrTypeAuthFailure, nil,
			ErrorDetail{Code: "auth_failure", Detail: "account disconnected"}))
	rec := &stepRecorder{}
	rec.mock(env)
	env.OnActivity(a.MarkLeadFailed, mock.Anything, "lead-1", "auth_failure").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.False(t, result.Completed)
	require.Equal(t, "auth_failure", result.FailureReason)
	env.AssertNotCalled(t, "ExecuteNode", mock.Anything, mock.Anything)
}

func TestLeadWorkflow_QuotaGateDelaysInvite(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	mockLeadBookkeeping(env)
	rec := &stepRecorder{}
	rec.mock(env)

	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "visit"
	})).Return(&NodeResult{Success: true}, nil)

	// Exhausted on the first check; open after the simulated reset instant.
	start := env.Now()
	quotaCalls := 0
	env.OnActivity(a.QuotaCheck, mock.Anything, "camp-1").
		Run(func(mock.Arguments) { quotaCalls++ }).
		Return(gates.Decision{CanProceed: false, WaitUntil: start.Add(8 * time.Hour)}, nil).
		Once()
	env.OnActivity(a.QuotaCheck, mock.Anything, "camp-1").
		Run(func(mock.Arguments) { quotaCalls++ }).
		Return(gates.Decision{CanProceed: true}, nil)

	env.OnActivity(a.SendInvite, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			// The send happens only after the gate's WaitUntil has passed.
			require.False(t, env.Now().Before(start.Add(8*time.Hour)))
		}).
		Return(&InviteResult{Status: InviteSent, ProviderID: "prov-123"}, nil)
	env.OnActivity(a.QuotaIncrement, mock.Anything, "camp-1").Return(nil)
	env.OnActivity(a.CheckConnected, mock.Anything, "prov-acct-1", mock.Anything).
		Return(true, nil)
	env.OnActivity(a.ExecuteNode, mock.Anything, mock.MatchedBy(func(in NodeInput) bool {
		return in.NodeID == "followup"
	})).Return(&NodeResult{Success: true}, nil)
	env.OnActivity(a.MarkLeadCompleted, mock.Anything, "lead-1").Return(nil)

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	require.GreaterOrEqual(t, quotaCalls, 2)

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.True(t, result.Completed)
}

func TestLeadWorkflow_InvalidGraphSnapshot(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	env.OnActivity(a.MarkLeadFailed, mock.Anything, "lead-1", mock.Anything).Return(nil)

	in := leadInput()
	in.GraphJSON = `{"nodes": [], "edges": [{"source": "a", "target": "b"}]}`
	env.ExecuteWorkflow(LeadWorkflow, in)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result LeadWorkflowResult
	require.NoError(t, env.GetWorkflowResult(&result))
	require.False(t, result.Completed)
	require.Equal(t, "invalid graph snapshot", result.FailureReason)
}

func TestLeadWorkflow_InfrastructureErrorPropagates(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterWorkflow(LeadWorkflow)
	var a *Activities

	env.OnActivity(a.MarkLeadProcessing, mock.Anything, "lead-1").
		Return(errors.New("database unreachable"))

	env.ExecuteWorkflow(LeadWorkflow, leadInput())

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
}
