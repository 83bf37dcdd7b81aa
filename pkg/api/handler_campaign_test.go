package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/converter"

	"github.com/reachforge/reachforge/pkg/config"
	"github.com/reachforge/reachforge/pkg/engine"
	testdb "github.com/reachforge/reachforge/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// apiTestGraph is a minimal valid campaign graph for handler tests.
const apiTestGraph = `{
	"nodes": [
		{"id": "visit", "kind": "profileVisit"},
		{"id": "invite", "kind": "sendConnectionRequest", "config": {"message": "Hi {{first_name}}"}}
	],
	"edges": [
		{"source": "visit", "target": "invite", "delay": {"magnitude": 1, "unit": "h"}}
	]
}`

type signalCall struct {
	WorkflowID string
	Signal     string
	Arg        interface{}
}

type stubWorkflowRun struct{ id, runID string }

func (r stubWorkflowRun) GetID() string    { return r.id }
func (r stubWorkflowRun) GetRunID() string { return r.runID }
func (r stubWorkflowRun) Get(context.Context, interface{}) error {
	return nil
}
func (r stubWorkflowRun) GetWithOptions(context.Context, interface{}, temporalclient.WorkflowRunGetOptions) error {
	return nil
}

// stubEncodedValue round-trips the stored value through JSON, which is what
// the real data converter does.
type stubEncodedValue struct{ v interface{} }

func (s stubEncodedValue) HasValue() bool { return s.v != nil }
func (s stubEncodedValue) Get(valuePtr interface{}) error {
	data, err := json.Marshal(s.v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, valuePtr)
}

type stubWorkflowClient struct {
	started   []temporalclient.StartWorkflowOptions
	signals   []signalCall
	startErr  error
	signalErr error
	queryErr  error
	report    *engine.CampaignStatusReport
}

func (s *stubWorkflowClient) ExecuteWorkflow(_ context.Context, options temporalclient.StartWorkflowOptions, _ interface{}, _ ...interface{}) (temporalclient.WorkflowRun, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	s.started = append(s.started, options)
	return stubWorkflowRun{id: options.ID, runID: "run-1"}, nil
}

func (s *stubWorkflowClient) SignalWorkflow(_ context.Context, workflowID, _, signalName string, arg interface{}) error {
	if s.signalErr != nil {
		return s.signalErr
	}
	s.signals = append(s.signals, signalCall{WorkflowID: workflowID, Signal: signalName, Arg: arg})
	return nil
}

func (s *stubWorkflowClient) QueryWorkflow(context.Context, string, string, string, ...interface{}) (converter.EncodedValue, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return stubEncodedValue{v: s.report}, nil
}

func newTestServer(t *testing.T) (*gin.Engine, *stubWorkflowClient) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	stub := &stubWorkflowClient{queryErr: &serviceerror.NotFound{}}
	cfg := &config.Config{
		Temporal: config.TemporalConfig{TaskQueue: "test-queue"},
		Engine:   config.EngineConfig{MaxConcurrentLeads: 10, LeadStagger: time.Second},
	}
	return NewServer(dbClient, stub, cfg).Router(), stub
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createCampaignViaAPI(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
		"organization_id":      "org-1",
		"name":                 "handler test campaign",
		"connected_account_id": "acct-1",
		"graph":                json.RawMessage(apiTestGraph),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestCreateCampaignHandler(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("creates draft campaign", func(t *testing.T) {
		id := createCampaignViaAPI(t, router)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/campaigns/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"draft"`)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
			"name": "no org",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects cyclic graph", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
			"organization_id":      "org-1",
			"name":                 "cyclic",
			"connected_account_id": "acct-1",
			"graph": json.RawMessage(`{
				"nodes": [{"id": "a", "kind": "profileVisit"}, {"id": "b", "kind": "likePost"}],
				"edges": [{"source": "a", "target": "b"}, {"source": "b", "target": "a"}]
			}`),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "graph")
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/campaigns/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStartCampaignHandler(t *testing.T) {
	router, stub := newTestServer(t)
	id := createCampaignViaAPI(t, router)

	t.Run("starts the orchestrator workflow", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/start", nil)
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		require.Len(t, stub.started, 1)
		assert.Equal(t, "campaign-"+id, stub.started[0].ID)
		assert.Equal(t, "test-queue", stub.started[0].TaskQueue)
	})

	t.Run("double start is rejected by the runtime", func(t *testing.T) {
		stub.startErr = &serviceerror.WorkflowExecutionAlreadyStarted{}
		defer func() { stub.startErr = nil }()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/start", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/nope/start", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCampaignSignalHandlers(t *testing.T) {
	router, stub := newTestServer(t)
	id := createCampaignViaAPI(t, router)

	t.Run("pause forwards the reason", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/pause",
			map[string]interface{}{"reason": "lunch break"})
		require.Equal(t, http.StatusAccepted, rec.Code)

		require.Len(t, stub.signals, 1)
		assert.Equal(t, "campaign-"+id, stub.signals[0].WorkflowID)
		assert.Equal(t, engine.SignalPauseCampaign, stub.signals[0].Signal)
		assert.Equal(t, engine.PauseSignal{Reason: "lunch break"}, stub.signals[0].Arg)
	})

	t.Run("resume", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/resume", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, engine.SignalResumeCampaign, stub.signals[len(stub.signals)-1].Signal)
	})

	t.Run("stop forwards complete_current", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/stop",
			map[string]interface{}{"complete_current": true, "reason": "done"})
		require.Equal(t, http.StatusAccepted, rec.Code)

		last := stub.signals[len(stub.signals)-1]
		assert.Equal(t, engine.SignalStopCampaign, last.Signal)
		assert.Equal(t, engine.StopSignal{CompleteCurrent: true, Reason: "done"}, last.Arg)
	})

	t.Run("signal to a workflow that is not running returns 409", func(t *testing.T) {
		stub.signalErr = &serviceerror.NotFound{}
		defer func() { stub.signalErr = nil }()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/pause", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCampaignStatusHandler(t *testing.T) {
	router, stub := newTestServer(t)
	id := createCampaignViaAPI(t, router)

	t.Run("persisted summary without a running workflow", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/campaigns/"+id+"/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "workflow_status")
	})

	t.Run("live report attached when the workflow answers", func(t *testing.T) {
		stub.queryErr = nil
		stub.report = &engine.CampaignStatusReport{Status: "active", TotalLeads: 5}
		defer func() { stub.queryErr = &serviceerror.NotFound{}; stub.report = nil }()

		rec := doJSON(t, router, http.MethodGet, "/api/v1/campaigns/"+id+"/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"workflow_status":"active"`)
	})
}

func TestDeleteCampaignHandler(t *testing.T) {
	router, _ := newTestServer(t)
	id := createCampaignViaAPI(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/campaigns/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/campaigns/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
