// Package api is the HTTP control plane: campaign CRUD and lifecycle,
// lead imports, the step ledger, and connected accounts. The engine does the
// actual outreach; this layer only persists state and talks to the workflow
// runtime.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/converter"

	"github.com/reachforge/reachforge/pkg/config"
	"github.com/reachforge/reachforge/pkg/database"
	"github.com/reachforge/reachforge/pkg/services"
)

// WorkflowClient is the slice of the Temporal client the API needs. It exists
// so handler tests can stub the runtime.
type WorkflowClient interface {
	ExecuteWorkflow(ctx context.Context, options temporalclient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (temporalclient.WorkflowRun, error)
	SignalWorkflow(ctx context.Context, workflowID, runID, signalName string, arg interface{}) error
	QueryWorkflow(ctx context.Context, workflowID, runID, queryType string, args ...interface{}) (converter.EncodedValue, error)
}

// Server wires the HTTP handlers to the service layer and the workflow
// runtime.
type Server struct {
	dbClient  *database.Client
	campaigns *services.CampaignService
	leads     *services.LeadService
	steps     *services.StepService
	accounts  *services.AccountService
	workflows WorkflowClient
	temporal  config.TemporalConfig
	engine    config.EngineConfig
	quota     config.QuotaConfig
}

// NewServer creates the API server over an already-connected database client
// and workflow runtime.
func NewServer(dbClient *database.Client, workflows WorkflowClient, cfg *config.Config) *Server {
	return &Server{
		dbClient:  dbClient,
		campaigns: services.NewCampaignService(dbClient.Client),
		leads:     services.NewLeadService(dbClient.Client),
		steps:     services.NewStepService(dbClient.Client),
		accounts:  services.NewAccountService(dbClient.Client),
		workflows: workflows,
		temporal:  cfg.Temporal,
		engine:    cfg.Engine,
		quota:     cfg.Quota,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/campaigns", s.createCampaignHandler)
		v1.GET("/campaigns", s.listCampaignsHandler)
		v1.GET("/campaigns/:id", s.getCampaignHandler)
		v1.DELETE("/campaigns/:id", s.deleteCampaignHandler)
		v1.GET("/campaigns/:id/status", s.campaignStatusHandler)

		v1.POST("/campaigns/:id/start", s.startCampaignHandler)
		v1.POST("/campaigns/:id/pause", s.pauseCampaignHandler)
		v1.POST("/campaigns/:id/resume", s.resumeCampaignHandler)
		v1.POST("/campaigns/:id/stop", s.stopCampaignHandler)

		v1.POST("/campaigns/:id/leads", s.importLeadsHandler)
		v1.GET("/campaigns/:id/leads", s.listLeadsHandler)
		v1.GET("/campaigns/:id/steps", s.listCampaignStepsHandler)
		v1.GET("/leads/:id/steps", s.listLeadStepsHandler)

		v1.POST("/accounts", s.createAccountHandler)
		v1.GET("/accounts", s.listAccountsHandler)
		v1.GET("/accounts/:id", s.getAccountHandler)
		v1.POST("/accounts/:id/connected", s.markAccountConnectedHandler)
	}

	return r
}

// campaignWorkflowID is the stable workflow ID for a campaign run: starting
// the same campaign twice is rejected by the runtime, not by us.
func campaignWorkflowID(campaignID string) string {
	return "campaign-" + campaignID
}
