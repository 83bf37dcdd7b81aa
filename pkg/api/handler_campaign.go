package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.temporal.io/api/serviceerror"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/reachforge/reachforge/pkg/engine"
	"github.com/reachforge/reachforge/pkg/models"
)

// campaignRunTimeout bounds a single campaign run. Delays inside a campaign
// add up to weeks, not months.
const campaignRunTimeout = 90 * 24 * time.Hour

// createCampaignHandler handles POST /api/v1/campaigns.
func (s *Server) createCampaignHandler(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Campaigns that do not set their own limits inherit the configured
	// defaults.
	if req.DailyLimit == nil && s.quota.RequestsPerDay > 0 {
		limit := s.quota.RequestsPerDay
		req.DailyLimit = &limit
	}
	if req.WeeklyLimit == nil && s.quota.RequestsPerWeek > 0 {
		limit := s.quota.RequestsPerWeek
		req.WeeklyLimit = &limit
	}

	campaign, err := s.campaigns.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// getCampaignHandler handles GET /api/v1/campaigns/:id.
func (s *Server) getCampaignHandler(c *gin.Context) {
	campaign, err := s.campaigns.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// listCampaignsHandler handles GET /api/v1/campaigns.
func (s *Server) listCampaignsHandler(c *gin.Context) {
	filters := models.CampaignFilters{
		OrganizationID: c.Query("organization_id"),
		Status:         c.Query("status"),
	}
	if err := bindPagination(c, &filters.Limit, &filters.Offset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.campaigns.ListCampaigns(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteCampaignHandler handles DELETE /api/v1/campaigns/:id (soft delete).
func (s *Server) deleteCampaignHandler(c *gin.Context) {
	if err := s.campaigns.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// campaignStatusHandler handles GET /api/v1/campaigns/:id/status. The
// persisted summary always comes back; the live workflow report is attached
// when the orchestrator is reachable.
func (s *Server) campaignStatusHandler(c *gin.Context) {
	campaignID := c.Param("id")

	summary, err := s.campaigns.StatusSummary(c.Request.Context(), campaignID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if val, err := s.workflows.QueryWorkflow(c.Request.Context(),
		campaignWorkflowID(campaignID), "", engine.QueryCampaignStatus); err == nil {
		var report engine.CampaignStatusReport
		if err := val.Get(&report); err == nil {
			summary.WorkflowStatus = report.Status
		}
	}

	c.JSON(http.StatusOK, summary)
}

// startCampaignHandler handles POST /api/v1/campaigns/:id/start. It starts
// the orchestrator workflow; the workflow itself flips the campaign to
// active. The workflow ID is derived from the campaign ID, so a double start
// is rejected by the runtime.
func (s *Server) startCampaignHandler(c *gin.Context) {
	campaignID := c.Param("id")

	campaign, err := s.campaigns.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if campaign.Status != "draft" {
		c.JSON(http.StatusConflict, gin.H{"error": "campaign has already been started"})
		return
	}

	run, err := s.workflows.ExecuteWorkflow(c.Request.Context(),
		temporalclient.StartWorkflowOptions{
			ID:                       campaignWorkflowID(campaignID),
			TaskQueue:                s.temporal.TaskQueue,
			WorkflowExecutionTimeout: campaignRunTimeout,
		},
		engine.CampaignWorkflowName,
		engine.CampaignWorkflowInput{
			CampaignID:         campaignID,
			MaxConcurrentLeads: s.engine.MaxConcurrentLeads,
			LeadStagger:        s.engine.LeadStagger,
		})
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			c.JSON(http.StatusConflict, gin.H{"error": "campaign workflow is already running"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to start campaign workflow: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"workflow_id": run.GetID(),
		"run_id":      run.GetRunID(),
	})
}

// pauseCampaignHandler handles POST /api/v1/campaigns/:id/pause.
func (s *Server) pauseCampaignHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	s.signalCampaign(c, engine.SignalPauseCampaign, engine.PauseSignal{Reason: req.Reason})
}

// resumeCampaignHandler handles POST /api/v1/campaigns/:id/resume.
func (s *Server) resumeCampaignHandler(c *gin.Context) {
	s.signalCampaign(c, engine.SignalResumeCampaign, engine.ResumeSignal{})
}

// stopCampaignHandler handles POST /api/v1/campaigns/:id/stop.
func (s *Server) stopCampaignHandler(c *gin.Context) {
	var req struct {
		CompleteCurrent bool   `json:"complete_current"`
		Reason          string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	s.signalCampaign(c, engine.SignalStopCampaign, engine.StopSignal{
		CompleteCurrent: req.CompleteCurrent,
		Reason:          req.Reason,
	})
}

func (s *Server) signalCampaign(c *gin.Context, signal string, arg interface{}) {
	campaignID := c.Param("id")

	if _, err := s.campaigns.GetCampaign(c.Request.Context(), campaignID); err != nil {
		respondServiceError(c, err)
		return
	}

	err := s.workflows.SignalWorkflow(c.Request.Context(),
		campaignWorkflowID(campaignID), "", signal, arg)
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			c.JSON(http.StatusConflict, gin.H{"error": "campaign workflow is not running"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to signal campaign workflow: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "signal sent"})
}
