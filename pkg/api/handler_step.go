package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listLeadStepsHandler handles GET /api/v1/leads/:id/steps: the lead's
// ledger in execution order.
func (s *Server) listLeadStepsHandler(c *gin.Context) {
	steps, err := s.steps.ListForLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// listCampaignStepsHandler handles GET /api/v1/campaigns/:id/steps: the
// campaign's recent activity, newest first.
func (s *Server) listCampaignStepsHandler(c *gin.Context) {
	var limit, offset int
	if err := bindPagination(c, &limit, &offset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := s.steps.ListForCampaign(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, steps)
}
