package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachforge/reachforge/pkg/models"
)

// importLeadsHandler handles POST /api/v1/campaigns/:id/leads. Rows whose
// profile URL already exists in the campaign are skipped, so the same list
// can be uploaded twice without duplicating anyone.
func (s *Server) importLeadsHandler(c *gin.Context) {
	var req models.ImportLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing campaign would otherwise surface as a foreign-key skip on
	// every row.
	if _, err := s.campaigns.GetCampaign(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := s.leads.ImportLeads(c.Request.Context(), c.Param("id"), req.Leads)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// listLeadsHandler handles GET /api/v1/campaigns/:id/leads.
func (s *Server) listLeadsHandler(c *gin.Context) {
	leads, err := s.leads.ListByCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}
