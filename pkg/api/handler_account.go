package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reachforge/reachforge/pkg/models"
)

// createAccountHandler handles POST /api/v1/accounts.
func (s *Server) createAccountHandler(c *gin.Context) {
	var req models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := s.accounts.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// getAccountHandler handles GET /api/v1/accounts/:id.
func (s *Server) getAccountHandler(c *gin.Context) {
	account, err := s.accounts.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// listAccountsHandler handles GET /api/v1/accounts?organization_id=...
func (s *Server) listAccountsHandler(c *gin.Context) {
	orgID := c.Query("organization_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}

	accounts, err := s.accounts.ListAccounts(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// markAccountConnectedHandler handles POST /api/v1/accounts/:id/connected,
// called after the provider finishes the account's auth handshake.
func (s *Server) markAccountConnectedHandler(c *gin.Context) {
	if err := s.accounts.MarkConnected(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}
