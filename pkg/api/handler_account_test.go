package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandlers(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("create and fetch", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/accounts", map[string]string{
			"account_id":          "acct-1",
			"organization_id":     "org-1",
			"provider_account_id": "prov-acct-1",
			"display_name":        "Sales seat",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = doJSON(t, router, http.MethodGet, "/api/v1/accounts/acct-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("mark connected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/accounts/acct-1/connected", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/accounts/acct-1", nil)
		assert.Contains(t, rec.Body.String(), `"status":"connected"`)
	})

	t.Run("list requires organization_id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/accounts", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/accounts?organization_id=org-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "acct-1")
	})

	t.Run("missing required fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/accounts", map[string]string{
			"organization_id": "org-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown account returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/accounts/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"database"`)
}
