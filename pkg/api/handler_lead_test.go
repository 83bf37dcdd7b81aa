package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportLeadsHandler(t *testing.T) {
	router, _ := newTestServer(t)
	id := createCampaignViaAPI(t, router)

	payload := map[string]interface{}{
		"leads": []map[string]string{
			{"first_name": "Ada", "profile_url": "https://www.linkedin.com/in/ada"},
			{"first_name": "Grace", "profile_url": "https://www.linkedin.com/in/grace"},
		},
	}

	t.Run("imports leads", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/leads", payload)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"imported":2`)
	})

	t.Run("re-import counts duplicates as skipped", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/leads", payload)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imported":0`)
		assert.Contains(t, rec.Body.String(), `"skipped":2`)
	})

	t.Run("lists imported leads", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/campaigns/"+id+"/leads", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ada")
		assert.Contains(t, rec.Body.String(), "Grace")
	})

	t.Run("rejects rows without a profile URL", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/"+id+"/leads", map[string]interface{}{
			"leads": []map[string]string{{"first_name": "NoURL"}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/campaigns/nope/leads", payload)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
