package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "test-token")
	c.pickIndex = func(int) int { return 0 }
	return c
}

func TestClient_VisitProfile(t *testing.T) {
	var gotPath, gotAuth, gotNotify string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotNotify = r.URL.Query().Get("notify")
		_ = json.NewEncoder(w).Encode(Profile{
			ProviderID:  "urn:li:abc123",
			FirstName:   "Jane",
			LastName:    "Doe",
			LastCompany: "Acme",
		})
	}))

	profile, err := c.VisitProfile(context.Background(), "acct-1", "jane-doe-1", false)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/users/jane-doe-1", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "false", gotNotify)
	assert.Equal(t, "urn:li:abc123", profile.ProviderID)
	assert.Equal(t, "Jane", profile.FirstName)
}

func TestClient_ErrorDecoding(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"type": "InvalidRecipient", "detail": "profile not found", "status": 422}`)
	}))

	_, err := c.VisitProfile(context.Background(), "acct-1", "ghost", false)
	require.Error(t, err)

	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, 422, perr.HTTPStatus)
	assert.Equal(t, CodeInvalidRecipient, perr.Code)
	assert.Equal(t, "profile not found", perr.Detail)
	assert.Equal(t, VerdictPermanent, Classify(err))
}

func TestClient_ErrorDecoding_UnparseableBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	}))

	_, err := c.VisitProfile(context.Background(), "acct-1", "jane", false)
	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, 502, perr.HTTPStatus)
	assert.Empty(t, perr.Code)
	assert.Equal(t, "upstream exploded", perr.Detail)
	assert.Equal(t, VerdictTransient, Classify(err))
}

func postsResponse(ages ...time.Duration) map[string]any {
	items := make([]map[string]any, len(ages))
	for i, age := range ages {
		items[i] = map[string]any{
			"id":         fmt.Sprintf("post-%d", i),
			"created_at": time.Now().Add(-age).Format(time.RFC3339),
		}
	}
	return map[string]any{"items": items}
}

func TestClient_LikeRecentPost(t *testing.T) {
	t.Run("likes a post within the lookback window", func(t *testing.T) {
		var likedPost string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet:
				// post-0 is 2 days old, post-1 is 30 days old
				_ = json.NewEncoder(w).Encode(postsResponse(48*time.Hour, 30*24*time.Hour))
			case r.Method == http.MethodPost:
				likedPost = r.URL.Path
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				assert.Equal(t, "like", body["reaction"])
				w.WriteHeader(http.StatusCreated)
			}
		}))

		postID, err := c.LikeRecentPost(context.Background(), "acct-1", "urn:li:abc", 7, "like")
		require.NoError(t, err)
		assert.Equal(t, "post-0", postID)
		assert.Equal(t, "/api/v1/posts/post-0/reaction", likedPost)
	})

	t.Run("no recent post is a successful no-op", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method, "must not attempt a reaction")
			_ = json.NewEncoder(w).Encode(postsResponse(30 * 24 * time.Hour))
		}))

		postID, err := c.LikeRecentPost(context.Background(), "acct-1", "urn:li:abc", 7, "like")
		require.NoError(t, err)
		assert.Empty(t, postID)
	})
}

func TestClient_CommentRecentPost(t *testing.T) {
	var gotText string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(postsResponse(time.Hour))
		case http.MethodPost:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			gotText, _ = body["text"].(string)
			w.WriteHeader(http.StatusCreated)
		}
	}))

	postID, err := c.CommentRecentPost(context.Background(), "acct-1", "urn:li:abc", 7, "Great take, Jane!")
	require.NoError(t, err)
	assert.Equal(t, "post-0", postID)
	assert.Equal(t, "Great take, Jane!", gotText)
}

func TestClient_Invitations(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/users/invite":
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "urn:li:abc", body["provider_id"])
			assert.NotContains(t, body, "message")
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/users/invite/sent":
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []Invitation{
				{ID: "inv-1", InvitedProviderID: "urn:li:abc"},
			}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/users/invite/inv-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()
	require.NoError(t, c.SendInvitation(ctx, "acct-1", "urn:li:abc", ""))

	invites, err := c.ListSentInvitations(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "inv-1", invites[0].ID)

	require.NoError(t, c.CancelInvitation(ctx, "acct-1", "inv-1"))
}

func TestClient_IsConnected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("identifier") == "jane-doe-1" {
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{{"id": "rel-1"}}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
	}))

	connected, err := c.IsConnected(context.Background(), "acct-1", "jane-doe-1")
	require.NoError(t, err)
	assert.True(t, connected)

	connected, err = c.IsConnected(context.Background(), "acct-1", "john-roe")
	require.NoError(t, err)
	assert.False(t, connected)
}
