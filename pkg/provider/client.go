// Package provider wraps the outreach aggregator's REST API in a typed,
// minimal capability set. Every failure surfaces as *Error carrying the HTTP
// status and the typed code from the response body; Classify turns that into
// the verdict the engine acts on.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reachforge/reachforge/pkg/version"
)

// Client is the HTTP client for the aggregator API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger

	// pickIndex selects the post to like/comment among recent candidates.
	// Overridable in tests for determinism.
	pickIndex func(n int) int
}

// NewClient creates an aggregator API client. baseURL has no trailing slash.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "provider-client"),
		pickIndex:  rand.IntN,
	}
}

// Profile is the result of a profile visit.
type Profile struct {
	ProviderID  string `json:"provider_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	LastCompany string `json:"last_company,omitempty"`
}

// Invitation is one entry of the account's sent-invitation list.
type Invitation struct {
	ID                string `json:"id"`
	InvitedProviderID string `json:"invited_user_id"`
}

type post struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// VisitProfile resolves a public identifier to the full profile. notify
// controls whether the provider reveals the visit to the profile owner.
func (c *Client) VisitProfile(ctx context.Context, accountID, publicIdentifier string, notify bool) (*Profile, error) {
	q := url.Values{"account_id": {accountID}, "notify": {strconv.FormatBool(notify)}}
	var profile Profile
	if err := c.get(ctx, "/api/v1/users/"+url.PathEscape(publicIdentifier), q, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LikeRecentPost reacts to a random post published within the last
// lookbackDays. Returns the post id, or "" (with nil error) when the profile
// has no recent post — a no-op counts as success.
func (c *Client) LikeRecentPost(ctx context.Context, accountID, providerID string, lookbackDays int, reaction string) (string, error) {
	postID, err := c.pickRecentPost(ctx, accountID, providerID, lookbackDays)
	if err != nil || postID == "" {
		return "", err
	}

	body := map[string]any{"account_id": accountID, "reaction": reaction}
	if err := c.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/reaction", body, nil); err != nil {
		return "", err
	}
	return postID, nil
}

// CommentRecentPost comments on a random post published within the last
// lookbackDays, with the same no-op rule as LikeRecentPost.
func (c *Client) CommentRecentPost(ctx context.Context, accountID, providerID string, lookbackDays int, text string) (string, error) {
	postID, err := c.pickRecentPost(ctx, accountID, providerID, lookbackDays)
	if err != nil || postID == "" {
		return "", err
	}

	body := map[string]any{"account_id": accountID, "text": text}
	if err := c.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", body, nil); err != nil {
		return "", err
	}
	return postID, nil
}

// SendInvitation sends a connection request. message may be empty.
func (c *Client) SendInvitation(ctx context.Context, accountID, providerID, message string) error {
	body := map[string]any{"account_id": accountID, "provider_id": providerID}
	if message != "" {
		body["message"] = message
	}
	return c.post(ctx, "/api/v1/users/invite", body, nil)
}

// ListSentInvitations returns the account's pending outbound invitations.
func (c *Client) ListSentInvitations(ctx context.Context, accountID string) ([]Invitation, error) {
	q := url.Values{"account_id": {accountID}}
	var out struct {
		Items []Invitation `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/users/invite/sent", q, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CancelInvitation withdraws a pending invitation.
func (c *Client) CancelInvitation(ctx context.Context, accountID, invitationID string) error {
	q := url.Values{"account_id": {accountID}}
	return c.do(ctx, http.MethodDelete, "/api/v1/users/invite/"+url.PathEscape(invitationID), q, nil, nil)
}

// IsConnected reports whether the account is connected to the profile, via
// the relation listing filtered by identifier.
func (c *Client) IsConnected(ctx context.Context, accountID, publicIdentifier string) (bool, error) {
	q := url.Values{"account_id": {accountID}, "identifier": {publicIdentifier}}
	var out struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/users/relations", q, &out); err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

// SendMessage sends a chat message to one or more connected recipients.
func (c *Client) SendMessage(ctx context.Context, accountID string, recipientIDs []string, text string) error {
	body := map[string]any{"account_id": accountID, "attendees_ids": recipientIDs, "text": text}
	return c.post(ctx, "/api/v1/chats", body, nil)
}

// pickRecentPost lists the profile's posts and picks a random one newer than
// the lookback horizon. Returns "" when none qualifies.
func (c *Client) pickRecentPost(ctx context.Context, accountID, providerID string, lookbackDays int) (string, error) {
	q := url.Values{"account_id": {accountID}, "limit": {"20"}}
	var out struct {
		Items []post `json:"items"`
	}
	if err := c.get(ctx, "/api/v1/users/"+url.PathEscape(providerID)+"/posts", q, &out); err != nil {
		return "", err
	}

	horizon := time.Now().AddDate(0, 0, -lookbackDays)
	var recent []post
	for _, p := range out.Items {
		if p.CreatedAt.After(horizon) {
			recent = append(recent, p)
		}
	}
	if len(recent) == 0 {
		c.logger.Debug("No recent posts to act on",
			"provider_id", providerID, "lookback_days", lookbackDays)
		return "", nil
	}
	return recent[c.pickIndex(len(recent))].ID, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// do performs a request and decodes either the success payload into out or
// the error body into *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", version.Full())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError reads the aggregator error shape {type, detail, status}.
// An unparseable body still yields a typed error with the HTTP status.
func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Type   string `json:"type"`
		Detail string `json:"detail"`
		Status int    `json:"status"`
	}
	perr := &Error{HTTPStatus: resp.StatusCode}
	if err := json.Unmarshal(raw, &body); err == nil && body.Type != "" {
		perr.Code = ErrorCode(body.Type)
		perr.Detail = body.Detail
	} else {
		perr.Detail = string(raw)
	}
	return perr
}
