package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// CampaignEventInput describes one campaign lifecycle event.
type CampaignEventInput struct {
	CampaignID   string
	CampaignName string
	// Event is one of started, paused, resumed, completed, failed, stopped.
	Event  string
	Reason string

	TotalLeads int
	Processed  int
	Success    int
	Fail       int
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyCampaignEvent sends a campaign lifecycle notification.
/// Fail-open: errors are logged, never returned. Outreach must not stall on
// a broken Slack integration.
func (s *Service) NotifyCampaignEvent(ctx context.Context, input CampaignEventInput) {
	if s == nil {
		return
	}

	blocks := BuildCampaignEventMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"campaign_id", input.CampaignID,
			"event", input.Event,
			"error", err)
	}
}
