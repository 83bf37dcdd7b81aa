// Package cleanup enforces the campaign retention policy.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/reachforge/reachforge/pkg/config"
	"github.com/reachforge/reachforge/pkg/services"
)

// Service periodically purges campaigns that were soft-deleted longer than
// MaxAge ago, together with their leads and ledger rows via cascade. The
// purge is idempotent and safe to run from multiple pods.
type Service struct {
	config    *config.RetentionConfig
	campaigns *services.CampaignService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, campaigns *services.CampaignService) *Service {
	return &Service{
		config:    cfg,
		campaigns: campaigns,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"max_age", s.config.MaxAge,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purge()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge()
		}
	}
}

func (s *Service) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.campaigns.PurgeDeleted(ctx, s.config.MaxAge)
	if err != nil {
		slog.Error("Retention: campaign purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged soft-deleted campaigns", "count", count)
	}
}
