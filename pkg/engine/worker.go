package engine

import (
	"fmt"
	"log/slog"

	temporalclient "go.temporal.io/sdk/client"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/reachforge/reachforge/pkg/config"
)

// NewTemporalClient dials the Temporal frontend, routing SDK logs through
// slog.
func NewTemporalClient(cfg config.TemporalConfig, logger *slog.Logger) (temporalclient.Client, error) {
	c, err := temporalclient.Dial(temporalclient.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
		Logger:    temporallog.NewStructuredLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}

// NewWorker builds a worker on the configured task queue with both workflows
// and the activity set registered.
func NewWorker(c temporalclient.Client, cfg config.TemporalConfig, activities *Activities) worker.Worker {
	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(CampaignWorkflow, workflow.RegisterOptions{Name: CampaignWorkflowName})
	w.RegisterWorkflowWithOptions(LeadWorkflow, workflow.RegisterOptions{Name: LeadWorkflowName})
	w.RegisterActivity(activities)
	return w
}
