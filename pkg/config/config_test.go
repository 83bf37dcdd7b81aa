package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Quota.RequestsPerDay)
	assert.Equal(t, 100, cfg.Quota.RequestsPerWeek)
	assert.Equal(t, 100, cfg.Engine.MaxConcurrentLeads)
	assert.Equal(t, 30*time.Second, cfg.Engine.LeadStagger)
	assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
	assert.Equal(t, "reachforge-outreach", cfg.Temporal.TaskQueue)
	assert.False(t, cfg.Retention.Enabled)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("REQUESTS_PER_DAY", "5")
	t.Setenv("REQUESTS_PER_WEEK", "25")
	t.Setenv("LEAD_STAGGER", "2m")
	t.Setenv("TEMPORAL_NAMESPACE", "outreach-prod")
	t.Setenv("RETENTION_ENABLED", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Quota.RequestsPerDay)
	assert.Equal(t, 25, cfg.Quota.RequestsPerWeek)
	assert.Equal(t, 2*time.Minute, cfg.Engine.LeadStagger)
	assert.Equal(t, "outreach-prod", cfg.Temporal.Namespace)
	assert.True(t, cfg.Retention.Enabled)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Run("non-numeric limit", func(t *testing.T) {
		t.Setenv("REQUESTS_PER_DAY", "lots")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		t.Setenv("REQUESTS_PER_DAY", "-1")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("LEAD_STAGGER", "soon")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("zero concurrency", func(t *testing.T) {
		t.Setenv("MAX_CONCURRENT_LEADS", "0")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})
}
