// Package config loads the engine configuration from the environment.
// cmd loads the .env file first (godotenv); everything here reads plain
// environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process-wide configuration.
type Config struct {
	Provider ProviderConfig
	Temporal TemporalConfig
	Engine   EngineConfig
	Quota    QuotaConfig

	// OpenAIAPIKey enables the AI comment generator when set.
	OpenAIAPIKey string
	// OpenAIModel overrides the default chat model.
	OpenAIModel string

	Slack     SlackConfig
	Retention RetentionConfig
}

// ProviderConfig points at the outreach aggregator API.
type ProviderConfig struct {
	BaseURL string
	Token   string
}

// TemporalConfig locates the durable-execution runtime.
type TemporalConfig struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

// EngineConfig contains workflow tuning knobs.
type EngineConfig struct {
	// MaxConcurrentLeads bounds active lead workflows per campaign.
	MaxConcurrentLeads int
	// LeadStagger is the delay between child workflow starts.
	LeadStagger time.Duration
}

// QuotaConfig carries the default connection-request limits applied to new
// campaigns that do not set their own.
type QuotaConfig struct {
	RequestsPerDay  int
	RequestsPerWeek int
}

// SlackConfig enables operator notifications when both token and channel
// are set.
type SlackConfig struct {
	BotToken     string
	ChannelID    string
	DashboardURL string
}

// RetentionConfig controls the soft-deleted campaign purge.
type RetentionConfig struct {
	Enabled  bool
	MaxAge   time.Duration
	Interval time.Duration
}

// LoadFromEnv reads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	requestsPerDay, err := intEnv("REQUESTS_PER_DAY", 20)
	if err != nil {
		return nil, err
	}
	requestsPerWeek, err := intEnv("REQUESTS_PER_WEEK", 100)
	if err != nil {
		return nil, err
	}
	maxLeads, err := intEnv("MAX_CONCURRENT_LEADS", 100)
	if err != nil {
		return nil, err
	}
	stagger, err := durationEnv("LEAD_STAGGER", 30*time.Second)
	if err != nil {
		return nil, err
	}
	retentionMaxAge, err := durationEnv("RETENTION_MAX_AGE", 90*24*time.Hour)
	if err != nil {
		return nil, err
	}
	retentionInterval, err := durationEnv("RETENTION_INTERVAL", 6*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider: ProviderConfig{
			BaseURL: getEnvOrDefault("PROVIDER_BASE_URL", "http://localhost:9100"),
			Token:   os.Getenv("PROVIDER_TOKEN"),
		},
		Temporal: TemporalConfig{
			HostPort:  getEnvOrDefault("TEMPORAL_HOST_PORT", "localhost:7233"),
			Namespace: getEnvOrDefault("TEMPORAL_NAMESPACE", "default"),
			TaskQueue: getEnvOrDefault("TEMPORAL_TASK_QUEUE", "reachforge-outreach"),
		},
		Engine: EngineConfig{
			MaxConcurrentLeads: maxLeads,
			LeadStagger:        stagger,
		},
		Quota: QuotaConfig{
			RequestsPerDay:  requestsPerDay,
			RequestsPerWeek: requestsPerWeek,
		},
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
		Slack: SlackConfig{
			BotToken:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:    os.Getenv("SLACK_CHANNEL_ID"),
			DashboardURL: os.Getenv("DASHBOARD_URL"),
		},
		Retention: RetentionConfig{
			Enabled:  os.Getenv("RETENTION_ENABLED") == "true",
			MaxAge:   retentionMaxAge,
			Interval: retentionInterval,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Quota.RequestsPerDay < 0 {
		return fmt.Errorf("REQUESTS_PER_DAY must not be negative")
	}
	if c.Quota.RequestsPerWeek < 0 {
		return fmt.Errorf("REQUESTS_PER_WEEK must not be negative")
	}
	if c.Engine.MaxConcurrentLeads < 1 {
		return fmt.Errorf("MAX_CONCURRENT_LEADS must be at least 1")
	}
	if c.Engine.LeadStagger < 0 {
		return fmt.Errorf("LEAD_STAGGER must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
