package config

import (
	"fmt"

	"github.com/kbukum/slackweb/httpclient"
	"github.com/kbukum/slackweb/logger"
	"github.com/kbukum/slackweb/observability"
	"github.com/kbukum/slackweb/resilience"
	"github.com/kbukum/slackweb/validation"
)

// Config is the application configuration for programs built on the client.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	API         APIConfig     `yaml:"api" mapstructure:"api"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Tracing     TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// APIConfig configures Web API access.
type APIConfig struct {
	// Token is the bot or user token sent with every call.
	Token string `yaml:"token" mapstructure:"token"`
	// BaseURL is the API root.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,httpurl"`
	// UserAgent overrides the default User-Agent.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// Pace enables client-side pacing by rate tier.
	Pace bool `yaml:"pace" mapstructure:"pace"`
	// PaceScale multiplies the per-tier allowances when pacing.
	PaceScale float64 `yaml:"pace_scale" mapstructure:"pace_scale" validate:"gte=0"`
	// MaxConcurrent caps calls in flight. Zero is unbounded.
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent" validate:"gte=0"`
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Metrics    bool    `yaml:"metrics" mapstructure:"metrics"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "slackweb"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = httpclient.DefaultBaseURL
	}
	if c.API.PaceScale == 0 {
		c.API.PaceScale = 1
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// ClientConfig derives the httpclient configuration. log and metrics may be
// nil.
func (c *APIConfig) ClientConfig(log *logger.Logger, metrics *observability.Metrics) httpclient.Config {
	cfg := httpclient.Config{
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Logger:    log,
		Metrics:   metrics,
	}
	if c.Pace {
		rl := resilience.DefaultTierLimiterConfig("slack")
		if c.PaceScale > 0 {
			rl.Scale = c.PaceScale
		}
		cfg.RateLimiter = &rl
	}
	if c.MaxConcurrent > 0 {
		bh := resilience.DefaultBulkheadConfig("slack")
		bh.MaxConcurrent = c.MaxConcurrent
		cfg.Bulkhead = &bh
	}
	return cfg
}

// TracerConfig derives the tracer configuration.
func (c *Config) TracerConfig(version string, log *logger.Logger) *observability.TracerConfig {
	tc := observability.DefaultTracerConfig(c.Name)
	tc.ServiceVersion = version
	tc.Environment = c.Environment
	tc.Endpoint = c.Tracing.Endpoint
	tc.Insecure = c.Tracing.Insecure
	tc.SampleRate = c.Tracing.SampleRate
	tc.Logger = log
	return tc
}

// MeterConfig derives the meter configuration.
func (c *Config) MeterConfig(version string, log *logger.Logger) *observability.MeterConfig {
	mc := observability.DefaultMeterConfig(c.Name)
	mc.ServiceVersion = version
	mc.Environment = c.Environment
	mc.Endpoint = c.Tracing.Endpoint
	mc.Insecure = c.Tracing.Insecure
	mc.Logger = log
	return mc
}
