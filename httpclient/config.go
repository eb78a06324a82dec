package httpclient

import (
	"net/http"

	"github.com/kbukum/slackweb/logger"
	"github.com/kbukum/slackweb/observability"
	"github.com/kbukum/slackweb/resilience"
	"github.com/kbukum/slackweb/validation"
	"github.com/kbukum/slackweb/version"
)

// DefaultBaseURL is the production Web API root.
const DefaultBaseURL = "https://slack.com/api/"

// Config configures the Web API client.
type Config struct {
	// BaseURL is the API root every endpoint path is appended to.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,httpurl"`

	// UserAgent is sent on every request. Defaults to version.UserAgent().
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// RateLimiter paces calls per Slack rate tier. Nil disables pacing.
	RateLimiter *resilience.TierLimiterConfig `yaml:"rate_limiter" mapstructure:"rate_limiter"`

	// Bulkhead caps the number of calls in flight. Nil means unbounded.
	Bulkhead *resilience.BulkheadConfig `yaml:"-" mapstructure:"-" validate:"-"`

	// Logger receives per-call debug records. Defaults to a no-op logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-" validate:"-"`

	// Metrics records per-call instruments when set.
	Metrics *observability.Metrics `yaml:"-" mapstructure:"-" validate:"-"`

	// HTTPClient overrides the underlying client, mostly for tests.
	HTTPClient *http.Client `yaml:"-" mapstructure:"-" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
