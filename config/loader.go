package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "SLACK"

// envBindings maps configuration keys to environment variables.
var envBindings = map[string]string{
	"name":                "SLACK_APP_NAME",
	"environment":         "SLACK_ENVIRONMENT",
	"api.token":           "SLACK_TOKEN",
	"api.base_url":        "SLACK_BASE_URL",
	"api.user_agent":      "SLACK_USER_AGENT",
	"api.pace":            "SLACK_PACE",
	"api.pace_scale":      "SLACK_PACE_SCALE",
	"api.max_concurrent":  "SLACK_MAX_CONCURRENT",
	"logging.level":       "SLACK_LOG_LEVEL",
	"logging.format":      "SLACK_LOG_FORMAT",
	"logging.output":      "SLACK_LOG_OUTPUT",
	"logging.no_color":    "SLACK_LOG_NO_COLOR",
	"tracing.enabled":     "SLACK_TRACING_ENABLED",
	"tracing.metrics":     "SLACK_TRACING_METRICS",
	"tracing.endpoint":    "SLACK_TRACING_ENDPOINT",
	"tracing.insecure":    "SLACK_TRACING_INSECURE",
	"tracing.sample_rate": "SLACK_TRACING_SAMPLE_RATE",
}

// FileSystem abstracts the file lookups the loader makes.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads path into the process environment without overriding
// variables that are already set.
func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	Overrides  map[string]any
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithOverride sets key to value above every other source. Keys use the
// dotted form, e.g. "api.base_url".
func WithOverride(key string, value any) LoaderOption {
	return func(lc *LoaderConfig) {
		if lc.Overrides == nil {
			lc.Overrides = make(map[string]any)
		}
		lc.Overrides[key] = value
	}
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// Resolve returns the explicit paths when given and otherwise the first
// existing candidate in the standard locations.
func Resolve(fs FileSystem, lc LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{ConfigFile: lc.ConfigFile, EnvFile: lc.EnvFile}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = firstExisting(fs, configCandidates())
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = firstExisting(fs, []string{".env.slack", ".env"})
	}
	return resolved
}

func configCandidates() []string {
	paths := []string{"./slackweb.yml", "./config/slackweb.yml", "./config.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "slackweb", "config.yml"))
	}
	return paths
}

func firstExisting(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}

// Load reads configuration from, in increasing precedence, built-in
// defaults, a YAML file, a .env file and SLACK_* environment variables.
// The result has defaults applied and is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	files := Resolve(lc.FileSystem, lc)
	v := viper.New()

	defaults := Config{}
	defaults.ApplyDefaults()
	setDefaults(v, &defaults)

	if files.ConfigFile != "" {
		if !lc.FileSystem.Exists(files.ConfigFile) {
			return nil, fmt.Errorf("config file %s not found", files.ConfigFile)
		}
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", files.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	for key, value := range lc.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so that environment-only values survive
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("name", d.Name)
	v.SetDefault("environment", d.Environment)
	v.SetDefault("api.token", "")
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.user_agent", "")
	v.SetDefault("api.pace", false)
	v.SetDefault("api.pace_scale", d.API.PaceScale)
	v.SetDefault("api.max_concurrent", 0)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", d.Logging.Timestamp)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.metrics", false)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.insecure", true)
	v.SetDefault("tracing.sample_rate", 1.0)
}
