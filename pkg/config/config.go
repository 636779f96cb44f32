// Package config loads and validates mission control configuration from a
// YAML file plus environment variables. Environment always wins over YAML so
// deployments can override individual settings without editing the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the umbrella configuration object returned by Load and threaded
// through the application.
type Config struct {
	Workday   *WorkdayConfig   `yaml:"workday"`
	Auth      *AuthConfig      `yaml:"auth"`
	Retention *RetentionConfig `yaml:"retention"`
	LLM       *LLMConfig       `yaml:"llm"`
	Planner   *PlannerConfig   `yaml:"planner"`
}

// PlannerConfig holds ranking knobs that are deployment-tunable.
type PlannerConfig struct {
	// HighPriorityStakeholders are matched case-insensitively against task
	// stakeholder mentions for the +10 stakeholder boost.
	HighPriorityStakeholders []string `yaml:"high_priority_stakeholders"`

	// NextWindowMinutes is the size of the "now/next" execution window.
	NextWindowMinutes int `yaml:"next_window_minutes"`
}

// Load reads the optional YAML config file at path, applies defaults, applies
// environment overrides, and validates the result. A missing file is not an
// error; defaults plus environment are enough to run.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults + env.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Workday:   DefaultWorkdayConfig(),
		Auth:      &AuthConfig{SessionCookieName: "mc_session"},
		Retention: DefaultRetentionConfig(),
		LLM:       DefaultLLMConfig(),
		Planner: &PlannerConfig{
			HighPriorityStakeholders: []string{"nancy", "heath"},
			NextWindowMinutes:        60,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MC_API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
	if v := os.Getenv("MC_API_OWNER_ID"); v != "" {
		c.Auth.APIOwnerID = v
	}
	if v := os.Getenv("MC_WORKDAY_TZ"); v != "" {
		c.Workday.Timezone = v
	}
	if v := os.Getenv("MC_FOCUS_START"); v != "" {
		c.Workday.FocusStart = v
	}
	if v := os.Getenv("MC_FOCUS_END"); v != "" {
		c.Workday.FocusEnd = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.LLM.AnthropicAPIKey = v
	}
}

func (c *Config) validate() error {
	if _, err := c.Workday.Location(); err != nil {
		return fmt.Errorf("invalid workday timezone %q: %w", c.Workday.Timezone, err)
	}
	if _, _, err := c.Workday.focusWindow(); err != nil {
		return err
	}
	if c.Planner.NextWindowMinutes <= 0 {
		return fmt.Errorf("planner.next_window_minutes must be positive, got %d", c.Planner.NextWindowMinutes)
	}
	if c.Retention.CleanupInterval <= 0 {
		c.Retention.CleanupInterval = 12 * time.Hour
	}
	return nil
}

// AuthConfig holds API admission settings. Session-cookie admission needs no
// configuration beyond the cookie name; API-key admission requires both the
// shared secret and the owner id it maps to.
type AuthConfig struct {
	// APIKey is the shared secret for header/bearer/query admission.
	// Empty disables API-key admission entirely.
	APIKey string `yaml:"-"`

	// APIOwnerID is the owner all API-key requests act as.
	APIOwnerID string `yaml:"api_owner_id"`

	// SessionCookieName is the cookie carrying the session token.
	SessionCookieName string `yaml:"session_cookie_name"`
}

// APIKeyConfigured reports whether API-key admission can be used.
func (a *AuthConfig) APIKeyConfigured() bool {
	return a.APIKey != "" && a.APIOwnerID != ""
}
