package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// UsageEventRetentionDays is how many days of LLM usage telemetry to keep.
	UsageEventRetentionDays int `yaml:"usage_event_retention_days"`

	// SnapshotRetentionDays is how many days of calendar snapshots to keep.
	// Snapshots only exist for delta computation; old ones are useless.
	SnapshotRetentionDays int `yaml:"snapshot_retention_days"`

	// CleanupInterval is how often the background cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		UsageEventRetentionDays: 90,
		SnapshotRetentionDays:   14,
		CleanupInterval:         12 * time.Hour,
	}
}
