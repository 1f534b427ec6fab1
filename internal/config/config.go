// Package config loads application settings from config file, flags and
// environment through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "RESUME_INSIGHT"

// Config holds application configuration
type Config struct {
	GoogleCloudProject  string `mapstructure:"google-cloud-project"`
	GoogleCloudLocation string `mapstructure:"google-cloud-location"`
	UploadsDir          string `mapstructure:"uploads-dir"`
	ListenAddr          string `mapstructure:"listen-addr"`
	AIEnabled           bool   `mapstructure:"ai-enabled"`
	EnrichmentTimeout   int    `mapstructure:"enrichment-timeout-seconds"`
	JSONLogs            bool   `mapstructure:"json"`
	Debug               bool   `mapstructure:"debug"`
}

// SetDefaults registers every knob's default on the given viper
// instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("google-cloud-location", "us-central1")
	v.SetDefault("uploads-dir", "uploads")
	v.SetDefault("listen-addr", ":8080")
	v.SetDefault("ai-enabled", false)
	v.SetDefault("enrichment-timeout-seconds", 30)
	v.SetDefault("json", false)
	v.SetDefault("debug", false)
}

// Load resolves the configuration from the viper instance, layering
// environment variables (RESUME_INSIGHT_*) over file and flag values.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings needed to serve requests.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen-addr is required")
	}
	if c.UploadsDir == "" {
		return fmt.Errorf("uploads-dir is required")
	}
	if c.AIEnabled && c.GoogleCloudProject == "" {
		return fmt.Errorf("google-cloud-project is required when AI enrichment is enabled")
	}
	return nil
}
