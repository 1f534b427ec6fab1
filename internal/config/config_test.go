package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "us-central1", cfg.GoogleCloudLocation)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.False(t, cfg.AIEnabled)
	assert.Equal(t, 30, cfg.EnrichmentTimeout)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RESUME_INSIGHT_LISTEN_ADDR", ":9090")
	t.Setenv("RESUME_INSIGHT_UPLOADS_DIR", "/tmp/resumes")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/resumes", cfg.UploadsDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{ListenAddr: ":8080", UploadsDir: "uploads"},
		},
		{
			name:    "missing listen addr",
			cfg:     Config{UploadsDir: "uploads"},
			wantErr: "listen-addr",
		},
		{
			name:    "missing uploads dir",
			cfg:     Config{ListenAddr: ":8080"},
			wantErr: "uploads-dir",
		},
		{
			name:    "ai without project",
			cfg:     Config{ListenAddr: ":8080", UploadsDir: "uploads", AIEnabled: true},
			wantErr: "google-cloud-project",
		},
		{
			name: "ai with project",
			cfg:  Config{ListenAddr: ":8080", UploadsDir: "uploads", AIEnabled: true, GoogleCloudProject: "demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
