package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/srmkit/internal/config"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	origExists := fileExists
	defer func() { fileExists = origExists }()
	fileExists = func(string) bool { return false }

	cfg, err := loadConfig(Options{Region: "cn-hangzhou", Rule: "app"})

	require.NoError(t, err)
	assert.Equal(t, "cn-hangzhou", cfg.Region)
	assert.Equal(t, "app", cfg.Rule)
	assert.Equal(t, config.DefaultNASEndpoint, cfg.Endpoints.NAS)
	assert.Equal(t, config.DefaultBurst, cfg.RateLimit.Burst)
	assert.Nil(t, cfg.Network)
}

func TestLoadConfig_UsesDefaultFileWhenPresent(t *testing.T) {
	origExists := fileExists
	origLoad := loadConfigFile
	defer func() {
		fileExists = origExists
		loadConfigFile = origLoad
	}()

	var loaded string
	fileExists = func(path string) bool { return path == DefaultConfigFile }
	loadConfigFile = func(path string) (*config.Config, error) {
		loaded = path
		return &config.Config{Region: "cn-beijing", Rule: "from-file"}, nil
	}

	cfg, err := loadConfig(Options{})

	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, loaded)
	assert.Equal(t, "from-file", cfg.Rule)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(Options{ConfigPath: "/nonexistent/srmkit.yaml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config /nonexistent/srmkit.yaml")
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		opts        Options
		wantRegion  string
		wantRule    any
		wantNetwork *config.NetworkConfig
	}{
		{
			name:       "no flags keep the file values",
			opts:       Options{},
			wantRegion: "cn-hangzhou",
			wantRule:   123,
		},
		{
			name:       "flags win",
			opts:       Options{Region: "cn-beijing", Rule: "app"},
			wantRegion: "cn-beijing",
			wantRule:   "app",
		},
		{
			name:        "partial network is passed through for validation",
			opts:        Options{SubnetIDs: []string{"vsw-1"}},
			wantRegion:  "cn-hangzhou",
			wantRule:    123,
			wantNetwork: &config.NetworkConfig{SubnetIDs: []string{"vsw-1"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{Region: "cn-hangzhou", Rule: 123}
			applyOverrides(cfg, tt.opts)
			assert.Equal(t, tt.wantRegion, cfg.Region)
			assert.Equal(t, tt.wantRule, cfg.Rule)
			assert.Equal(t, tt.wantNetwork, cfg.Network)
		})
	}
}

func TestNeedsPrompt(t *testing.T) {
	t.Parallel()
	assert.True(t, needsPrompt(&config.Config{Rule: "app"}))
	assert.True(t, needsPrompt(&config.Config{Region: "cn-hangzhou"}))
	assert.False(t, needsPrompt(&config.Config{Region: "cn-hangzhou", Rule: 123}), "a typed rule is left to validation")
	assert.NoError(t, requireValue("rule")("app"))
	assert.EqualError(t, requireValue("rule")("  "), "rule is required")
}
