// Package handlers implements the execution of the srmkit commands.
//
// Handlers load the configuration, build the cloud service clients and run
// the provisioning orchestrator. Results are rendered with lipgloss or
// printed as JSON.
package handlers

import (
	"fmt"
	"os"

	"github.com/imamik/srmkit/internal/config"
)

// DefaultConfigFile is read when no --config flag is given and the file
// exists in the working directory.
const DefaultConfigFile = "srmkit.yaml"

// Options carries the flags of the provisioning commands.
type Options struct {
	ConfigPath string
	Region     string
	Rule       string
	JSON       bool
	Verbose    bool

	// NetworkID and SubnetIDs pin an existing network for storage init.
	NetworkID string
	SubnetIDs []string
}

// Factory function variables - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// loadConfigFile reads and validates a configuration file.
	loadConfigFile = config.LoadFile

	// loadCredentials reads the access key triple.
	loadCredentials = config.LoadCredentials
)

// loadConfig resolves the configuration file and applies flag overrides.
// Without a file the defaults are used and region and rule must come from
// flags or prompts.
func loadConfig(opts Options) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" && fileExists(DefaultConfigFile) {
		path = DefaultConfigFile
	}

	var cfg *config.Config
	if path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	applyOverrides(cfg, opts)
	return cfg, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Region != "" {
		cfg.Region = opts.Region
	}
	if opts.Rule != "" {
		cfg.Rule = opts.Rule
	}
	if opts.NetworkID != "" || len(opts.SubnetIDs) > 0 {
		cfg.Network = &config.NetworkConfig{
			NetworkID: opts.NetworkID,
			SubnetIDs: opts.SubnetIDs,
		}
	}
}
