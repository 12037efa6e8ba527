package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/srmkit/internal/config"
	"github.com/imamik/srmkit/internal/provisioning"
)

// session is what a provisioning command runs with.
type session struct {
	cfg          *config.Config
	logger       logr.Logger
	registry     *prometheus.Registry
	orchestrator *provisioning.Orchestrator
}

// newSession loads configuration, prompts for missing values when possible
// and wires the orchestrator.
func newSession(ctx context.Context, opts Options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if needsPrompt(cfg) && !opts.JSON && interactive() {
		if err := runPrompt(ctx, cfg); err != nil {
			return nil, err
		}
	}

	logger := newLogger(opts.Verbose)
	registry := prometheus.NewRegistry()

	return &session{
		cfg:          cfg,
		logger:       logger,
		registry:     registry,
		orchestrator: newOrchestrator(cfg, loadCredentials(), logger, registry),
	}, nil
}

// requests returns the number of cloud API calls made so far.
func (s *session) requests() int {
	return requestCount(s.registry)
}

// networkConfig converts the configured network into the orchestrator's type.
func (s *session) networkConfig() *provisioning.NetworkConfig {
	if s.cfg.Network == nil {
		return nil
	}
	return &provisioning.NetworkConfig{
		NetworkID: s.cfg.Network.NetworkID,
		SubnetIDs: s.cfg.Network.SubnetIDs,
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
