package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/srmkit/internal/provisioning"
)

// NetworkInit converges the network of the configured rule and prints the
// resulting network configuration.
func NetworkInit(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}

	result, err := s.orchestrator.InitNetworkConfig(ctx, provisioning.NetworkRequest{
		Region:         s.cfg.Region,
		Rule:           s.cfg.Rule,
		ComputeZoneIDs: s.cfg.ComputeZones,
	})
	if err != nil {
		return fmt.Errorf("network init failed: %w", err)
	}

	if opts.JSON {
		return printJSON(result)
	}
	fmt.Print(renderNetworkConfig(fmt.Sprint(s.cfg.Rule), s.cfg.Region, result, s.requests()))
	return nil
}
