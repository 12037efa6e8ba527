package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/srmkit/internal/provisioning"
)

// StorageInit converges the file share and mount target of the configured
// rule and prints the storage configuration.
func StorageInit(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}

	result, err := s.orchestrator.InitStorageConfig(ctx, provisioning.StorageRequest{
		Region:         s.cfg.Region,
		Rule:           s.cfg.Rule,
		Network:        s.networkConfig(),
		ComputeZoneIDs: s.cfg.ComputeZones,
	})
	if err != nil {
		return fmt.Errorf("storage init failed: %w", err)
	}

	if opts.JSON {
		return printJSON(result)
	}
	fmt.Print(renderStorageConfig(fmt.Sprint(s.cfg.Rule), s.cfg.Region, result, s.requests()))
	return nil
}
