package provisioning

import (
	"context"
	"fmt"
	"time"
)

// phase is one sequential step of a provisioning operation. Each phase
// depends on the results of the ones before it.
type phase struct {
	name string
	run  func(ctx context.Context) error
}

// runPhases executes phases in order and stops at the first failure.
func (o *Orchestrator) runPhases(ctx context.Context, operation string, phases []phase) error {
	start := time.Now()
	log := o.logger.WithValues("operation", operation)
	log.V(1).Info("starting provisioning", "phases", len(phases))

	for i, p := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", p.name, i+1, len(phases))
		log.V(1).Info("phase starting", "phase", name)

		err := p.run(ctx)
		elapsed := time.Since(phaseStart)
		o.metrics.observePhase(operation, p.name, err, elapsed)
		if err != nil {
			log.Error(err, "phase failed", "phase", name)
			return fmt.Errorf("%s phase failed: %w", p.name, err)
		}

		log.V(1).Info("phase completed", "phase", name, "duration", elapsed.Round(time.Millisecond))
	}

	log.Info("provisioning completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}
