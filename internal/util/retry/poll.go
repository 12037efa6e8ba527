package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is matched by every TimeoutError returned from PollUntil.
var ErrTimeout = errors.New("timeout while waiting for resource")

// TimeoutError reports that a polled resource never reached its target state.
type TimeoutError struct {
	Resource   string
	Attempts   int
	LastStatus string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout while waiting for %s after %d attempts (last status %q)",
		e.Resource, e.Attempts, e.LastStatus)
}

// Is lets errors.Is(err, ErrTimeout) match any TimeoutError.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// PollConfig bounds a polling loop.
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// PollUntil sleeps for the interval, fetches the resource and stops as soon as
// ready reports true. It gives up with a *TimeoutError after MaxAttempts
// fetches. Fetch errors are returned as-is; the loop never retries them.
//
// status extracts a human readable state for the timeout message and may be nil.
func PollUntil[T any](
	ctx context.Context,
	resource string,
	cfg PollConfig,
	fetch func(ctx context.Context) (T, error),
	ready func(T) bool,
	status func(T) string,
) (T, error) {
	var last T
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := sleep(ctx, cfg.Interval); err != nil {
			return last, fmt.Errorf("polling %s cancelled after %d attempts: %w", resource, attempt-1, err)
		}

		v, err := fetch(ctx)
		if err != nil {
			return last, err
		}
		last = v
		if ready(v) {
			return v, nil
		}
	}

	timeoutErr := &TimeoutError{Resource: resource, Attempts: attempts}
	if status != nil {
		timeoutErr.LastStatus = status(last)
	}
	return last, timeoutErr
}
