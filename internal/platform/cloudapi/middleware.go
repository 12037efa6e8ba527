package cloudapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// WithLogging logs every request and its outcome. Requests and responses go
// to the debug level (V(1)); failures are logged as errors with the provider
// code. Each call gets a correlation id so request and response lines pair up.
func WithLogging(logger logr.Logger, service string) Middleware {
	return func(next Client) Client {
		return ClientFunc(func(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error) {
			log := logger.WithValues("service", service, "action", action, "correlationID", uuid.NewString())
			log.V(1).Info("cloud api request", "params", compact(params))

			start := time.Now()
			resp, err := next.Request(ctx, action, params, opts)
			elapsed := time.Since(start)
			if err != nil {
				log.Error(err, "cloud api request failed", "code", ErrorCodeOf(err), "duration", elapsed)
				return nil, err
			}

			log.V(1).Info("cloud api response", "duration", elapsed, "body", compact(resp))
			return resp, nil
		})
	}
}

// WithMetrics records request counts and latency into m.
func WithMetrics(m *Metrics, service string) Middleware {
	return func(next Client) Client {
		return ClientFunc(func(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error) {
			start := time.Now()
			resp, err := next.Request(ctx, action, params, opts)
			m.observe(service, action, err, time.Since(start))
			return resp, err
		})
	}
}

// WithRateLimit blocks each request until limiter admits it.
func WithRateLimit(limiter *rate.Limiter) Middleware {
	return func(next Client) Client {
		return ClientFunc(func(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter: %w", err)
			}
			return next.Request(ctx, action, params, opts)
		})
	}
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
