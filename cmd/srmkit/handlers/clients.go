package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/imamik/srmkit/internal/config"
	"github.com/imamik/srmkit/internal/platform/cloudapi"
	"github.com/imamik/srmkit/internal/platform/fc"
	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
	"github.com/imamik/srmkit/internal/provisioning"
)

// Factory function variables for client construction - can be replaced in tests.
var (
	// newTransport creates the raw transport of one service endpoint.
	newTransport = func(endpoint, apiVersion string, signer cloudapi.Signer) cloudapi.Client {
		return cloudapi.NewHTTPClient(endpoint, apiVersion, cloudapi.WithSigner(signer))
	}

	// newSigner builds the request signer from the credentials.
	newSigner = func(creds config.Credentials) cloudapi.Signer {
		return credentialSigner{creds: creds}
	}

	// loadTimeouts reads the polling budgets.
	loadTimeouts = config.LoadTimeouts
)

// credentialSigner attaches the access key id and security token to each
// request. The signature itself is added by the signing gateway the
// endpoints point at.
type credentialSigner struct {
	creds config.Credentials
}

func (s credentialSigner) Sign(req *http.Request, action string) error {
	if s.creds.AccessKeyID == "" || s.creds.AccessKeySecret == "" {
		return fmt.Errorf("credentials missing: set %s and %s", config.EnvAccessKeyID, config.EnvAccessKeySecret)
	}
	req.Header.Set("x-acs-accesskey-id", s.creds.AccessKeyID)
	req.Header.Set("x-acs-action", action)
	if s.creds.SecurityToken != "" {
		req.Header.Set("x-acs-security-token", s.creds.SecurityToken)
	}
	return nil
}

// newOrchestrator wires the service clients behind logging, rate limiting and
// metrics middleware. All services share one rate limiter.
func newOrchestrator(cfg *config.Config, creds config.Credentials, logger logr.Logger, reg prometheus.Registerer) *provisioning.Orchestrator {
	apiMetrics := cloudapi.NewMetrics(reg)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	signer := newSigner(creds)
	timeouts := loadTimeouts()

	service := func(name, endpoint, apiVersion string) cloudapi.Client {
		return cloudapi.Chain(
			newTransport(config.ExpandEndpoint(endpoint, cfg.Region, cfg.AccountID), apiVersion, signer),
			cloudapi.WithLogging(logger, name),
			cloudapi.WithMetrics(apiMetrics, name),
			cloudapi.WithRateLimit(limiter),
		)
	}

	computeOpts := []fc.Option{
		fc.WithLogger(logger),
		fc.WithIdentityAPI(service("sts", cfg.Endpoints.STS, config.STSAPIVersion)),
	}
	if cfg.AccountID != "" {
		computeOpts = append(computeOpts, fc.WithAccountID(cfg.AccountID))
	}

	return provisioning.NewOrchestrator(
		vpc.NewClient(service("vpc", cfg.Endpoints.VPC, config.VPCAPIVersion),
			vpc.WithSecurityGroupAPI(service("ecs", cfg.Endpoints.ECS, config.ECSAPIVersion)),
			vpc.WithLogger(logger),
			vpc.WithTimeouts(timeouts),
		),
		nas.NewClient(service("nas", cfg.Endpoints.NAS, config.NASAPIVersion),
			nas.WithLogger(logger),
			nas.WithTimeouts(timeouts),
		),
		fc.NewClient(service("fc", cfg.Endpoints.FC, config.FCAPIVersion), computeOpts...),
		provisioning.WithLogger(logger),
		provisioning.WithMetrics(provisioning.NewMetrics(reg)),
	)
}

// requestCount sums the cloud API request counter of a registry.
func requestCount(g prometheus.Gatherer) int {
	families, err := g.Gather()
	if err != nil {
		return 0
	}
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != "srmkit_cloudapi_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return int(total)
}
