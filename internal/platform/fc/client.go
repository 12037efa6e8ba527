// Package fc wraps the serverless compute service. The orchestrator only
// needs the zones the service can place functions in, and the account id
// that scopes the service endpoint.
package fc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// Client talks to the serverless compute service.
type Client struct {
	api      cloudapi.Client
	identity cloudapi.Client
	logger   logr.Logger

	mu        sync.Mutex
	accountID string
}

// Option configures a Client.
type Option func(*Client)

// WithAccountID pins the account id and skips the identity lookup.
func WithAccountID(id string) Option {
	return func(c *Client) {
		c.accountID = id
	}
}

// WithIdentityAPI sets the transport of the identity service used to look up
// the account id.
func WithIdentityAPI(api cloudapi.Client) Option {
	return func(c *Client) {
		c.identity = api
	}
}

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client on top of api.
func NewClient(api cloudapi.Client, opts ...Option) *Client {
	c := &Client{
		api:    api,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AvailableZones returns the zones the compute service can attach to a
// virtual network in region, in service order.
func (c *Client) AvailableZones(ctx context.Context, region string) ([]string, error) {
	accountID, err := c.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.Request(ctx, "GetAccountSettings", cloudapi.Params{
		"RegionId":  region,
		"AccountId": accountID,
	}, cloudapi.RequestOptions{Method: cloudapi.MethodGet})
	if err != nil {
		return nil, fmt.Errorf("failed to get compute account settings: %w", err)
	}

	raw, ok := cloudapi.Lookup(resp, "availableAZs")
	if !ok {
		raw, ok = cloudapi.Lookup(resp, "data", "availableAZs")
	}
	if !ok {
		return []string{}, nil
	}
	zones, err := cloudapi.Decode[[]string](raw)
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info("compute zones", "region", region, "zones", zones)
	return zones, nil
}

// AccountID returns the configured account id or resolves it once through
// the identity service.
func (c *Client) AccountID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accountID != "" {
		return c.accountID, nil
	}
	if c.identity == nil {
		return "", errors.New("account id is not configured and no identity service is available")
	}

	id, err := ResolveAccountID(ctx, c.identity)
	if err != nil {
		return "", err
	}
	c.accountID = id
	return id, nil
}

// ResolveAccountID asks the identity service who the caller is.
func ResolveAccountID(ctx context.Context, identity cloudapi.Client) (string, error) {
	resp, err := identity.Request(ctx, "GetCallerIdentity", cloudapi.Params{}, cloudapi.PostOptions)
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	id := cloudapi.String(resp, "AccountId")
	if id == "" {
		return "", errors.New("caller identity response carries no AccountId")
	}
	return id, nil
}
