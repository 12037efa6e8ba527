package vpc

import (
	"github.com/go-logr/logr"

	"github.com/imamik/srmkit/internal/config"
	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// Page size of DescribeVpcs and DescribeVSwitches; 50 is the provider maximum.
const pageSize = 50

// Client talks to the virtual network service. Security groups belong to the
// compute instance service and go through a separate transport when one is
// configured.
type Client struct {
	api      cloudapi.Client
	sgAPI    cloudapi.Client
	logger   logr.Logger
	timeouts *config.Timeouts
}

// Option configures a Client.
type Option func(*Client)

// WithSecurityGroupAPI sets the transport used for security group actions.
func WithSecurityGroupAPI(api cloudapi.Client) Option {
	return func(c *Client) {
		c.sgAPI = api
	}
}

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeouts sets custom polling and retry budgets for the client.
func WithTimeouts(t *config.Timeouts) Option {
	return func(c *Client) {
		c.timeouts = t
	}
}

// NewClient creates a Client on top of api.
func NewClient(api cloudapi.Client, opts ...Option) *Client {
	c := &Client{
		api:      api,
		logger:   logr.Discard(),
		timeouts: config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sgAPI == nil {
		c.sgAPI = api
	}
	return c
}
