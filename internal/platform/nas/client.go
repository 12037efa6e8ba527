package nas

import (
	"github.com/go-logr/logr"

	"github.com/imamik/srmkit/internal/config"
	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// Page size of DescribeFileSystems.
const pageSize = 100

// Client talks to the file storage service.
type Client struct {
	api      cloudapi.Client
	logger   logr.Logger
	timeouts *config.Timeouts
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeouts sets custom polling budgets for the client.
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
	return c
}
