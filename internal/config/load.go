package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset endpoints and rate limits.
func (c *Config) ApplyDefaults() {
	if c.Endpoints.VPC == "" {
		c.Endpoints.VPC = DefaultVPCEndpoint
	}
	if c.Endpoints.ECS == "" {
		c.Endpoints.ECS = DefaultECSEndpoint
	}
	if c.Endpoints.NAS == "" {
		c.Endpoints.NAS = DefaultNASEndpoint
	}
	if c.Endpoints.FC == "" {
		c.Endpoints.FC = DefaultFCEndpoint
	}
	if c.Endpoints.STS == "" {
		c.Endpoints.STS = DefaultSTSEndpoint
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = DefaultBurst
	}
}

// Validate checks the parts of the configuration that belong to this
// package. The rule and the network pair are validated by the provisioning
// layer so that they share its error taxonomy.
func (c *Config) Validate() error {
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit.requests_per_second must not be negative, got %v", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit.burst must not be negative, got %d", c.RateLimit.Burst)
	}
	for name, endpoint := range map[string]string{
		"vpc": c.Endpoints.VPC,
		"ecs": c.Endpoints.ECS,
		"nas": c.Endpoints.NAS,
		"fc":  c.Endpoints.FC,
		"sts": c.Endpoints.STS,
	} {
		if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			return fmt.Errorf("endpoints.%s must be an http(s) URL, got %q", name, endpoint)
		}
	}
	return nil
}

// LoadCredentials reads the access key triple from the environment.
func LoadCredentials() Credentials {
	return Credentials{
		AccessKeyID:     os.Getenv(EnvAccessKeyID),
		AccessKeySecret: os.Getenv(EnvAccessKeySecret),
		SecurityToken:   os.Getenv(EnvSecurityToken),
	}
}
