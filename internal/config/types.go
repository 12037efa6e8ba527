package config

// Config holds the application configuration.
type Config struct {
	Region string `mapstructure:"region" yaml:"region"`

	// Rule is the deployment identity used to name and tag resources.
	// It stays untyped here; provisioning.ParseRule validates it.
	Rule any `mapstructure:"rule" yaml:"rule"`

	// AccountID scopes the compute service endpoint. When empty it is
	// resolved through the identity service on first use.
	AccountID string `mapstructure:"account_id" yaml:"account_id"`

	// ComputeZones overrides the zones reported by the compute service.
	ComputeZones []string `mapstructure:"compute_zones" yaml:"compute_zones"`

	// Network pins an existing virtual network. Both fields or neither.
	Network *NetworkConfig `mapstructure:"network" yaml:"network"`

	Endpoints Endpoints `mapstructure:"endpoints" yaml:"endpoints"`
	RateLimit RateLimit `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// NetworkConfig identifies a caller-managed virtual network and its subnets.
type NetworkConfig struct {
	NetworkID string   `mapstructure:"network_id" yaml:"network_id"`
	SubnetIDs []string `mapstructure:"subnet_ids" yaml:"subnet_ids"`
}

// Endpoints holds the base URL of each provider service. Values may contain
// {region} and {accountId} placeholders, see ExpandEndpoint.
type Endpoints struct {
	VPC string `mapstructure:"vpc" yaml:"vpc"`
	ECS string `mapstructure:"ecs" yaml:"ecs"`
	NAS string `mapstructure:"nas" yaml:"nas"`
	FC  string `mapstructure:"fc" yaml:"fc"`
	STS string `mapstructure:"sts" yaml:"sts"`
}

// RateLimit bounds the request rate shared by all service clients.
type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// Credentials are handed to the request signer untouched.
type Credentials struct {
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
}
