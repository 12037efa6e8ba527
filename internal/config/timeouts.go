package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the polling and retry budgets of the provisioning layer.
// These values can be customized via environment variables.
type Timeouts struct {
	NetworkPollInterval     time.Duration // Delay between readiness checks of networks and subnets
	NetworkPollAttempts     int           // Readiness checks before a network or subnet times out
	MountTargetPollInterval time.Duration // Delay between mount target status checks
	MountTargetPollAttempts int           // Status checks before a mount target times out
	CIDRRetryMax            int           // Subnet CIDR bumps after an overlap conflict
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - SRMKIT_NETWORK_POLL_INTERVAL (default: 800ms)
//   - SRMKIT_NETWORK_POLL_ATTEMPTS (default: 15)
//   - SRMKIT_MOUNT_TARGET_POLL_INTERVAL (default: 2s)
//   - SRMKIT_MOUNT_TARGET_POLL_ATTEMPTS (default: 40)
//   - SRMKIT_CIDR_RETRY_MAX (default: 15)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		NetworkPollInterval:     parseDuration("SRMKIT_NETWORK_POLL_INTERVAL", 800*time.Millisecond),
		NetworkPollAttempts:     parseInt("SRMKIT_NETWORK_POLL_ATTEMPTS", 15),
		MountTargetPollInterval: parseDuration("SRMKIT_MOUNT_TARGET_POLL_INTERVAL", 2*time.Second),
		MountTargetPollAttempts: parseInt("SRMKIT_MOUNT_TARGET_POLL_ATTEMPTS", 40),
		CIDRRetryMax:            parseInt("SRMKIT_CIDR_RETRY_MAX", 15),
	}
}

// TestTimeouts returns short budgets suitable for unit tests.
func TestTimeouts() *Timeouts {
	return &Timeouts{
		NetworkPollInterval:     time.Millisecond,
		NetworkPollAttempts:     5,
		MountTargetPollInterval: time.Millisecond,
		MountTargetPollAttempts: 5,
		CIDRRetryMax:            15,
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
