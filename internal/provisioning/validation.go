package provisioning

import "fmt"

// ParseRule validates a raw rule value. Rules often come from loosely typed
// sources such as YAML files, so anything that is not a non-empty string is
// rejected.
func ParseRule(raw any) (string, error) {
	rule, ok := raw.(string)
	if !ok {
		return "", &ValidationError{Field: "rule", Message: fmt.Sprintf("must be a string, got %T", raw)}
	}
	if rule == "" {
		return "", &ValidationError{Field: "rule", Message: "must not be empty"}
	}
	return rule, nil
}

func validateRegion(region string) error {
	if region == "" {
		return &ValidationError{Field: "region", Message: "must not be empty"}
	}
	return nil
}

// validateNetworkConfig enforces that a caller supplied network config names
// both the network and its subnets, or neither.
func validateNetworkConfig(cfg *NetworkConfig) error {
	if cfg == nil {
		return nil
	}
	hasNetwork := cfg.NetworkID != ""
	hasSubnets := len(cfg.SubnetIDs) > 0
	if hasNetwork == hasSubnets {
		return nil
	}

	msg := fmt.Sprintf("network %q has no subnet ids", cfg.NetworkID)
	if hasSubnets {
		msg = fmt.Sprintf("subnet ids %v given without a network id", cfg.SubnetIDs)
	}
	return &ValidationError{Field: "network", Message: msg, Err: ErrInvalidNetworkConfig}
}

// validateRequest runs the checks shared by both entry points.
func validateRequest(region string, rawRule any) (string, error) {
	rule, err := ParseRule(rawRule)
	if err != nil {
		return "", err
	}
	if err := validateRegion(region); err != nil {
		return "", err
	}
	return rule, nil
}
