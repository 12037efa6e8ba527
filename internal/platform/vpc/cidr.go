package vpc

import (
	"errors"
	"fmt"
	"net"
)

const (
	// DefaultNetworkCIDR is the block of networks created by this package.
	DefaultNetworkCIDR = "10.0.0.0/8"
	// DefaultSubnetCIDR is the first candidate block of a new subnet.
	DefaultSubnetCIDR = "10.20.0.0/24"
	// CIDRStep is added to the third octet after each overlap conflict.
	CIDRStep = 16
)

// ErrCIDRExhausted is returned when a block cannot be bumped any further.
var ErrCIDRExhausted = errors.New("subnet CIDR candidates exhausted")

// NextSubnetCIDR bumps the third octet of an IPv4 block by CIDRStep and keeps
// the prefix length.
func NextSubnetCIDR(cidr string) (string, error) {
	ip, ones, err := parseIPv4CIDR(cidr)
	if err != nil {
		return "", err
	}

	next := int(ip[2]) + CIDRStep
	if next > 255 {
		return "", fmt.Errorf("%w: cannot bump %s", ErrCIDRExhausted, cidr)
	}
	ip[2] = byte(next)

	return fmt.Sprintf("%s/%d", ip.String(), ones), nil
}

// SubnetCIDRFor derives the first candidate subnet block inside an existing
// network: networks larger than /24 get a /24, smaller ones get half of the
// network, never smaller than /29.
func SubnetCIDRFor(networkCIDR string) (string, error) {
	ip, ones, err := parseIPv4CIDR(networkCIDR)
	if err != nil {
		return "", err
	}

	if ones < 24 {
		ones = 24
	} else {
		ones = min(ones+1, 29)
	}

	return fmt.Sprintf("%s/%d", ip.String(), ones), nil
}

// parseIPv4CIDR returns the masked network address and prefix length.
func parseIPv4CIDR(cidr string) (net.IP, int, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid CIDR block: %w", err)
	}

	ip := network.IP.To4()
	if ip == nil {
		return nil, 0, fmt.Errorf("only IPv4 blocks are supported, got %s", cidr)
	}

	ones, _ := network.Mask.Size()
	return ip, ones, nil
}
