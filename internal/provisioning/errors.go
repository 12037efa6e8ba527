package provisioning

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any remote call when a request is
	// malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidNetworkConfig reports a network config that names a network
	// without subnets or subnets without a network.
	ErrInvalidNetworkConfig = fmt.Errorf("%w: network id and subnet ids must be given together", ErrInvalidInput)

	// ErrNoZonesAvailable means no zone offers the requested capability.
	ErrNoZonesAvailable = errors.New("no zones available")

	// ErrNoReusableZoneConfiguration means none of the given subnets lies in
	// a zone that offers file storage.
	ErrNoReusableZoneConfiguration = errors.New("no reusable zone configuration")
)

// ValidationError describes which part of a request was rejected.
type ValidationError struct {
	Field   string
	Message string

	// Err is the sentinel the error matches, ErrInvalidInput unless set.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.sentinel(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.sentinel()
}

func (e *ValidationError) sentinel() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}
