package cloudapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

// Provider error codes the orchestration layer reacts to.
const (
	// CodeCIDROverlapped is returned when a new subnet's CIDR block overlaps
	// an existing one in the same virtual network.
	CodeCIDROverlapped = "InvalidCidrBlock.Overlapped"
	// CodeThrottling is returned when the caller exceeds the API rate.
	CodeThrottling = "Throttling"
)

// APIError is a provider failure decoded from an error response body.
// It implements smithy.APIError so callers can classify it without
// depending on this package.
type APIError struct {
	Code       string `json:"Code"`
	Message    string `json:"Message"`
	RequestID  string `json:"RequestId"`
	HTTPStatus int    `json:"-"`
}

var _ smithy.APIError = (*APIError)(nil)

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("api error %s: %s (request id %s)", e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// ErrorCode implements smithy.APIError.
func (e *APIError) ErrorCode() string { return e.Code }

// ErrorMessage implements smithy.APIError.
func (e *APIError) ErrorMessage() string { return e.Message }

// ErrorFault implements smithy.APIError.
func (e *APIError) ErrorFault() smithy.ErrorFault {
	switch {
	case e.HTTPStatus >= http.StatusInternalServerError:
		return smithy.FaultServer
	case e.HTTPStatus >= http.StatusBadRequest:
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

// ErrorCodeOf returns the provider code carried by err, or "" when err is
// not a provider error.
func ErrorCodeOf(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// HasErrorCode reports whether err is a provider error with one of codes.
func HasErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	code := ErrorCodeOf(err)
	if code == "" {
		return false
	}
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}

// IsCIDROverlapped checks if err reports a subnet CIDR conflict.
func IsCIDROverlapped(err error) bool {
	return HasErrorCode(err, CodeCIDROverlapped)
}
