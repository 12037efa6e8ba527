package config

import "strings"

// ExpandEndpoint fills the {region} and {accountId} placeholders of an
// endpoint template. An empty value leaves its placeholder in place, which
// lets the transport fill {region} per request.
func ExpandEndpoint(template, region, accountID string) string {
	out := template
	if region != "" {
		out = strings.ReplaceAll(out, "{region}", region)
	}
	if accountID != "" {
		out = strings.ReplaceAll(out, "{accountId}", accountID)
	}
	return out
}
