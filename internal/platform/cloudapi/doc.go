// Package cloudapi is the narrow transport boundary between the resource
// clients and the cloud provider.
//
// # Architecture
//
//   - client.go: the Client interface (one Request method), ClientFunc and middleware chaining
//   - errors.go: APIError, a smithy.APIError carrying the provider code
//   - decode.go: defensive envelope unwrapping and mapstructure decoding
//   - paginate.go: the shared PageNumber/PageSize/TotalCount loop
//   - middleware.go: logging, metrics and rate limiting interceptors
//   - http.go: an RPC-over-HTTP Client with a pluggable Signer
//
// Resource clients (vpc, nas, fc) never subclass or embed a transport; they
// receive a Client and compose middleware around it:
//
//	api := cloudapi.Chain(cloudapi.NewHTTPClient(endpoint, version),
//	    cloudapi.WithLogging(logger, "vpc"),
//	    cloudapi.WithMetrics(metrics, "vpc"),
//	)
package cloudapi
