package cloudapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Signer authenticates an outgoing request. Signing is owned by the
// credential layer; HTTPClient only calls it.
type Signer interface {
	Sign(req *http.Request, action string) error
}

// SignerFunc adapts a function to the Signer interface.
type SignerFunc func(req *http.Request, action string) error

// Sign implements Signer.
func (f SignerFunc) Sign(req *http.Request, action string) error { return f(req, action) }

// endpointPlaceholders maps endpoint template placeholders to the request
// parameter that fills them.
var endpointPlaceholders = map[string]string{
	"{region}":    "RegionId",
	"{accountId}": "AccountId",
}

// HTTPClient is an RPC-style Client speaking Action/Version form requests
// and JSON responses. The endpoint may contain {region} and {accountId}
// placeholders that are filled from the RegionId and AccountId parameters of
// each request.
type HTTPClient struct {
	endpoint   string
	apiVersion string
	httpClient *http.Client
	signer     Signer
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient sets the underlying *http.Client (useful for testing).
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithSigner sets the request signer.
func WithSigner(s Signer) HTTPOption {
	return func(c *HTTPClient) {
		c.signer = s
	}
}

// NewHTTPClient creates an HTTPClient for one service endpoint.
func NewHTTPClient(endpoint, apiVersion string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		endpoint:   endpoint,
		apiVersion: apiVersion,
		httpClient: &http.Client{
			Timeout:   60 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request implements Client.
func (c *HTTPClient) Request(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error) {
	method := opts.Method
	if method == "" {
		method = MethodPost
	}

	endpoint := c.endpoint
	for placeholder, key := range endpointPlaceholders {
		if v, ok := params[key]; ok && v != nil {
			endpoint = strings.ReplaceAll(endpoint, placeholder, fmt.Sprint(v))
		}
	}

	values := encodeParams(params)
	values.Set("Action", action)
	values.Set("Version", c.apiVersion)
	values.Set("Format", "JSON")

	var req *http.Request
	var err error
	if method == MethodGet {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+values.Encode(), nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, string(method), endpoint, strings.NewReader(values.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Accept", "application/json")

	if c.signer != nil {
		if err := c.signer.Sign(req, action); err != nil {
			return nil, fmt.Errorf("failed to sign %s request: %w", action, err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", action, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", action, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.Code == "" {
			apiErr.Code = strconv.Itoa(resp.StatusCode)
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	out := Response{}
	if len(body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", action, err)
	}
	return out, nil
}

// encodeParams renders params as form values. Slices become Key.1, Key.2, ...
func encodeParams(params Params) url.Values {
	values := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := params[k].(type) {
		case nil:
		case []string:
			for i, item := range v {
				values.Set(fmt.Sprintf("%s.%d", k, i+1), item)
			}
		default:
			values.Set(k, fmt.Sprint(v))
		}
	}
	return values
}
