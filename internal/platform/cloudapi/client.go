package cloudapi

import (
	"context"
	"net/http"
)

// Method is the HTTP method a request is sent with.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Params are the action parameters of a request. Values are rendered with
// fmt.Sprint; string slices are expanded into the provider's repeated-key form.
type Params map[string]any

// Response is a parsed JSON response body. Nested objects are map[string]any.
type Response map[string]any

// RequestOptions holds per-request transport options.
type RequestOptions struct {
	Method Method
}

// PostOptions is the option set every RPC action in this module uses.
var PostOptions = RequestOptions{Method: MethodPost}

// Client is the single capability the resource clients need from the
// provider transport: send one action and get the parsed response back.
// Failures carry a provider code, see APIError.
type Client interface {
	Request(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error)

// Request implements Client.
func (f ClientFunc) Request(ctx context.Context, action string, params Params, opts RequestOptions) (Response, error) {
	return f(ctx, action, params, opts)
}

// Middleware wraps a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Chain wraps c with the given middleware. The first middleware is the
// outermost one, so it sees the request first and the response last.
func Chain(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
