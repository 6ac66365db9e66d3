package request

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded; charset=utf-8"

// WireRequest is a fully marshalled query-protocol request.
type WireRequest struct {
	Operation string
	Method    string
	Path      string
	Params    url.Values
	Headers   http.Header
}

// NewWireRequest returns a POST / request for operation carrying params,
// with the custom headers and query parameters of md applied.
func NewWireRequest(operation string, params url.Values, md *Metadata) *WireRequest {
	if params == nil {
		params = url.Values{}
	}
	w := &WireRequest{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      "/",
		Params:    params,
		Headers:   http.Header{},
	}
	w.Headers.Set("Content-Type", formContentType)
	if md != nil {
		for k, v := range md.headers {
			w.Headers.Set(k, v)
		}
		for k, vs := range md.queryParams {
			for _, v := range vs {
				w.Params.Add(k, v)
			}
		}
	}
	return w
}

// AddParameter appends a value to a parameter.
func (w *WireRequest) AddParameter(name, value string) {
	w.Params.Add(name, value)
}

// Encode returns the form body, keys sorted.
func (w *WireRequest) Encode() string {
	return w.Params.Encode()
}

// HTTPRequest builds an unsigned *http.Request against endpoint.
func (w *WireRequest) HTTPRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	u.Path = w.Path

	req, err := http.NewRequestWithContext(ctx, w.Method, u.String(), strings.NewReader(w.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", w.Operation, err)
	}
	req.Header = w.Headers.Clone()
	return req, nil
}

// Marshaller turns an input into its wire form.
type Marshaller[R Request] interface {
	Marshal(r R) (*WireRequest, error)
}

// MarshalFunc adapts a function to Marshaller.
type MarshalFunc[R Request] func(r R) (*WireRequest, error)

// Marshal calls f(r).
func (f MarshalFunc[R]) Marshal(r R) (*WireRequest, error) {
	return f(r)
}

// DryRunSupported is implemented by inputs that can build a permission
// check request.
type DryRunSupported interface {
	Request
	DryRunRequest() (*WireRequest, error)
}

// DryRunParameter asks the service to check permissions without running
// the operation.
const DryRunParameter = "DryRun"

// DryRun marshals r with m and marks the result as a dry run.
func DryRun[R Request](r R, m Marshaller[R]) (*WireRequest, error) {
	w, err := m.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", r.OperationName(), err)
	}
	w.Params.Set(DryRunParameter, "true")
	return w, nil
}
