// Package request holds the metadata every EC2 operation input carries and
// the wire-request contract used for dry runs.
package request

import (
	"maps"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Request is what the transport side needs from an operation input.
type Request interface {
	RequestMetadata() *Metadata
	OperationName() string
}

// Metadata is embedded in every operation input. It is not part of the
// input's equality, hash or string form.
type Metadata struct {
	headers     map[string]string
	queryParams map[string][]string
	credentials aws.CredentialsProvider
	timeout     time.Duration
}

// RequestMetadata returns the receiver so embedding types satisfy Request.
func (m *Metadata) RequestMetadata() *Metadata {
	return m
}

// PutCustomRequestHeader sets a header sent with the request and returns
// the previous value, if any.
func (m *Metadata) PutCustomRequestHeader(name, value string) string {
	if m.headers == nil {
		m.headers = make(map[string]string)
	}
	prev := m.headers[name]
	m.headers[name] = value
	return prev
}

// CustomRequestHeaders returns a copy of the custom headers.
func (m *Metadata) CustomRequestHeaders() map[string]string {
	return maps.Clone(m.headers)
}

// PutCustomQueryParameter adds a value to a query parameter sent with the
// request. Parameters may carry several values.
func (m *Metadata) PutCustomQueryParameter(name, value string) {
	if m.queryParams == nil {
		m.queryParams = make(map[string][]string)
	}
	m.queryParams[name] = append(m.queryParams[name], value)
}

// CustomQueryParameters returns a copy of the custom query parameters.
func (m *Metadata) CustomQueryParameters() map[string][]string {
	if m.queryParams == nil {
		return nil
	}
	out := make(map[string][]string, len(m.queryParams))
	for k, v := range m.queryParams {
		out[k] = slices.Clone(v)
	}
	return out
}

// SetCredentialsProvider overrides the client credentials for this request.
func (m *Metadata) SetCredentialsProvider(p aws.CredentialsProvider) {
	m.credentials = p
}

// CredentialsProvider returns the per-request credentials, or nil.
func (m *Metadata) CredentialsProvider() aws.CredentialsProvider {
	return m.credentials
}

// SetTimeout bounds the whole call, retries included. Zero means no bound.
func (m *Metadata) SetTimeout(d time.Duration) {
	m.timeout = d
}

// Timeout returns the per-request timeout.
func (m *Metadata) Timeout() time.Duration {
	return m.timeout
}

// Clone returns a copy that shares no maps with m.
func (m *Metadata) Clone() Metadata {
	return Metadata{
		headers:     maps.Clone(m.headers),
		queryParams: m.CustomQueryParameters(),
		credentials: m.credentials,
		timeout:     m.timeout,
	}
}
