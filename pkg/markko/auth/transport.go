package auth

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Header names used by the authenticated transport.
const (
	// HeaderOAuthToken is the process-internal marker carrying a
	// JSON-serialized per-call TokenRecord. The transport consumes and
	// removes it; it must never reach the wire.
	HeaderOAuthToken = "X-OAuth-Token"

	// HeaderOrigin identifies the calling application to the backend.
	HeaderOrigin = "X-MPE-Origin"

	headerRequestID = "X-Request-ID"
)

// Transport is an http.RoundTripper that resolves a bearer token for
// every outbound request and injects it as the Authorization header.
// Resource clients never manage tokens themselves.
type Transport struct {
	source *TokenSource
	origin string
	base   http.RoundTripper
}

// TransportOption configures the Transport.
type TransportOption func(*Transport)

// WithBaseTransport overrides the underlying RoundTripper.
func WithBaseTransport(rt http.RoundTripper) TransportOption {
	return func(t *Transport) {
		t.base = rt
	}
}

// NewTransport creates an authenticating transport backed by the given
// token source.
func NewTransport(source *TokenSource, origin string, opts ...TransportOption) *Transport {
	t := &Transport{
		source: source,
		origin: origin,
		base:   BaseTransport(source.creds.IsDevelopment),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip implements http.RoundTripper. A request carrying the
// X-OAuth-Token marker is resolved against that token; all others use
// the shared-cache path. A resolution failure rejects the request: no
// unauthenticated call is ever sent.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var external *TokenRecord
	if marker := req.Header.Get(HeaderOAuthToken); marker != "" {
		rec := &TokenRecord{}
		if err := json.Unmarshal([]byte(marker), rec); err != nil {
			return nil, fmt.Errorf("parsing per-call token: %w", err)
		}
		external = rec
	}

	token, err := t.source.Resolve(req.Context(), external)
	if err != nil {
		return nil, err
	}

	// Clone before mutating: RoundTrip must not modify the caller's
	// request, and the body is left untouched.
	out := req.Clone(req.Context())
	out.Header.Del(HeaderOAuthToken)
	out.Header.Set("Authorization", "Bearer "+token)
	out.Header.Set(HeaderOrigin, t.origin)
	out.Header.Set(headerRequestID, uuid.NewString())

	return t.base.RoundTrip(out)
}

// BaseTransport returns the plain transport for the given TLS policy.
// Development mode skips certificate verification for self-signed local
// backends.
func BaseTransport(isDevelopment bool) http.RoundTripper {
	if !isDevelopment {
		return http.DefaultTransport
	}
	return &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // development-only TLS relaxation
	}
}
