package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Credentials is the immutable client identity and connection settings.
// It is created once per client instance and never mutated.
type Credentials struct {
	// APIBasePath is the base URL for both the token endpoint and the
	// resource endpoints, e.g. "https://api.example.markko.io".
	APIBasePath string

	// Origin identifies the calling application to the backend via the
	// X-MPE-Origin header.
	Origin string

	// Client-credentials grant identity.
	ClientCredentialKey    string
	ClientCredentialSecret string

	// Password grant identity, used for login only.
	PasswordKey    string
	PasswordSecret string

	// IsDevelopment relaxes TLS certificate verification. Must never be
	// set in production builds.
	IsDevelopment bool
}

// TokenURL returns the token endpoint for these credentials.
func (c Credentials) TokenURL() string {
	return strings.TrimRight(c.APIBasePath, "/") + "/oauth/token"
}

// AuthenticationError reports that every token acquisition path failed.
// It is terminal for the in-flight request and is not retried internally.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// TokenSource produces valid access tokens on demand, minimizing token
// endpoint calls and recovering from refresh failures. Grant resolution
// is serialized behind a mutex, which also de-duplicates concurrent
// refreshes of the shared cache; callers must still not assume
// de-duplication as part of the contract.
type TokenSource struct {
	creds    Credentials
	cache    *Cache
	client   *http.Client
	observer Observer
	nowFunc  func() time.Time

	// cacheExternalRefresh lets a successful refresh of a per-call
	// external token replace the shared cache. Off by default so that
	// per-user tokens never leak into the client-credentials cache.
	cacheExternalRefresh bool

	mu sync.Mutex
}

// SourceOption configures the TokenSource.
type SourceOption func(*TokenSource)

// WithHTTPClient overrides the HTTP client used for token endpoint
// requests. Token requests never go through the authenticated transport.
func WithHTTPClient(c *http.Client) SourceOption {
	return func(s *TokenSource) {
		s.client = c
	}
}

// WithCache injects a shared token cache.
func WithCache(c *Cache) SourceOption {
	return func(s *TokenSource) {
		s.cache = c
	}
}

// WithObserver installs a lifecycle observer.
func WithObserver(o Observer) SourceOption {
	return func(s *TokenSource) {
		s.observer = o
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) SourceOption {
	return func(s *TokenSource) {
		s.nowFunc = f
	}
}

// WithCacheExternalRefresh controls whether a successfully refreshed
// external token is written to the shared cache.
func WithCacheExternalRefresh(enabled bool) SourceOption {
	return func(s *TokenSource) {
		s.cacheExternalRefresh = enabled
	}
}

// NewTokenSource creates a token source for the given credentials.
func NewTokenSource(creds Credentials, opts ...SourceOption) *TokenSource {
	s := &TokenSource{
		creds:    creds,
		cache:    NewCache(),
		client:   &http.Client{Timeout: 10 * time.Second, Transport: BaseTransport(creds.IsDevelopment)},
		observer: NopObserver{},
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache returns the shared token cache.
func (s *TokenSource) Cache() *Cache {
	return s.cache
}

// Resolve returns a currently-valid access token. When external is
// non-nil it takes priority: a valid external token is returned as-is,
// an expired one with a refresh token is refreshed, and only then does
// resolution fall back to the shared cache and the client-credentials
// grant. The only terminal failure is a failed fresh acquisition, which
// surfaces as *AuthenticationError.
func (s *TokenSource) Resolve(ctx context.Context, external *TokenRecord) (string, error) {
	if external != nil {
		if token, ok := s.resolveExternal(ctx, external); ok {
			return token, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.cache.Get(); rec != nil {
		if !rec.Expired(s.nowFunc()) {
			return rec.AccessToken, nil
		}
		if rec.RefreshToken != "" {
			refreshed, err := s.refreshGrant(ctx, rec.RefreshToken)
			if err == nil {
				s.cache.Set(refreshed)
				return refreshed.AccessToken, nil
			}
			s.observer.RefreshFailure(err)
		}
		s.observer.Fallback("cached token expired")
	}

	rec, err := s.clientCredentialsGrant(ctx)
	if err != nil {
		return "", &AuthenticationError{Err: err}
	}
	s.cache.Set(rec)
	return rec.AccessToken, nil
}

// resolveExternal handles a caller-supplied token. The second return is
// false when resolution must fall through to the shared-cache path.
func (s *TokenSource) resolveExternal(ctx context.Context, external *TokenRecord) (string, bool) {
	now := s.nowFunc()
	rec := external.withExpiry(now)
	if !rec.Expired(now) {
		return rec.AccessToken, true
	}

	if rec.RefreshToken != "" {
		refreshed, err := s.refreshGrant(ctx, rec.RefreshToken)
		if err == nil {
			if s.cacheExternalRefresh {
				s.cache.Set(refreshed)
			}
			return refreshed.AccessToken, true
		}
		s.observer.RefreshFailure(err)
	}

	s.observer.Fallback("external token expired")
	return "", false
}

// Login performs the resource-owner password grant. The resulting record
// is handed to the caller and never cached; caller-side session storage
// owns its lifecycle.
func (s *TokenSource) Login(ctx context.Context, username, password string) (*TokenRecord, error) {
	form := url.Values{
		"grant_type":    {GrantPassword},
		"client_id":     {s.creds.PasswordKey},
		"client_secret": {s.creds.PasswordSecret},
		"username":      {username},
		"password":      {password},
		"scope":         {""},
	}
	rec, err := s.grant(ctx, GrantPassword, form)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}
	return rec, nil
}

func (s *TokenSource) clientCredentialsGrant(ctx context.Context) (*TokenRecord, error) {
	form := url.Values{
		"grant_type":    {GrantClientCredentials},
		"client_id":     {s.creds.ClientCredentialKey},
		"client_secret": {s.creds.ClientCredentialSecret},
	}
	return s.grant(ctx, GrantClientCredentials, form)
}

// refreshGrant trades a refresh token for a new record using the
// client-credentials identity.
func (s *TokenSource) refreshGrant(ctx context.Context, refreshToken string) (*TokenRecord, error) {
	form := url.Values{
		"grant_type":    {GrantRefreshToken},
		"client_id":     {s.creds.ClientCredentialKey},
		"client_secret": {s.creds.ClientCredentialSecret},
		"refresh_token": {refreshToken},
	}
	return s.grant(ctx, GrantRefreshToken, form)
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
}

func (s *TokenSource) grant(ctx context.Context, grantType string, form url.Values) (*TokenRecord, error) {
	s.observer.GrantAttempt(grantType)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.creds.TokenURL(),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-MPE-Origin", s.creds.Origin)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		detail := errResp.ErrorDescription
		if detail == "" {
			detail = errResp.Message
		}
		return nil, fmt.Errorf(
			"token request failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			detail,
		)
	}

	rec := &TokenRecord{}
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}
	rec.ExpiresAt = s.nowFunc().UnixMilli() + rec.ExpiresIn*1000

	s.observer.GrantSuccess(grantType)
	return rec, nil
}
