// Package auth implements the OAuth2 token lifecycle for the Markko
// marketplace API: acquiring, caching, refreshing, and injecting bearer
// tokens into outbound requests.
package auth

import "time"

// Skew is the safety margin subtracted from a token's expiry so that a
// token checked as valid does not expire mid-flight.
const Skew = 30 * time.Second

// Grant type values sent to the token endpoint.
const (
	GrantClientCredentials = "client_credentials"
	GrantRefreshToken      = "refresh_token"
	GrantPassword          = "password"
)

// TokenRecord is the outcome of one OAuth2 grant. Records are immutable:
// a refresh produces a brand-new record, never an in-place update.
//
// ExpiresAt is an absolute instant in Unix milliseconds, computed at grant
// time as now + ExpiresIn seconds. It is the field the lifecycle manager
// reasons about; ExpiresIn is kept only as reported by the server.
type TokenRecord struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// Expired reports whether the record is no longer usable at now,
// applying the skew margin. A record without ExpiresAt is expired.
func (t *TokenRecord) Expired(now time.Time) bool {
	if t == nil || t.ExpiresAt == 0 {
		return true
	}
	return now.UnixMilli() >= t.ExpiresAt-Skew.Milliseconds()
}

// withExpiry returns a copy with ExpiresAt populated. A record that
// arrives without a grant time is treated as granted now, which is the
// conservative estimate for an externally supplied token.
func (t *TokenRecord) withExpiry(now time.Time) *TokenRecord {
	if t.ExpiresAt != 0 {
		return t
	}
	rec := *t
	rec.ExpiresAt = now.UnixMilli() + rec.ExpiresIn*1000
	return &rec
}
