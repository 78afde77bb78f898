package markko

import (
	"errors"
	"fmt"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// Config is the construction-time client configuration. It is never
// mutated after New.
type Config struct {
	// Version of the consuming application, reported for diagnostics.
	Version string

	// Origin identifies the calling application (X-MPE-Origin header).
	Origin string

	// APIBasePath is the marketplace origin, e.g.
	// "https://api.demo.markko.io".
	APIBasePath string

	// Password grant identity (login only).
	PasswordKey    string
	PasswordSecret string

	// Client-credentials grant identity.
	ClientCredentialKey    string
	ClientCredentialSecret string

	// IsDevelopment relaxes TLS certificate verification. Must never be
	// set in production builds.
	IsDevelopment bool

	// CacheExternalRefresh lets a successfully refreshed per-call token
	// replace the shared client-credentials cache. Off by default.
	CacheExternalRefresh bool
}

func (c Config) validate() error {
	var errs []error

	if c.APIBasePath == "" {
		errs = append(errs, fmt.Errorf("APIBasePath is required"))
	}
	if c.ClientCredentialKey == "" {
		errs = append(errs, fmt.Errorf("ClientCredentialKey is required"))
	}
	if c.ClientCredentialSecret == "" {
		errs = append(errs, fmt.Errorf("ClientCredentialSecret is required"))
	}

	return errors.Join(errs...)
}

func (c Config) credentials() auth.Credentials {
	return auth.Credentials{
		APIBasePath:            c.APIBasePath,
		Origin:                 c.Origin,
		ClientCredentialKey:    c.ClientCredentialKey,
		ClientCredentialSecret: c.ClientCredentialSecret,
		PasswordKey:            c.PasswordKey,
		PasswordSecret:         c.PasswordSecret,
		IsDevelopment:          c.IsDevelopment,
	}
}
