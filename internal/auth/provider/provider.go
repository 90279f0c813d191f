package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SrotDev/bizpilot/internal/auth"

	"github.com/caarlos0/env/v11"
)

// OAuthProvider defines the contract every external auth provider
// must implement. Implementations return identity facts only and
// must not perform user creation or session management.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google", "linkedin").
	Name() string

	// AuthCodeURL returns the OAuth authorization URL. The state
	// parameter is provided by the caller. It fails with
	// ErrMissingCredential when the provider is not configured,
	// rather than emitting a malformed redirect.
	AuthCodeURL(state string) (string, error)

	// ExchangeCode exchanges the authorization code for an access
	// token, fetches the provider profile, and returns a normalized
	// identity. No auth decisions are made here.
	ExchangeCode(ctx context.Context, code string) (*auth.Identity, error)
}

// ErrMissingCredential marks a provider whose client id, secret, or
// redirect URI is absent from the environment.
var ErrMissingCredential = errors.New("missing oauth credential")

// Credentials are the per-provider secrets required to run a flow.
type Credentials struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURI  string `env:"REDIRECT_URI"`
}

// CredentialSource yields provider credentials. Implementations are
// called on every request, so credential changes and gaps surface
// per-request instead of at startup.
type CredentialSource func() (Credentials, error)

// EnvCredentials reads {prefix}_CLIENT_ID, {prefix}_CLIENT_SECRET and
// {prefix}_REDIRECT_URI from the environment on each call. All three
// must be present for a flow to run.
func EnvCredentials(prefix string) CredentialSource {
	return func() (Credentials, error) {
		var creds Credentials
		err := env.ParseWithOptions(&creds, env.Options{Prefix: prefix + "_"})
		if err != nil {
			return Credentials{}, fmt.Errorf("%s credentials: %w", prefix, err)
		}
		if creds.ClientID == "" || creds.ClientSecret == "" || creds.RedirectURI == "" {
			return Credentials{}, fmt.Errorf("%s: %w", prefix, ErrMissingCredential)
		}
		return creds, nil
	}
}

// StaticCredentials returns fixed credentials. Test helper.
func StaticCredentials(creds Credentials) CredentialSource {
	return func() (Credentials, error) {
		return creds, nil
	}
}

// GetJSON performs an authorized GET against a provider resource and
// decodes the JSON body. Used for profile and email fetches.
func GetJSON(ctx context.Context, client *http.Client, rawURL, authorization string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resource request failed: %s", resp.Status)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("resource decode failed: %w", err)
	}
	return payload, nil
}
