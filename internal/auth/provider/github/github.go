package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SrotDev/bizpilot/internal/auth"
	"github.com/SrotDev/bizpilot/internal/auth/provider"
)

const providerName = "github"

const (
	defaultAuthURL    = "https://github.com/login/oauth/authorize"
	defaultTokenURL   = "https://github.com/login/oauth/access_token"
	defaultProfileURL = "https://api.github.com/user"
)

// Provider drives the GitHub authorization-code flow. GitHub differs
// from the other providers in two ways: the token exchange takes a
// JSON body and answers form-encoded unless Accept: application/json
// is sent, and the profile fetch uses the "token" auth scheme.
type Provider struct {
	creds  provider.CredentialSource
	client *http.Client

	authURL    string
	tokenURL   string
	profileURL string
}

func New(creds provider.CredentialSource, client *http.Client) *Provider {
	return &Provider{
		creds:      creds,
		client:     client,
		authURL:    defaultAuthURL,
		tokenURL:   defaultTokenURL,
		profileURL: defaultProfileURL,
	}
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

func (p *Provider) AuthCodeURL(state string) (string, error) {
	creds, err := p.creds()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("client_id", creds.ClientID)
	query.Set("redirect_uri", creds.RedirectURI)
	query.Set("response_type", "code")
	query.Set("scope", "user:email")
	query.Set("state", state)

	authURL, err := url.Parse(p.authURL)
	if err != nil {
		return "", err
	}
	authURL.RawQuery = query.Encode()
	return authURL.String(), nil
}

func (p *Provider) ExchangeCode(ctx context.Context, code string) (*auth.Identity, error) {
	creds, err := p.creds()
	if err != nil {
		return nil, err
	}

	accessToken, err := p.exchange(ctx, creds, code)
	if err != nil {
		return nil, err
	}

	profile, err := provider.GetJSON(ctx, p.client, p.profileURL, "token "+accessToken)
	if err != nil {
		return nil, fmt.Errorf("github profile fetch failed: %w", err)
	}

	return &auth.Identity{
		Provider: providerName,
		Profile:  profile,
	}, nil
}

func (p *Provider) exchange(ctx context.Context, creds provider.Credentials, code string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"client_id":     creds.ClientID,
		"client_secret": creds.ClientSecret,
		"code":          code,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("github token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github token exchange failed: %s", resp.Status)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("github token decode failed: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("github did not return access_token")
	}
	return payload.AccessToken, nil
}
