package google

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SrotDev/bizpilot/internal/auth"
	"github.com/SrotDev/bizpilot/internal/auth/provider"

	"golang.org/x/oauth2"
)

const providerName = "google"

const (
	defaultAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL   = "https://oauth2.googleapis.com/token"
	defaultProfileURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// Provider drives the Google authorization-code flow: form-encoded
// token exchange, then a Bearer-authorized userinfo fetch whose payload
// is passed through untouched.
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

func (p *Provider) oauthConfig() (*oauth2.Config, error) {
	creds, err := p.creds()
	if err != nil {
		return nil, err
	}

	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.authURL,
			TokenURL:  p.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{"openid", "email", "profile"},
	}, nil
}

func (p *Provider) AuthCodeURL(state string) (string, error) {
	cfg, err := p.oauthConfig()
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state), nil
}

func (p *Provider) ExchangeCode(ctx context.Context, code string) (*auth.Identity, error) {
	cfg, err := p.oauthConfig()
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange failed: %w", err)
	}

	profile, err := provider.GetJSON(ctx, p.client, p.profileURL, "Bearer "+token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("google profile fetch failed: %w", err)
	}

	return &auth.Identity{
		Provider: providerName,
		Profile:  profile,
	}, nil
}
