package linkedin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SrotDev/bizpilot/internal/auth"
	"github.com/SrotDev/bizpilot/internal/auth/provider"

	"golang.org/x/oauth2"
)

const providerName = "linkedin"

const (
	defaultAuthURL    = "https://www.linkedin.com/oauth/v2/authorization"
	defaultTokenURL   = "https://www.linkedin.com/oauth/v2/accessToken"
	defaultProfileURL = "https://api.linkedin.com/v2/me"
	defaultEmailURL   = "https://api.linkedin.com/v2/emailAddress?q=members&projection=(elements*(handle~))"
)

// Provider drives the LinkedIn authorization-code flow. LinkedIn
// splits identity across two resources, so after the profile fetch a
// second call retrieves the email payload, which is merged into the
// profile under an "email" key.
type Provider struct {
	creds  provider.CredentialSource
	client *http.Client

	authURL    string
	tokenURL   string
	profileURL string
	emailURL   string
}

func New(creds provider.CredentialSource, client *http.Client) *Provider {
	return &Provider{
		creds:      creds,
		client:     client,
		authURL:    defaultAuthURL,
		tokenURL:   defaultTokenURL,
		profileURL: defaultProfileURL,
		emailURL:   defaultEmailURL,
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
			AuthURL:  p.authURL,
			TokenURL: p.tokenURL,
			// LinkedIn rejects client-secret basic auth.
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{"r_liteprofile", "r_emailaddress"},
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
		return nil, fmt.Errorf("linkedin token exchange failed: %w", err)
	}

	bearer := "Bearer " + token.AccessToken

	profile, err := provider.GetJSON(ctx, p.client, p.profileURL, bearer)
	if err != nil {
		return nil, fmt.Errorf("linkedin profile fetch failed: %w", err)
	}

	email, err := provider.GetJSON(ctx, p.client, p.emailURL, bearer)
	if err != nil {
		return nil, fmt.Errorf("linkedin email fetch failed: %w", err)
	}
	profile["email"] = email

	return &auth.Identity{
		Provider: providerName,
		Profile:  profile,
	}, nil
}
