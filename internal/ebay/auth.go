package ebay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultScope    = "https://api.ebay.com/oauth/api_scope"
)

// OAuthTokenProvider implements TokenProvider using the eBay OAuth2 client
// credentials grant. Tokens are cached and refreshed shortly before expiry.
type OAuthTokenProvider struct {
	cfg    clientcredentials.Config
	client *http.Client
	src    oauth2.TokenSource
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.cfg.TokenURL = u
	}
}

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// NewOAuthTokenProvider creates a new eBay OAuth2 token provider.
func NewOAuthTokenProvider(appID, certID string, opts ...OAuthOption) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		cfg: clientcredentials.Config{
			ClientID:     appID,
			ClientSecret: certID,
			TokenURL:     defaultTokenURL,
			Scopes:       []string{defaultScope},
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}

	// The token source outlives any single request, so it carries its own
	// context holding only the HTTP client.
	base := context.WithValue(context.Background(), oauth2.HTTPClient, p.client)
	p.src = p.cfg.TokenSource(base)
	return p
}

// Token returns a valid access token, fetching a new one when needed.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tok, err := p.src.Token()
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return "", fmt.Errorf("token request failed (status %d): %w", re.Response.StatusCode, err)
		}
		return "", fmt.Errorf("fetching token: %w", err)
	}
	return tok.AccessToken, nil
}
