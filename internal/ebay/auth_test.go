package ebay_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/ebay"
)

// tokenJSON returns a valid eBay OAuth2 token response as JSON bytes.
func tokenJSON(token string) []byte {
	return fmt.Appendf(nil,
		`{"access_token":%q,"expires_in":7200,"token_type":"Application Access Token"}`,
		token,
	)
}

func TestOAuthTokenProvider_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantToken  string
		errContain string
	}{
		{
			name: "successful token fetch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "app-id", user)
				assert.Equal(t, "cert-id", pass)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
				assert.Equal(t, "https://api.ebay.com/oauth/api_scope", r.PostForm.Get("scope"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(tokenJSON("test-token-123"))
			},
			wantToken: "test-token-123",
		},
		{
			name: "server returns 401",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"client authentication failed"}`))
			},
			errContain: "status 401",
		},
		{
			name: "server returns 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			errContain: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := ebay.NewOAuthTokenProvider("app-id", "cert-id", ebay.WithTokenURL(srv.URL))
			token, err := p.Token(context.Background())

			if tt.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestOAuthTokenProvider_CachesToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("cached"))
	}))
	defer srv.Close()

	p := ebay.NewOAuthTokenProvider("app", "cert",
		ebay.WithTokenURL(srv.URL),
		ebay.WithHTTPClient(srv.Client()),
	)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			tok, err := p.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "cached", tok)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestOAuthTokenProvider_CanceledContext(t *testing.T) {
	t.Parallel()

	p := ebay.NewOAuthTokenProvider("app", "cert", ebay.WithTokenURL("http://127.0.0.1:1"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Token(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
