package pricecharting_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/internal/pricecharting"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		errContain string
	}{
		{name: "ok", status: http.StatusOK, body: "id,console-name,product-name\n"},
		{name: "forbidden", status: http.StatusForbidden, errContain: "unexpected status 403"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "text/csv", r.Header.Get("Accept"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			f := pricecharting.NewHTTPFetcher(srv.URL+"/price-guide/download-custom?t=token",
				pricecharting.WithHTTPClient(srv.Client()))
			body, err := f.Fetch(context.Background())
			if tt.errContain != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			defer body.Close()

			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(data))
		})
	}
}

func TestHTTPFetcher_NoURL(t *testing.T) {
	t.Parallel()

	_, err := pricecharting.NewHTTPFetcher("").Fetch(context.Background())
	require.Error(t, err)
}

func TestFileFetcher_Fetch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "guide.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,product-name\n1,Lugia #9\n"), 0o600))

	body, err := pricecharting.FileFetcher{Path: path}.Fetch(t.Context())
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lugia #9")

	_, err = pricecharting.FileFetcher{Path: filepath.Join(t.TempDir(), "missing.csv")}.Fetch(t.Context())
	require.ErrorIs(t, err, os.ErrNotExist)
}
