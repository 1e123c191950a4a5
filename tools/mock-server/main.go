// Package main implements a mock eBay and PriceCharting server for local
// development. It serves trading card listings from a JSON fixture through
// the Browse API search and getItem endpoints, issues OAuth tokens without
// checking credentials, and serves a price guide CSV for reference imports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type itemsFixture struct {
	Items []json.RawMessage `json:"items"`
}

type browseAPIResponse struct {
	ItemSummaries []json.RawMessage `json:"itemSummaries"`
	Total         int               `json:"total"`
	Offset        int               `json:"offset"`
	Limit         int               `json:"limit"`
	Next          string            `json:"next,omitempty"`
}

type fixtureItem struct {
	ItemID string `json:"itemId"`
	Title  string `json:"title"`
}

// catalog indexes the fixture by item ID and lowercased title.
type catalog struct {
	order  []string
	raw    map[string]json.RawMessage
	titles map[string]string
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	itemsFile := flag.String("items", "tools/mock-server/testdata/items.json", "path to the listings fixture")
	guideFile := flag.String("price-guide", "tools/mock-server/testdata/price_guide.csv", "path to the price guide CSV")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadCatalog(*itemsFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *itemsFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(cat.order))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock server", "addr", addr,
		"browse_url", "http://localhost"+addr+"/buy/browse/v1",
		"token_url", "http://localhost"+addr+"/identity/v1/oauth2/token",
		"csv_url", "http://localhost"+addr+"/price-guide.csv",
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cat, *guideFile)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cat *catalog, guideFile string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", searchHandler(logger, cat))
	mux.HandleFunc("GET /buy/browse/v1/item/{id}", itemHandler(logger, cat))
	mux.HandleFunc("GET /price-guide.csv", priceGuideHandler(logger, guideFile))
	return mux
}

func loadCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx itemsFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	cat := &catalog{
		raw:    make(map[string]json.RawMessage, len(fx.Items)),
		titles: make(map[string]string, len(fx.Items)),
	}
	for i, raw := range fx.Items {
		var it fixtureItem
		if err := json.Unmarshal(raw, &it); err != nil {
			return nil, fmt.Errorf("parsing fixture item %d: %w", i, err)
		}
		if it.ItemID == "" {
			return nil, fmt.Errorf("fixture item %d has no itemId", i)
		}
		cat.order = append(cat.order, it.ItemID)
		cat.raw[it.ItemID] = raw
		cat.titles[it.ItemID] = strings.ToLower(it.Title)
	}
	return cat, nil
}

// search returns the IDs of items whose title contains every query word.
func (c *catalog) search(q string) []string {
	words := strings.Fields(strings.ToLower(q))
	var ids []string
	for _, id := range c.order {
		if containsAll(c.titles[id], words) {
			ids = append(ids, id)
		}
	}
	return ids
}

func containsAll(title string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(title, w) {
			return false
		}
	}
	return true
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Credentials are required but not verified.
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "grant_type must be client_credentials",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   7200,
			"token_type":   "Application Access Token",
		})
		logger.Info("issued mock token", "scope", r.PostForm.Get("scope"))
	}
}

func searchHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		limit := queryInt(r, "limit", 50)
		if limit <= 0 {
			limit = 50
		}
		offset := max(queryInt(r, "offset", 0), 0)

		ids := cat.search(q)
		total := len(ids)

		page := []json.RawMessage{}
		if offset < total {
			for _, id := range ids[offset:min(offset+limit, total)] {
				page = append(page, cat.raw[id])
			}
		}

		resp := browseAPIResponse{
			ItemSummaries: page,
			Total:         total,
			Offset:        offset,
			Limit:         limit,
		}
		if offset+limit < total {
			resp.Next = fmt.Sprintf("/buy/browse/v1/item_summary/search?q=%s&offset=%d&limit=%d",
				q, offset+limit, limit)
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("search", "query", q, "matched", total, "returned", len(page), "offset", offset, "limit", limit)
	}
}

func itemHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		raw, ok := cat.raw[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"errors": []map[string]any{{"errorId": 11001, "message": "The specified item was not found."}},
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(raw)
		logger.Info("get item", "item_id", id)
	}
}

func priceGuideHandler(logger *slog.Logger, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(path) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			logger.Error("opening price guide", "path", path, "error", err)
			http.Error(w, "price guide unavailable", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			http.Error(w, "price guide unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		http.ServeContent(w, r, "price_guide.csv", info.ModTime(), f)
		logger.Info("served price guide", "bytes", info.Size())
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
