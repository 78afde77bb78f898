// Package main implements a mock Markko API server for local development.
// It serves canned enveloped responses from JSON fixtures to simulate the
// marketplace resource endpoints and the OAuth token endpoint without
// requiring real marketplace credentials.
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
	"sync/atomic"
	"time"

	"github.com/markkohq/markko-go/pkg/logger"
)

// envelope is the response shape shared by all resource endpoints.
type envelope struct {
	Data    any    `json:"data"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

type productFixture struct {
	Data []json.RawMessage `json:"data"`
}

type productSummary struct {
	Name string `json:"name"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to products fixture")
	flag.Parse()

	log := logger.NewWithWriter(os.Stdout, "debug", "text")

	products, err := loadProducts(*fixtureFile)
	if err != nil {
		log.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	log.Info("loaded fixture", "products", len(products))

	mux := newMux(log, products)

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock Markko server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(log, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newMux registers the mock API routes on a fresh mux. Resource paths
// match the real API so the SDK can be pointed at the mock unchanged.
func newMux(log *slog.Logger, products []json.RawMessage) *http.ServeMux {
	tokens := &tokenIssuer{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokens.handler(log))
	mux.HandleFunc("GET /api/v1/products", requireBearer(productsHandler(log, products)))
	mux.HandleFunc("GET /api/v1/vendors", requireBearer(staticHandler(vendorsData)))
	mux.HandleFunc("GET /api/v1/categories", requireBearer(staticHandler(categoriesData)))
	mux.HandleFunc("GET /api/v1/cart", requireBearer(staticHandler(cartData)))
	mux.HandleFunc("POST /api/v1/cart/apply-coupon/{code}", requireBearer(couponHandler(log)))
	return mux
}

func loadProducts(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fixture productFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return fixture.Data, nil
}

func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"origin", r.Header.Get("X-MPE-Origin"),
			"request_id", r.Header.Get("X-Request-ID"),
		)
		next.ServeHTTP(w, r)
	})
}

// requireBearer rejects resource requests without an Authorization
// header, matching the real API's behavior.
func requireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, envelope{
				Error:   true,
				Message: "Unauthenticated.",
			})
			return
		}
		next(w, r)
	}
}

// tokenIssuer issues serial-numbered mock tokens so tests can observe
// refresh rotation.
type tokenIssuer struct {
	serial atomic.Int64
}

func (ti *tokenIssuer) issue() map[string]any {
	n := ti.serial.Add(1)
	return map[string]any{
		"access_token":  fmt.Sprintf("mock-access-%d", n),
		"refresh_token": fmt.Sprintf("mock-refresh-%d", n),
		"expires_in":    3600,
		"token_type":    "Bearer",
	}
}

func (ti *tokenIssuer) handler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeOAuthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}

		if r.Form.Get("client_id") == "" || r.Form.Get("client_secret") == "" {
			log.Warn("token request missing client credentials")
			writeOAuthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}

		grantType := r.Form.Get("grant_type")
		switch grantType {
		case "client_credentials":
		case "password":
			if r.Form.Get("username") == "" || r.Form.Get("password") == "" {
				writeOAuthError(w, http.StatusBadRequest, "invalid_grant", "invalid credentials")
				return
			}
		case "refresh_token":
			if r.Form.Get("refresh_token") == "" {
				writeOAuthError(w, http.StatusBadRequest, "invalid_grant", "refresh token is required")
				return
			}
		default:
			writeOAuthError(w, http.StatusBadRequest, "unsupported_grant_type", "unsupported grant type "+grantType)
			return
		}

		writeJSON(w, http.StatusOK, ti.issue())
		log.Info("issued mock token", "grant_type", grantType)
	}
}

func productsHandler(log *slog.Logger, products []json.RawMessage) http.HandlerFunc {
	// Pre-parse names for filtering.
	type indexedProduct struct {
		raw  json.RawMessage
		name string
	}
	items := make([]indexedProduct, 0, len(products))
	for _, raw := range products {
		var s productSummary
		//nolint:errcheck,gosec // fixture data is trusted; name extraction is best-effort
		json.Unmarshal(raw, &s)
		items = append(items, indexedProduct{raw: raw, name: strings.ToLower(s.Name)})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.ToLower(r.URL.Query().Get("search"))

		page := 1
		if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
			page = v
		}
		paginate := 15
		if v, err := strconv.Atoi(r.URL.Query().Get("paginate")); err == nil && v > 0 {
			paginate = v
		}

		var matched []json.RawMessage
		for _, item := range items {
			if search == "" || strings.Contains(item.name, search) {
				matched = append(matched, item.raw)
			}
		}

		total := len(matched)
		offset := (page - 1) * paginate
		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+paginate, len(matched))
			matched = matched[offset:end]
		}

		// Return empty array instead of null when no results.
		if matched == nil {
			matched = []json.RawMessage{}
		}

		writeJSON(w, http.StatusOK, envelope{
			Data: matched,
			Meta: map[string]any{
				"current_page": page,
				"per_page":     paginate,
				"total":        total,
			},
		})
		log.Info("products", "search", search, "matched", total, "returned", len(matched), "page", page)
	}
}

func couponHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.PathValue("code")
		if !strings.EqualFold(code, "SAVE10") {
			// Business errors arrive as an error envelope in a 2xx body.
			writeJSON(w, http.StatusOK, envelope{
				Error:   true,
				Message: "Invalid coupon applied.",
				Code:    409,
			})
			log.Info("rejected coupon", "code", code)
			return
		}
		writeJSON(w, http.StatusOK, envelope{
			Data: map[string]any{
				"coupon":   code,
				"discount": "10%",
			},
		})
	}
}

func staticHandler(data json.RawMessage) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, envelope{Data: data})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeOAuthError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": description,
	})
}

var vendorsData = json.RawMessage(`[
	{"id": "v-1", "store_name": "Pottery Barn", "slug": "pottery-barn", "city": "London"},
	{"id": "v-2", "store_name": "Candle Works", "slug": "candle-works", "city": "Bristol"}
]`)

var categoriesData = json.RawMessage(`[
	{"id": "c-1", "name": "Homeware", "slug": "homeware"},
	{"id": "c-2", "name": "Gifts", "slug": "gifts"}
]`)

var cartData = json.RawMessage(`{
	"id": "cart-1",
	"items": [
		{"product_id": 1, "variant_id": 7, "quantity": 2}
	],
	"total": "24.00"
}`)
