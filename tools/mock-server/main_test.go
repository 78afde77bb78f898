package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkohq/markko-go/pkg/logger"
)

func loadTestProducts(t *testing.T) []json.RawMessage {
	t.Helper()
	products, err := loadProducts(filepath.Join("testdata", "products.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return products
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return env
}

func tokenRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoadProducts(t *testing.T) {
	products := loadTestProducts(t)
	if len(products) == 0 {
		t.Fatal("expected products in fixture")
	}
}

func TestTokenHandler_ClientCredentials(t *testing.T) {
	handler := (&tokenIssuer{}).handler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"key"},
		"client_secret": {"secret"},
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["access_token"] == nil || resp["access_token"] == "" {
		t.Error("expected non-empty access_token")
	}
	if resp["token_type"] != "Bearer" {
		t.Errorf("token_type=%v, want Bearer", resp["token_type"])
	}
	if resp["expires_in"] != float64(3600) {
		t.Errorf("expires_in=%v, want 3600", resp["expires_in"])
	}
}

func TestTokenHandler_MissingClient(t *testing.T) {
	handler := (&tokenIssuer{}).handler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{"grant_type": {"client_credentials"}}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "invalid_client" {
		t.Errorf("error=%s, want invalid_client", resp["error"])
	}
}

func TestTokenHandler_RefreshRotation(t *testing.T) {
	issuer := &tokenIssuer{}
	handler := issuer.handler(testLogger())

	issue := func(form url.Values) map[string]any {
		t.Helper()
		w := httptest.NewRecorder()
		handler(w, tokenRequest(form))
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
		}
		var resp map[string]any
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		return resp
	}

	first := issue(url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"key"},
		"client_secret": {"secret"},
	})
	second := issue(url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {"key"},
		"client_secret": {"secret"},
		"refresh_token": {first["refresh_token"].(string)},
	})

	if first["access_token"] == second["access_token"] {
		t.Error("expected refresh to rotate the access token")
	}
	if first["refresh_token"] == second["refresh_token"] {
		t.Error("expected refresh to rotate the refresh token")
	}
}

func TestTokenHandler_UnsupportedGrant(t *testing.T) {
	handler := (&tokenIssuer{}).handler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{
		"grant_type":    {"device_code"},
		"client_id":     {"key"},
		"client_secret": {"secret"},
	}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRequireBearer(t *testing.T) {
	handler := requireBearer(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}

	req.Header.Set("Authorization", "Bearer mock-access-1")
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
}

func TestProductsHandler_AllProducts(t *testing.T) {
	products := loadTestProducts(t)
	handler := productsHandler(testLogger(), products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	env := decodeEnvelope(t, w)
	data, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("data type=%T, want array", env.Data)
	}
	if len(data) != len(products) {
		t.Errorf("products=%d, want %d", len(data), len(products))
	}
}

func TestProductsHandler_SearchFilter(t *testing.T) {
	products := loadTestProducts(t)
	handler := productsHandler(testLogger(), products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?search=candle", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	env := decodeEnvelope(t, w)
	data, _ := env.Data.([]any)
	if len(data) == 0 {
		t.Fatal("expected candle results")
	}
	if len(data) >= len(products) {
		t.Error("expected filter to reduce results")
	}
	for _, item := range data {
		m, _ := item.(map[string]any)
		name, _ := m["name"].(string)
		if !strings.Contains(strings.ToLower(name), "candle") {
			t.Errorf("name=%q, want to contain %q", name, "candle")
		}
	}
}

func TestProductsHandler_Pagination(t *testing.T) {
	products := loadTestProducts(t)
	handler := productsHandler(testLogger(), products)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=2&paginate=3", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	env := decodeEnvelope(t, w)
	data, _ := env.Data.([]any)
	if len(data) != 3 {
		t.Errorf("products=%d, want 3", len(data))
	}

	meta, _ := env.Meta.(map[string]any)
	if meta["total"] != float64(len(products)) {
		t.Errorf("total=%v, want %d", meta["total"], len(products))
	}
	if meta["current_page"] != float64(2) {
		t.Errorf("current_page=%v, want 2", meta["current_page"])
	}
}

func TestProductsHandler_NoResults(t *testing.T) {
	handler := productsHandler(testLogger(), loadTestProducts(t))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?search=nonexistent_xyz", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	env := decodeEnvelope(t, w)
	data, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("data type=%T, want empty array, not null", env.Data)
	}
	if len(data) != 0 {
		t.Errorf("products=%d, want 0", len(data))
	}
}

func TestCouponHandler(t *testing.T) {
	handler := couponHandler(testLogger())

	t.Run("valid code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/apply-coupon/SAVE10", http.NoBody)
		req.SetPathValue("code", "SAVE10")
		w := httptest.NewRecorder()

		handler(w, req)

		env := decodeEnvelope(t, w)
		if env.Error {
			t.Fatalf("unexpected error envelope: %s", env.Message)
		}
	})

	t.Run("invalid code returns error envelope in 2xx", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/apply-coupon/BADCODE", http.NoBody)
		req.SetPathValue("code", "BADCODE")
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
		}
		env := decodeEnvelope(t, w)
		if !env.Error {
			t.Fatal("expected error envelope")
		}
		if env.Message != "Invalid coupon applied." {
			t.Errorf("message=%q, want %q", env.Message, "Invalid coupon applied.")
		}
		if env.Code != 409 {
			t.Errorf("code=%d, want 409", env.Code)
		}
	})
}

func TestMuxCouponRoute(t *testing.T) {
	mux := newMux(testLogger(), loadTestProducts(t))

	// The route matches the path the SDK's coupon call uses.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/apply-coupon/BADCODE", http.NoBody)
	req.Header.Set("Authorization", "Bearer mock-access-1")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	env := decodeEnvelope(t, w)
	if !env.Error || env.Code != 409 {
		t.Fatalf("error=%v code=%d, want error envelope with code 409", env.Error, env.Code)
	}
}

func testLogger() *slog.Logger {
	return logger.Nop()
}
