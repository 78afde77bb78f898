package markko

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkohq/markko-go/pkg/markko/auth"
)

// newTestServer serves the token endpoint plus the given resource
// handler from one mux, mirroring the real API where both live under
// the same origin.
func newTestServer(t *testing.T, resource http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/", resource)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &tokenCalls
}

func newTestClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()

	client, err := New(Config{
		Origin:                 "test-suite",
		APIBasePath:            server.URL,
		ClientCredentialKey:    "client-key",
		ClientCredentialSecret: "client-secret",
	}, opts...)
	require.NoError(t, err)
	return client
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "APIBasePath is required")
	assert.ErrorContains(t, err, "ClientCredentialKey is required")
	assert.ErrorContains(t, err, "ClientCredentialSecret is required")
}

func TestClientGetSuccess(t *testing.T) {
	t.Parallel()

	server, tokenCalls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-suite", r.Header.Get(auth.HeaderOrigin))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "created_at,desc", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"Mug"}],"meta":{"total":1}}`))
	})
	client := newTestClient(t, server)

	env, err := client.Products.List(context.Background(), ListOptions{Page: 2, Sort: "created_at,desc"}, nil)
	require.NoError(t, err)

	var products []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, env.Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
	assert.Equal(t, int32(1), tokenCalls.Load())

	// The cached token covers the second call.
	_, err = client.Products.List(context.Background(), ListOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestClientErrorEnvelopeIn2xx(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null,"error":true,"message":"Invalid coupon applied.","code":409}`))
	})
	client := newTestClient(t, server)

	env, err := client.Carts.ApplyCoupon(context.Background(), "BADCODE", nil)
	assert.Nil(t, env)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid coupon applied.", apiErr.Message)
	assert.Equal(t, 409, apiErr.Code)
	assert.False(t, apiErr.IsValidation())
}

func TestClientErrorEnvelopeWithoutCode(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":true,"message":"Something went wrong."}`))
	})
	client := newTestClient(t, server)

	_, err := client.Categories.List(context.Background(), ListOptions{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	// With no envelope code the HTTP status stands in.
	assert.Equal(t, http.StatusOK, apiErr.Code)
}

func TestClientValidationError(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":true,"message":"The given data was invalid.","errors":{"name":["The name field is required."]}}`))
	})
	client := newTestClient(t, server)

	_, err := client.Products.Create(context.Background(), map[string]any{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Code)
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, []string{"The name field is required."}, apiErr.Errors["name"])
}

func TestClientNonJSONError(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})
	client := newTestClient(t, server)

	_, err := client.Vendors.List(context.Background(), ListOptions{}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClientPerCallToken(t *testing.T) {
	t.Parallel()

	server, tokenCalls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// The per-call token wins and its marker never hits the wire.
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get(auth.HeaderOAuthToken))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"order-1"}}`))
	})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := newTestClient(t, server, WithNowFunc(func() time.Time { return now }))

	oauth := &auth.TokenRecord{
		AccessToken: "user-token",
		ExpiresAt:   now.Add(time.Hour).UnixMilli(),
	}
	env, err := client.Orders.List(context.Background(), ListOptions{}, oauth)
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, int32(0), tokenCalls.Load())
}

func TestClientAuthFailureSurfaces(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("resource endpoint must not be reached without a token")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := newTestClient(t, server)

	_, err := client.Products.List(context.Background(), ListOptions{}, nil)

	var authErr *auth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestClientRateLimited(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	client := newTestClient(t, server, WithRateLimiter(NewRateLimiter(100, 10, 1)))

	_, err := client.Tags.List(context.Background(), ListOptions{}, nil)
	require.NoError(t, err)

	_, err = client.Tags.List(context.Background(), ListOptions{}, nil)
	require.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestClientToken(t *testing.T) {
	t.Parallel()

	server, tokenCalls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newTestClient(t, server)

	token, err := client.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestClientLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"user-token","refresh_token":"user-refresh","token_type":"Bearer","expires_in":1800}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := newTestClient(t, server)

	rec, err := client.Auth.Login(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "user-token", rec.AccessToken)
	assert.Equal(t, "user-refresh", rec.RefreshToken)
}

func TestClientCartGetByID(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/cart/7", r.URL.Path)
		assert.Equal(t, "items.product", r.URL.Query().Get("with"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":7}}`))
	})
	client := newTestClient(t, server)

	env, err := client.Carts.GetByID(context.Background(), 7, GetOptions{With: "items.product"}, nil)
	require.NoError(t, err)

	var cart struct {
		ID int `json:"id"`
	}
	require.NoError(t, env.Decode(&cart))
	assert.Equal(t, 7, cart.ID)
}

func TestClientCartListPromotions(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/promotions", r.URL.Path)

		// The active window is anchored on the client's current date.
		q := r.URL.Query()
		assert.Equal(t, "2026-03-01,<=", q.Get("valid_from"))
		assert.Equal(t, "2026-03-01,>=", q.Get("expiry"))
		assert.Equal(t, "1", q.Get("active"))
		assert.Equal(t, "2", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"code":"SPRING"}]}`))
	})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := newTestClient(t, server, WithNowFunc(func() time.Time { return now }))

	env, err := client.Carts.ListPromotions(context.Background(), ListOptions{Page: 2}, nil)
	require.NoError(t, err)

	var promotions []struct {
		Code string `json:"code"`
	}
	require.NoError(t, env.Decode(&promotions))
	require.Len(t, promotions, 1)
	assert.Equal(t, "SPRING", promotions[0].Code)
}

func TestClientDonationsSaveUnwrapsData(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"don-1","amount":500}}`))
	})
	client := newTestClient(t, server)

	raw, err := client.Donations.Save(context.Background(), "charity-1", map[string]any{"amount": 500})
	require.NoError(t, err)

	var donation struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &donation))
	assert.Equal(t, "don-1", donation.ID)
}
