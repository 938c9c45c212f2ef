package paypal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakePayPal(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "token-123"})
	})
	mux.HandleFunc("/v1/billing/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req createSubscriptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "P-PLAN123", req.PlanID)
		assert.Equal(t, "SUBSCRIBE_NOW", req.ApplicationContext.UserAction)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Subscription{
			ID:     "I-SUB123",
			Status: "APPROVAL_PENDING",
			PlanID: req.PlanID,
			Links: []Link{
				{Href: "https://paypal.test/approve/I-SUB123", Rel: "approve"},
				{Href: "https://paypal.test/self/I-SUB123", Rel: "self"},
			},
		})
	})
	mux.HandleFunc("/v1/billing/subscriptions/I-SUB123", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Subscription{ID: "I-SUB123", Status: "ACTIVE"})
	})
	mux.HandleFunc("/v1/billing/subscriptions/I-SUB123/cancel", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["reason"])
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient("client-id", "client-secret", "sandbox")
	client.apiURL = srv.URL
	return srv, client
}

func TestAccessToken(t *testing.T) {
	_, client := fakePayPal(t)

	token, err := client.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestAccessTokenUnconfigured(t *testing.T) {
	client := NewClient("", "", "sandbox")
	_, err := client.AccessToken()
	assert.Error(t, err)
}

func TestCreateSubscription(t *testing.T) {
	_, client := fakePayPal(t)

	sub, err := client.CreateSubscription("P-PLAN123", "a@b.com", "https://app.test/return", "https://app.test/cancel")
	require.NoError(t, err)
	assert.Equal(t, "I-SUB123", sub.ID)
	assert.Equal(t, "https://paypal.test/approve/I-SUB123", sub.ApproveURL())
}

func TestGetSubscription(t *testing.T) {
	_, client := fakePayPal(t)

	sub, err := client.GetSubscription("I-SUB123")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", sub.Status)
}

func TestCancelSubscription(t *testing.T) {
	_, client := fakePayPal(t)

	err := client.CancelSubscription("I-SUB123", "Cancelled by user")
	assert.NoError(t, err)
}

func TestNewClientModes(t *testing.T) {
	assert.Equal(t, liveAPIBase, NewClient("id", "secret", "live").apiURL)
	assert.Equal(t, sandboxAPIBase, NewClient("id", "secret", "sandbox").apiURL)
	assert.Equal(t, sandboxAPIBase, NewClient("id", "secret", "").apiURL)
}

func TestApproveURLMissing(t *testing.T) {
	sub := Subscription{Links: []Link{{Href: "x", Rel: "self"}}}
	assert.Equal(t, "", sub.ApproveURL())
}
